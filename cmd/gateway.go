package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/filedrive-org/drived/internal/bootstrap"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/filedrive-org/drived/server/gateway"
	"github.com/filedrive-org/drived/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var GatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the reverse-proxy gateway",
	Run: func(cmd *cobra.Command, args []string) {
		// the gateway holds no data, config and log are enough
		bootstrap.InitConfig()
		bootstrap.Log()
		gw, err := gateway.New()
		if err != nil {
			utils.Log.Fatalf("failed init gateway: %+v", err)
		}
		if !conf.Debug {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(gin.LoggerWithWriter(utils.Log.Out), gin.RecoveryWithWriter(utils.Log.Out))
		gc := conf.Conf.Gateway
		r.Use(middlewares.RateLimit(gc.RatePerSecond, gc.RateBurst))
		r.GET("/ping", func(c *gin.Context) {
			c.String(200, "pong")
		})
		r.NoRoute(gw.Handle)

		stop := make(chan struct{})
		gw.StartHealthChecks(stop)

		base := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HttpPort)
		utils.Log.Infof("start gateway @ %s", base)
		srv := &http.Server{Addr: base, Handler: r}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				utils.Log.Fatalf("failed to start gateway: %s", err.Error())
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Println("shutdown gateway...")
		close(stop)
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Log.Fatal("gateway shutdown err: ", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(GatewayCmd)
}
