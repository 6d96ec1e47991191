package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/filedrive-org/drived/drivers"
	"github.com/filedrive-org/drived/internal/bootstrap"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/internal/setting"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/filedrive-org/drived/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serverServices string

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the drive services",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		defer Release()
		services := conf.AllServices
		if serverServices != "all" {
			services = strings.Split(serverServices, ",")
		}
		if needsStorage(services) {
			bootstrap.InitStorageDriver()
		}
		if !conf.Debug {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(gin.LoggerWithWriter(utils.Log.Out), gin.RecoveryWithWriter(utils.Log.Out))
		if err := server.Init(r, services); err != nil {
			utils.Log.Fatalf("failed init router: %+v", err)
		}

		stop := make(chan struct{})
		if hasService(services, conf.ServiceAudit) {
			go auditSweeper(stop)
		}

		base := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HttpPort)
		utils.Log.Infof("start HTTP server @ %s, services: %s", base, strings.Join(services, ","))
		srv := &http.Server{Addr: base, Handler: r}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				utils.Log.Fatalf("failed to start http: %s", err.Error())
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Println("shutdown server...")
		close(stop)
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Log.Fatal("HTTP server shutdown err: ", err)
		}
		utils.Log.Println("server exit")
	},
}

func needsStorage(services []string) bool {
	return hasService(services, conf.ServiceFiles) ||
		hasService(services, conf.ServiceFolders) ||
		hasService(services, conf.ServiceSharing)
}

func hasService(services []string, name string) bool {
	for _, s := range services {
		if s == name {
			return true
		}
	}
	return false
}

// auditSweeper applies the retention setting once an hour.
func auditSweeper(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		op.SweepAuditEntries(setting.GetInt(conf.AuditRetentionDays, 90))
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func init() {
	RootCmd.AddCommand(ServerCmd)
	ServerCmd.Flags().StringVar(&serverServices, "services", "all",
		"comma separated services to run, or 'all'")
}
