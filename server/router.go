package server

import (
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/server/common"
	"github.com/filedrive-org/drived/server/handles"
	"github.com/filedrive-org/drived/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Init mounts the requested services on the engine. Every service is a
// route group; a deployment can run all of them or any subset.
func Init(e *gin.Engine, services []string) error {
	common.SecretKey = []byte(conf.Conf.JwtSecret)
	Cors(e)
	e.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	e.Use(middlewares.Audit)
	api := e.Group("/api")
	for _, s := range services {
		switch s {
		case conf.ServiceIdentity:
			initIdentity(api)
		case conf.ServiceFiles:
			initFiles(api)
		case conf.ServiceFolders:
			initFolders(api)
		case conf.ServiceQuota:
			initQuota(api)
		case conf.ServiceAudit:
			initAudit(api)
		case conf.ServiceSharing:
			initSharing(e, api)
		default:
			return errors.Errorf("unknown service: %s", s)
		}
	}
	return nil
}

func Cors(e *gin.Engine) {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "range")
	e.Use(cors.New(config))
}

func initIdentity(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/register", handles.Register)
	auth.POST("/login", handles.Login)
	auth.POST("/logout", middlewares.Auth, handles.Logout)

	me := api.Group("/me", middlewares.Auth)
	me.GET("", handles.CurrentUser)
	me.GET("/sessions", handles.ListMySessions)
	me.POST("/password", handles.ChangePassword)
	me.POST("/2fa/generate", handles.Generate2FA)
	me.POST("/2fa/verify", handles.Verify2FA)

	api.GET("/public/settings", handles.PublicSettings)

	admin := api.Group("/admin", middlewares.Auth, middlewares.AuthAdmin)
	admin.GET("/users", handles.ListUsers)
	admin.GET("/user", handles.GetUser)
	admin.POST("/user", handles.CreateUser)
	admin.PUT("/user", handles.UpdateUser)
	admin.DELETE("/user", handles.DeleteUser)
	admin.GET("/settings", handles.ListSettings)
	admin.POST("/settings", handles.SaveSettings)
}

func initFiles(api *gin.RouterGroup) {
	fs := api.Group("/fs", middlewares.Auth)
	fs.POST("/upload", handles.UploadFile)
	fs.GET("/list", handles.ListFiles)
	fs.GET("/object/:id", handles.StatFile)
	fs.GET("/object/:id/download", handles.DownloadFile)
	fs.POST("/rename", handles.RenameFile)
	fs.POST("/move", handles.MoveFile)
	fs.DELETE("/object/:id", handles.DeleteFile)
}

func initFolders(api *gin.RouterGroup) {
	folders := api.Group("/folders", middlewares.Auth)
	folders.GET("/root", handles.GetRootFolder)
	folders.GET("/list", handles.ListFolders)
	folders.GET("/object/:id", handles.StatFolder)
	folders.POST("", handles.CreateFolder)
	folders.POST("/rename", handles.RenameFolder)
	folders.POST("/move", handles.MoveFolder)
	folders.DELETE("/object/:id", handles.DeleteFolder)
}

func initQuota(api *gin.RouterGroup) {
	quota := api.Group("/quota")
	quota.GET("", middlewares.Auth, handles.GetMyQuota)
	quota.POST("/recalc", middlewares.Auth, handles.RecalcQuota)
	// internal endpoints carry no JWT; the shared backends secret
	// keeps them service-to-service only
	quota.POST("/internal/reserve", middlewares.Internal, handles.ReserveQuotaInternal)
	quota.POST("/internal/release", middlewares.Internal, handles.ReleaseQuotaInternal)

	admin := api.Group("/admin", middlewares.Auth, middlewares.AuthAdmin)
	admin.POST("/quota/limit", handles.SetQuotaLimit)
}

func initAudit(api *gin.RouterGroup) {
	api.POST("/audit/internal/record", middlewares.Internal, handles.RecordAuditInternal)

	admin := api.Group("/admin", middlewares.Auth, middlewares.AuthAdmin)
	admin.GET("/audit", handles.ListAuditEntries)
}

func initSharing(e *gin.Engine, api *gin.RouterGroup) {
	share := api.Group("/share", middlewares.Auth)
	share.POST("", handles.CreateShare)
	share.GET("", handles.ListShares)
	share.DELETE("/:id", handles.DeleteShare)

	s := e.Group("/s")
	s.GET("/:id", handles.GetShareInfo)
	s.GET("/:id/list", handles.ListSharedFolder)
	s.GET("/:id/download", handles.DownloadShared)
}
