package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/barchasb-io/barchasb/docs"
	"github.com/barchasb-io/barchasb/internal/middleware"
	"github.com/barchasb-io/barchasb/internal/modules/handler"
	"github.com/barchasb-io/barchasb/internal/modules/serializer"
	"github.com/barchasb-io/barchasb/internal/pkg/auth"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DB          *gorm.DB
	Log         *zap.Logger
	Tokens      *auth.TokenManager
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bearer := middleware.BearerAuth(d.Tokens, d.DB)

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/signup", d.UserHandler.Signup)
			users.POST("/login", d.UserHandler.Login)

			users.POST("/logout", bearer, d.UserHandler.Logout)
			users.GET("/user", bearer, d.UserHandler.GetUser)
			users.PUT("/user", bearer, d.UserHandler.Rename)
			users.PUT("/user/password", bearer, d.UserHandler.ChangePassword)
			users.GET("/leaderboard", bearer, d.UserHandler.Leaderboard)
			users.GET("/reports", bearer, d.UserHandler.MyReports)
		}

		tasks := v1.Group("/tasks")
		{
			// open for now; task creation should eventually require
			// elevated auth
			tasks.POST("/new", d.TaskHandler.CreateTask)

			tasks.GET("/feed", bearer, d.TaskHandler.Feed)
			tasks.GET("/done", bearer, d.TaskHandler.ListDone)
			tasks.GET("/labeled", bearer, d.TaskHandler.ListLabeled)
			tasks.PUT("/:task_id/done", bearer, d.TaskHandler.MarkDone)

			tasks.POST("/submit", bearer, d.TaskHandler.SubmitLabel)
			tasks.POST("/report", bearer, d.TaskHandler.ReportTask)

			tasks.POST("/:task_id/consensus", bearer, d.TaskHandler.Consensus)
			tasks.GET("/:task_id/consensus", bearer, d.TaskHandler.GetConsensus)
		}
	}
	return r
}
