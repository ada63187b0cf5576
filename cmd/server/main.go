package main

//	@title			Barchasb API
//	@version		1.0
//	@description	Crowdsourced task-labeling backend.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User access token (e.g., "Bearer eyJhb...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barchasb-io/barchasb/internal/bootstrap"
	"github.com/barchasb-io/barchasb/internal/config"
	"github.com/barchasb-io/barchasb/internal/modules/handler"
	"github.com/barchasb-io/barchasb/internal/pkg/auth"
	"github.com/barchasb-io/barchasb/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)
	tokens := do.MustInvoke[*auth.TokenManager](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	userHandler := do.MustInvoke[*handler.UserHandler](inj)
	taskHandler := do.MustInvoke[*handler.TaskHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		DB:          db,
		Log:         log,
		Tokens:      tokens,
		UserHandler: userHandler,
		TaskHandler: taskHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
