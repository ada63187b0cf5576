package bootstrap

import (
	"time"

	"github.com/barchasb-io/barchasb/internal/config"
	"github.com/barchasb-io/barchasb/internal/infra/cache"
	"github.com/barchasb-io/barchasb/internal/infra/db"
	"github.com/barchasb-io/barchasb/internal/infra/logger"
	"github.com/barchasb-io/barchasb/internal/modules/handler"
	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/repo"
	"github.com/barchasb-io/barchasb/internal/modules/service"
	"github.com/barchasb-io/barchasb/internal/pkg/auth"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Task{},
				&model.Label{},
				&model.Report{},
			)
		}
		return d, nil
	})

	// Redis (nil when unconfigured; leaderboard caching is then skipped)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ connection (nil when unconfigured; events are then skipped)
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// Credential utilities
	do.Provide(inj, func(i *do.Injector) (*auth.Hasher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return auth.NewHasher(cfg.Auth.BcryptCost), nil
	})
	do.Provide(inj, func(i *do.Injector) (*auth.TokenManager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ttl := time.Duration(cfg.Auth.TokenExpireMin) * time.Minute
		return auth.NewTokenManager(cfg.Auth.Secret, ttl), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.LabelRepo, error) {
		return repo.NewLabelRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReportRepo, error) {
		return repo.NewReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*auth.Hasher](i),
			do.MustInvoke[*auth.TokenManager](i),
			do.MustInvoke[*redis.Client](i),
			time.Duration(cfg.Redis.LeaderboardTTLSec)*time.Second,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(do.MustInvoke[repo.TaskRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LabelService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewLabelService(
			do.MustInvoke[repo.LabelRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Queue,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReportService, error) {
		return service.NewReportService(do.MustInvoke[repo.ReportRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(
			do.MustInvoke[service.UserService](i),
			do.MustInvoke[service.ReportService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(
			do.MustInvoke[service.TaskService](i),
			do.MustInvoke[service.LabelService](i),
			do.MustInvoke[service.ReportService](i),
		), nil
	})

	return inj
}
