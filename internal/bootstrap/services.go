package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/nexora/corpsite-api/config"
	"github.com/nexora/corpsite-api/internal/adapters/credentials"
	redisadapter "github.com/nexora/corpsite-api/internal/adapters/redis"
	"github.com/nexora/corpsite-api/internal/data"
	"github.com/nexora/corpsite-api/internal/ports"
	"github.com/nexora/corpsite-api/internal/service"
)

// ServiceContainer holds all application services and repositories.
type ServiceContainer struct {
	Auth         *service.AuthService
	Counts       *service.PendingCountService
	Users        *data.UserRepo
	Applications *data.ApplicationRepo
	Contacts     *data.ContactRepo
	Callbacks    *data.CallbackRepo
}

// ServiceDeps contains everything NewServices needs to assemble the container.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories, adapters, and services together.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps and config are required")
	}
	if deps.DB == nil {
		return ServiceContainer{}, errors.New("database connection is required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	cfg := deps.Config

	users := data.NewUserRepo(deps.DB)
	applications := data.NewApplicationRepo(deps.DB)
	contacts := data.NewContactRepo(deps.DB)
	callbacks := data.NewCallbackRepo(deps.DB)

	creds, err := credentials.NewSource(users, credentials.Config{
		BcryptCost:          cfg.Auth.BcryptCost,
		BootstrapAdminEmail: cfg.Auth.BootstrapAdminEmail,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create credential source: %w", err)
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.Auth.SessionPrefix)
	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: creds,
		Sessions:    sessions,
		SessionTTL:  cfg.Auth.SessionTTL,
	})

	counts := service.NewPendingCountService(service.PendingCountServiceOptions{
		Sources: []ports.PendingCountSource{
			applications,
			contacts,
			callbacks,
		},
		Snapshots:       redisadapter.NewCountCache(deps.RedisClient, cfg.Counts.SnapshotTTL),
		Logger:          deps.Logger,
		RefreshInterval: cfg.Counts.RefreshInterval,
		FetchTimeout:    cfg.Counts.FetchTimeout,
	})

	return ServiceContainer{
		Auth:         auth,
		Counts:       counts,
		Users:        users,
		Applications: applications,
		Contacts:     contacts,
		Callbacks:    callbacks,
	}, nil
}
