package service

import (
	"fmt"

	"github.com/GlebRadaev/ordertracker/internal/config"
	"github.com/GlebRadaev/ordertracker/internal/handlers/activity"
	"github.com/GlebRadaev/ordertracker/internal/handlers/auth"
	"github.com/GlebRadaev/ordertracker/internal/handlers/export"
	"github.com/GlebRadaev/ordertracker/internal/handlers/orders"
	"github.com/GlebRadaev/ordertracker/internal/handlers/storage"
	"github.com/GlebRadaev/ordertracker/internal/handlers/summary"
	"github.com/GlebRadaev/ordertracker/internal/repo"
	"github.com/GlebRadaev/ordertracker/internal/service/activityservice"
	"github.com/GlebRadaev/ordertracker/internal/service/authservice"
	"github.com/GlebRadaev/ordertracker/internal/service/exportservice"
	"github.com/GlebRadaev/ordertracker/internal/service/migrateservice"
	"github.com/GlebRadaev/ordertracker/internal/service/orderservice"
	"github.com/GlebRadaev/ordertracker/internal/service/storageservice"
	"github.com/GlebRadaev/ordertracker/internal/service/summaryservice"
	pkgauth "github.com/GlebRadaev/ordertracker/pkg/auth"
)

type Services struct {
	AuthService     auth.Service
	OrderService    orders.Service
	SummaryService  summary.Service
	ActivityService activity.Service
	ExportService   export.Service
	StorageService  storage.Service
	MigrateService  storage.MigrateService

	// Tokens validates session cookies. AuthRequired is false when no
	// shared password is configured.
	Tokens       pkgauth.JWTServiceInterface
	AuthRequired bool
}

func New(repos *repo.Repositories, cfg *config.Config) (*Services, error) {
	hashService := &pkgauth.HashService{}
	passwordHash, err := sharedPasswordHash(cfg, hashService)
	if err != nil {
		return nil, err
	}
	tokens := pkgauth.NewJWTService(cfg.AuthSecret)
	authService := authservice.New(passwordHash, cfg.SessionTTL, hashService, tokens)

	return &Services{
		AuthService:     authService,
		OrderService:    orderservice.New(repos.Store),
		SummaryService:  summaryservice.New(repos.Store),
		ActivityService: activityservice.New(repos.Store),
		ExportService:   exportservice.New(repos.Store),
		StorageService:  storageservice.New(repos.Backend, repos.External != nil, repos.Store),
		MigrateService:  migrateservice.New(repos.Memory, repos.External),
		Tokens:          tokens,
		AuthRequired:    authService.Enabled(),
	}, nil
}

// sharedPasswordHash prefers a configured bcrypt hash over a plain password.
func sharedPasswordHash(cfg *config.Config, hashService pkgauth.HashServiceInterface) (string, error) {
	if cfg.AuthPasswordHash != "" {
		if err := pkgauth.CheckHash(cfg.AuthPasswordHash); err != nil {
			return "", fmt.Errorf("AUTH_PASSWORD_HASH: %w", err)
		}
		return cfg.AuthPasswordHash, nil
	}
	if cfg.AuthPassword == "" {
		return "", nil
	}
	hash, err := hashService.HashPassword(cfg.AuthPassword)
	if err != nil {
		return "", fmt.Errorf("can't hash shared password: %w", err)
	}
	return hash, nil
}
