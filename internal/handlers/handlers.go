package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ordertracker/docs"
	"github.com/GlebRadaev/ordertracker/internal/config"
	activityhandlers "github.com/GlebRadaev/ordertracker/internal/handlers/activity"
	authhandlers "github.com/GlebRadaev/ordertracker/internal/handlers/auth"
	exporthandlers "github.com/GlebRadaev/ordertracker/internal/handlers/export"
	ordershandlers "github.com/GlebRadaev/ordertracker/internal/handlers/orders"
	storagehandlers "github.com/GlebRadaev/ordertracker/internal/handlers/storage"
	summaryhandlers "github.com/GlebRadaev/ordertracker/internal/handlers/summary"
	"github.com/GlebRadaev/ordertracker/internal/service"
	"github.com/GlebRadaev/ordertracker/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	ListOrders(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	RegisterPayment(w http.ResponseWriter, r *http.Request)
}

type SummaryHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type ActivityHandler interface {
	GetActivityLog(w http.ResponseWriter, r *http.Request)
}

type ExportHandler interface {
	ExportOrders(w http.ResponseWriter, r *http.Request)
	ExportActivityLog(w http.ResponseWriter, r *http.Request)
}

type StorageHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Migrate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	OrderHandler    OrderHandler
	SummaryHandler  SummaryHandler
	ActivityHandler ActivityHandler
	ExportHandler   ExportHandler
	StorageHandler  StorageHandler

	tokens       auth.JWTServiceInterface
	authRequired bool
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, cfg.CookieSecure),
		OrderHandler:    ordershandlers.New(s.OrderService),
		SummaryHandler:  summaryhandlers.New(s.SummaryService, s.OrderService),
		ActivityHandler: activityhandlers.New(s.ActivityService),
		ExportHandler:   exporthandlers.New(s.ExportService),
		StorageHandler:  storagehandlers.New(s.StorageService, s.MigrateService),
		tokens:          s.Tokens,
		authRequired:    s.AuthRequired,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", h.AuthHandler.Login)
		r.Delete("/auth", h.AuthHandler.Logout)

		r.Group(func(r chi.Router) {
			if h.authRequired {
				r.Use(auth.Middleware(h.tokens))
			} else {
				r.Use(auth.Identify(h.tokens))
			}
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.ListOrders)
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/summary", h.SummaryHandler.GetSummary)
				r.Put("/{id}", h.OrderHandler.UpdateOrder)
				r.Put("/{id}/payment", h.OrderHandler.RegisterPayment)
			})
			r.Get("/dashboard", h.SummaryHandler.GetDashboard)
			r.Get("/activity-log", h.ActivityHandler.GetActivityLog)
			r.Route("/export", func(r chi.Router) {
				r.Get("/orders", h.ExportHandler.ExportOrders)
				r.Get("/activity-log", h.ExportHandler.ExportActivityLog)
			})
			r.Post("/migrate-to-kv", h.StorageHandler.Migrate)
			r.Get("/storage", h.StorageHandler.GetStatus)
		})
	})

	return r
}
