package api

import (
	auditAPI "sharevault/internal/app/server/api/http/audit"
	healthAPI "sharevault/internal/app/server/api/http/health"
	itemAPI "sharevault/internal/app/server/api/http/item"
	"sharevault/internal/app/server/api/http/middleware"
	"sharevault/internal/app/server/api/http/middleware/auth"
	"sharevault/internal/app/server/api/http/middleware/logger"
	"sharevault/internal/app/server/api/http/middleware/origin"
	publicAPI "sharevault/internal/app/server/api/http/public"
	shareAPI "sharevault/internal/app/server/api/http/share"
	statsAPI "sharevault/internal/app/server/api/http/stats"
	userAPI "sharevault/internal/app/server/api/http/user"
	"sharevault/internal/app/server/config"
	"sharevault/internal/domain/access"
	"sharevault/internal/domain/audit"
	"sharevault/internal/domain/item"
	"sharevault/internal/domain/session"
	"sharevault/internal/domain/share"
	"sharevault/internal/domain/stats"
	"sharevault/internal/domain/user"
	"sharevault/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Item   *itemAPI.Handler
	Share  *shareAPI.Handler
	Public *publicAPI.Handler
	Audit  *auditAPI.Handler
	Stats  *statsAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Handle("/metrics", promhttp.Handler())

	humaConfig := huma.DefaultConfig("ShareVault API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Item.SetupRoutes(API)
	h.Share.SetupRoutes(API)
	h.Public.SetupRoutes(API)
	h.Audit.SetupRoutes(API)
	h.Stats.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()
	hasher := user.NewBcryptHasher()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewCredentialValidator(), hasher, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	itemRepo := postgres.NewItemRepository(pool, log)
	itemService := item.NewService(itemRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	itemHandler := itemAPI.NewHandler(itemService, log, middlewares.GetAllAndClear())

	shareRepo := postgres.NewShareRepository(pool, log)
	shareService := share.NewService(shareRepo, itemRepo, hasher, cfg.Share.FrontendURL, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	shareHandler := shareAPI.NewHandler(shareService, log, middlewares.GetAllAndClear())

	auditRepo := postgres.NewAuditRepository(pool, log)
	auditService := audit.NewService(auditRepo, itemRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	auditHandler := auditAPI.NewHandler(auditService, log, middlewares.GetAllAndClear())

	evaluator := access.NewEvaluator(shareRepo, itemRepo, auditService, hasher, cfg.Share.DenyDelay, log)
	middlewares.Add(origin.Middleware())
	middlewares.Add(loggerMW.Middleware())
	publicHandler := publicAPI.NewHandler(shareService, evaluator, log, middlewares.GetAllAndClear())

	statsRepo := postgres.NewStatsRepository(pool, log)
	statsService := stats.NewService(statsRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	statsHandler := statsAPI.NewHandler(statsService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Item:   itemHandler,
		Share:  shareHandler,
		Public: publicHandler,
		Audit:  auditHandler,
		Stats:  statsHandler,
	}
}
