package router

import (
	"database/sql"
	"net/http"

	_ "goat-tracker/docs"
	mem "goat-tracker/internal/adapters/storage/memory"
	pg "goat-tracker/internal/adapters/storage/postgres"
	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/dashboard"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
	"goat-tracker/internal/middleware"
	"goat-tracker/internal/platform/logger"
	"goat-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger
}

// App expone el handler y los services que se reconfiguran en caliente.
type App struct {
	Handler   http.Handler
	Dashboard *dashboard.Service
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		goatRepo     goats.Repository
		healthRepo   health.Repository
		breedingRepo breeding.Repository
	)

	if opts.DB != nil {
		goatRepo = pg.NewGoatsRepo(opts.DB)
		healthRepo = pg.NewHealthRepo(opts.DB)
		breedingRepo = pg.NewBreedingRepo(opts.DB)
	} else {
		goatRepo = mem.NewGoatRepo()
		healthRepo = mem.NewHealthRepo()
		breedingRepo = mem.NewBreedingRepo()
	}

	// Services por módulo
	goatsSvc := goats.NewService(goatRepo)
	healthSvc := health.NewService(healthRepo)
	breedingSvc := breeding.NewService(breedingRepo, goatsSvc, log)
	dashboardSvc := dashboard.NewService(goatsSvc, healthSvc, breedingSvc, log)

	// Rutas por módulo
	goats.RegisterRoutes(r, goatsSvc)
	health.RegisterRoutes(r, healthSvc, goatsSvc)
	breeding.RegisterRoutes(r, breedingSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return &App{
		Handler:   r,
		Dashboard: dashboardSvc,
	}
}
