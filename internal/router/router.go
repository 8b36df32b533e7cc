package router

import (
	"database/sql"
	"net/http"

	_ "shelter-adoptions/docs"
	"shelter-adoptions/internal/adapters/storage/memory"
	"shelter-adoptions/internal/adapters/storage/sqlstore"
	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/middleware"
	"shelter-adoptions/internal/platform/logger"
	"shelter-adoptions/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL (Postgres o SQLite, ya migrada). Si no, in-memory.
	DB *sql.DB

	// nil = Nop
	Logger logger.Logger
	// nil = registry nuevo por router
	Metrics *metrics.Metrics
}

// repositories es lo que necesita el router de un backend de storage.
type repositories interface {
	Animals() animals.Repository
	Adopters() adopters.Repository
	Attendants() attendants.Repository
	Adoptions() adoptions.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.AccessLog)
	r.Use(m.Middleware)
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var store repositories
	if opts.DB != nil {
		store = sqlstore.New(opts.DB)
	} else {
		store = memory.NewStore()
	}

	// Services por módulo
	animalsSvc := animals.NewService(store.Animals())
	adoptersSvc := adopters.NewService(store.Adopters())
	attendantsSvc := attendants.NewService(store.Attendants())
	adoptionsSvc := adoptions.NewService(store.Adoptions(), m)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	adopters.RegisterRoutes(r, adoptersSvc)
	attendants.RegisterRoutes(r, attendantsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)

	return r
}
