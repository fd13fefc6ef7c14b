package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mind-engage/gabarito/internal/answerkey"
	"github.com/mind-engage/gabarito/internal/logging"
	"github.com/mind-engage/gabarito/internal/metrics"
	"github.com/mind-engage/gabarito/internal/results"
	"github.com/mind-engage/gabarito/internal/storage"
)

type AssetStore interface {
	Open(name string) (*storage.Asset, error)
}

// Deps is everything the handlers need. Metrics may be nil.
type Deps struct {
	Key     answerkey.Key
	Store   results.Store
	Assets  AssetStore
	Pages   *Pages
	Log     *zap.Logger
	Metrics *metrics.Metrics

	StaticDir   string
	ExamFile    string
	CORSOrigins []string
}

func NewRouter(d Deps) chi.Router {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.RequestLogger(d.Log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/", LandingHandler(d))
	r.Post("/", LandingSubmitHandler(d))
	r.Get("/download/{filename}", DownloadHandler(d))
	r.Get("/gabarito", AnswerSheetHandler(d))
	r.Post("/submit", SubmitHandler(d))

	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/notas", AdminListHandler(d))
		ar.Get("/notas.xlsx", AdminExportHandler(d))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", ReadyHandler(d))
	return r
}

// GET /readyz
func ReadyHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := d.Store.Ping(ctx); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
