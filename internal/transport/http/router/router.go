package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adpulse/adpulse/internal/config"
	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/transport/http/handlers"
	mw "github.com/adpulse/adpulse/internal/transport/http/middleware"
)

func New(svc *service.Service, cfg *config.Config) http.Handler {
	users := handlers.NewUsersHandler(svc)
	ads := handlers.NewAdsHandler(svc)
	ml := handlers.NewMLHandler(svc)
	analytics := handlers.NewAnalyticsHandler(svc)
	health := handlers.NewHealthHandler()

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.AccessLog)
	r.Use(mw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.HeaderXRequestID},
		MaxAge:         300,
	}))

	if cfg.RLEnabled {
		r.Use(httprate.Limit(
			cfg.RLLimit,
			cfg.RLWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}

	r.Get("/healthz", health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", users.Create)
		r.Get("/users/{user_id}", users.Get)
		r.Post("/users/{user_id}/interactions", users.TrackInteraction)
		r.Get("/users/{user_id}/interactions", users.ListInteractions)
		r.Post("/users/{user_id}/predict", ml.Predict)
		r.Get("/users/{user_id}/analytics", analytics.User)
		r.Get("/users/{user_id}/ads", ads.Personalized)

		r.Get("/ads/categories", ads.Categories)
		r.Get("/ads/categories/{category}", ads.ByCategory)
		r.Get("/ads/random", ads.Random)

		r.Post("/ml/train", ml.Train)
		r.Get("/ml/info", ml.Info)
		r.Post("/ml/predict/{user_id}", ml.Predict)

		r.Get("/analytics/overview", analytics.Overview)
		r.Get("/analytics/interests", analytics.Interests)
		r.Get("/analytics/interactions", analytics.Interactions)
	})

	return r
}
