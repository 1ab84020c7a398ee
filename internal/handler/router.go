package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/pwtool/internal/config"
	"github.com/vaultpass/pwtool/internal/middleware"
	"github.com/vaultpass/pwtool/internal/service"
)

// NewRouter wires every API route. ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg config.Config) http.Handler {
	v := validator.New()
	genHandler := NewGeneratorHandler(service.NewGeneratorService(cfg.DefaultLength), v)
	strengthHandler := NewStrengthHandler(service.NewStrengthService(), v)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/check", strengthHandler.HandleCheck)
	})

	return r
}
