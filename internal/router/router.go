package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/trivia-api/docs"
	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/middlewares"
	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/saulo-duarte/trivia-api/internal/quiz"
)

type RouterConfig struct {
	CategoryHandler *category.Handler
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
	// HealthCheck is optional; /health always succeeds without it.
	HealthCheck func(ctx context.Context) error
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.AllowHeaders)
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusMethodNotAllowed)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", healthHandler(cfg.HealthCheck))

	mountAPI(r, cfg)
	r.Route("/api", func(r chi.Router) {
		mountAPI(r, cfg)
	})
	return r
}

func mountAPI(r chi.Router, cfg RouterConfig) {
	r.Mount("/categories", category.Routes(cfg.CategoryHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	r.Get("/categories/{categoryId}/questions", cfg.QuestionHandler.ListQuestionsByCategory)
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				config.WithContext(r.Context()).WithError(err).Error("Health check failed")
				config.Error(w, http.StatusServiceUnavailable)
				return
			}
		}
		config.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
