package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/hikma-lambda/docs"
	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	"github.com/saulo-duarte/hikma-lambda/internal/config"
	"github.com/saulo-duarte/hikma-lambda/internal/content"
	"github.com/saulo-duarte/hikma-lambda/internal/middlewares"
	"github.com/saulo-duarte/hikma-lambda/internal/quiz"
)

type RouterConfig struct {
	ContentHandler *content.Handler
	AIQuizHandler  *aiquiz.Handler
	QuizHandler    *quiz.Handler
	CorsOrigins    []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/content", content.Routes(cfg.ContentHandler))
	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/certificates", quiz.CertificateRoutes(cfg.QuizHandler))
	return r
}
