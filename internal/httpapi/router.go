package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trivia-app/internal/logger"
	"trivia-app/internal/metrics"
	"trivia-app/internal/trivia"
)

type Options struct {
	Logger     *slog.Logger
	CORSOrigin string
	// RequestsPerMinute <= 0 disables per-client rate limiting.
	RequestsPerMinute int
	Burst             int
}

func NewRouter(service *trivia.Service, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Get()
	}
	api := NewAPI(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/categories", api.HandleCategories)
	mux.HandleFunc("/categories/{category_id}/questions", api.HandleCategoryQuestions)
	mux.HandleFunc("/questions", api.HandleQuestions)
	mux.HandleFunc("/questions/search", api.HandleSearchQuestions)
	mux.HandleFunc("/questions/{question_id}", api.HandleQuestion)
	mux.HandleFunc("/quizzes", api.HandleQuizzes)
	mux.HandleFunc("/health", api.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", api.HandleNotFound)

	var handler http.Handler = mux
	handler = rateLimitMiddleware(opts.RequestsPerMinute, opts.Burst, handler)
	handler = corsMiddleware(opts.CORSOrigin, handler)
	handler = metrics.Middleware(handler)
	return requestLogger(log, handler)
}
