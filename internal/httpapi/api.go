package httpapi

import (
	"log/slog"

	"trivia-app/internal/logger"
	"trivia-app/internal/trivia"
)

type API struct {
	service *trivia.Service
	log     *slog.Logger
}

func NewAPI(service *trivia.Service, log *slog.Logger) *API {
	if log == nil {
		log = logger.Get()
	}
	return &API{
		service: service,
		log:     log,
	}
}
