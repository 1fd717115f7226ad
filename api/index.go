package handler

import (
	"bookit/config"
	"bookit/di"
	"bookit/shared/logger"
	"bookit/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app     *di.Application
	initErr error
	once    sync.Once
)

// Handler serves a single request in a serverless runtime. The application is built
// on the first call and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize application")
		}
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	app.HTTP.ServeHTTP(w, r)
}
