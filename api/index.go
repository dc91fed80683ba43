package handler

import (
	"net/http"
	"sync"

	"studyroom/config"
	"studyroom/di"
	"studyroom/shared/logger"
	transport "studyroom/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
