// Package handler is the serverless entry point. The application graph is built on the first
// request and reused by every warm invocation after it.
package handler

import (
	"net/http"
	"sync"

	"adscape/config"
	"adscape/di"
	"adscape/shared/logger"
)

var app = sync.OnceValue(func() http.Handler {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	return di.InitializeService()
})

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	app().ServeHTTP(w, r)
}
