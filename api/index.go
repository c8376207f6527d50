// Package handler exposes the API as a single serverless function.
package handler

import (
	"net/http"
	"rentdesk/config"
	"rentdesk/di"
	"rentdesk/shared/logger"
	"sync"

	rentdeskHTTP "rentdesk/transport/http"
)

var (
	app     *rentdeskHTTP.HTTP
	appOnce sync.Once
)

// Handler wires the service on the first invocation of a warm instance and
// reuses it afterwards.
func Handler(w http.ResponseWriter, r *http.Request) {
	appOnce.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
