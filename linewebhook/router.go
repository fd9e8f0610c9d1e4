package linewebhook

import (
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	CallbackPath = "/line-webhook"
	HealthPath   = "/healthz"
)

func NewRouter(logger lager.Logger, callback http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodPost, CallbackPath, callback)
	r.Get(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	logger.Debug("routes", lager.Data{
		"callback": CallbackPath,
		"health":   HealthPath,
	})

	return r
}
