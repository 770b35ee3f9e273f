package router

import (
	"net/http"

	"github.com/api-sage/bank-back-office/internal/adapter/http/middleware"
)

// RouteRegistrar is implemented by every controller.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

// New builds the full HTTP handler: all controller routes behind the auth
// middleware, the whole mux behind the request logger.
func New(authMiddleware func(http.Handler) http.Handler, controllers ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()

	for _, controller := range controllers {
		if controller != nil {
			controller.RegisterRoutes(mux, authMiddleware)
		}
	}

	return middleware.RequestLogger(mux)
}
