package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS wraps the whole router so preflight requests never reach gin's 404 handling.
// An empty origin list falls back to the frontend URL.
func CORS(origins []string, frontendURL string) func(http.Handler) http.Handler {
	if len(origins) == 0 && frontendURL != "" {
		origins = []string{frontendURL}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
