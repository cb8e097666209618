package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Shared by the server binary and the tests.
func NewRouter(service *Service, hub *Hub) *mux.Router {
	router := mux.NewRouter()

	// Add CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", service.HealthHandler).Methods("GET")
	api.HandleFunc("/games", service.CreateGameHandler).Methods("POST")
	api.HandleFunc("/games/{id}", service.GetGameHandler).Methods("GET")
	api.HandleFunc("/games/{id}/moves", service.MakeMoveHandler).Methods("POST")
	api.HandleFunc("/games/{id}/board", service.RenderGameHandler).Methods("GET")
	api.HandleFunc("/games/{id}/ws", service.WebSocketHandler(hub)).Methods("GET")

	return router
}
