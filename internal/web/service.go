package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/atomchess/atomchess/internal/atomic"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Service struct {
	registry *Registry
	hub      *Hub
}

func NewService(registry *Registry, hub *Hub) *Service {
	return &Service{
		registry: registry,
		hub:      hub,
	}
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	id := s.registry.Create()

	view, err := s.registry.Snapshot(id)
	if err != nil {
		log.Error().Err(err).Str("gameID", id).Msg("Failed to read created game")
		http.Error(w, "Failed to create game", http.StatusInternalServerError)
		return
	}

	log.Info().Str("gameID", id).Msg("Game created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(view)
}

func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	view, err := s.registry.Snapshot(gameID)
	if err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("Failed to fetch game")
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

type MakeMoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Service) MakeMoveHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	var req MakeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Info().Str("gameID", gameID).Str("from", req.From).Str("to", req.To).Msg("MakeMoveHandler called")

	result, err := s.registry.SubmitMove(gameID, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, ErrGameNotFound):
			http.Error(w, "Game not found", http.StatusNotFound)
		case errors.Is(err, atomic.ErrInvalidCoordinate):
			log.Error().Err(err).Str("gameID", gameID).Msg("Malformed square notation")
			http.Error(w, fmt.Sprintf("Invalid coordinate: %s", err.Error()), http.StatusBadRequest)
		case errors.Is(err, atomic.ErrGameFinished):
			http.Error(w, "Game already finished", http.StatusConflict)
		default:
			log.Info().Str("gameID", gameID).Str("from", req.From).Str("to", req.To).Msg("Move rejected")
			http.Error(w, fmt.Sprintf("Illegal move: %s", err.Error()), http.StatusBadRequest)
		}
		return
	}

	log.Info().
		Str("gameID", gameID).
		Str("from", result.From).
		Str("to", result.To).
		Bool("capture", result.Capture).
		Str("status", string(result.Status)).
		Msg("Move executed successfully")

	if s.hub != nil {
		updateType := "move"
		if result.GameOver {
			updateType = "game_end"
		}
		s.hub.BroadcastGameUpdate(GameUpdate{
			GameID: gameID,
			Type:   updateType,
			Data:   result,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// RenderGameHandler returns the plain-text board dump, handy for curl.
func (s *Service) RenderGameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	view, err := s.registry.Snapshot(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, view.Board)
}
