package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type submitMoveRequest struct {
	UUID  string  `json:"uuid"`
	Board [][]int `json:"board"`
}

type submitMoveResponse struct {
	UUID     string       `json:"uuid"`
	Board    entity.Board `json:"board"`
	GameOver bool         `json:"game_over"`
	Winner   string       `json:"winner"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handleSubmitMove - accepts the human's full-board snapshot for one game
// and answers with the board after the computer's reply.
func (that *Server) handleSubmitMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleSubmitMove")

	gameID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid UUID", "game id in URL is not a valid UUID")
		return
	}

	var req submitMoveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "request body must be valid JSON")
		return
	}

	// The id in the body, when present, must agree with the one keying the
	// store.
	if req.UUID != "" {
		bodyID, parseErr := uuid.Parse(req.UUID)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "Invalid UUID", "uuid in request body is not valid")
			return
		}

		if bodyID != gameID {
			writeError(w, http.StatusBadRequest, "UUID mismatch", "uuid in URL does not match uuid in body")
			return
		}
	}

	board, err := entity.NewBoard(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid board", err.Error())
		return
	}

	result, err := that.session.SubmitMove(r.Context(), gameID, board)

	switch {
	case err == nil:
	case apperror.IsValidation(err):
		writeError(w, http.StatusBadRequest, "Invalid move", err.Error())
		return
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		writeError(w, http.StatusBadRequest, "Game already over", err.Error())
		return
	default:
		log.Error("failed to submit move", "game_id", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "could not process the move")
		return
	}

	writeJSON(w, http.StatusOK, submitMoveResponse{
		UUID:     gameID.String(),
		Board:    result.Board,
		GameOver: result.GameOver,
		Winner:   result.Winner,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: message})
}
