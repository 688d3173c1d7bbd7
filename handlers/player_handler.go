package handlers

import (
	"net/http"

	"github.com/Dosada05/championship/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Register godoc
// @Summary Register a player
// @Description Stores the player, assigns a registration code and emails it.
// @Tags players
// @Accept json
// @Produce json
// @Param input body services.RegisterPlayerInput true "Player details"
// @Success 201 {object} map[string]interface{} "message and player"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 422 {object} map[string]interface{} "Field errors"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /register [post]
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message": "Registration successful",
		"player":  player,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers godoc
// @Summary List registered players
// @Description Newest first. search filters by name, email or address.
// @Tags players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Fuzzy search"
// @Success 200 {object} models.PlayerPage
// @Failure 400 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", services.DefaultPageSize)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.playerService.ListPlayers(r.Context(), services.ListPlayersInput{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearAll godoc
// @Summary Delete every registered player
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "message and deletedCount"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /clear-all [delete]
func (h *PlayerHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.playerService.ClearAll(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message":      "All players cleared successfully",
		"deletedCount": deleted,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
