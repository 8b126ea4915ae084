// Package httpapi exposes the match operations over HTTP and pushes state
// updates to WebSocket viewers after every accepted mutation.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/fieldside/scorekeeper/internal/export"
	"github.com/fieldside/scorekeeper/internal/models"
	"github.com/fieldside/scorekeeper/internal/push"
	"github.com/fieldside/scorekeeper/internal/services/match"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the console serves trusted operators on a local network
		return true
	},
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	svc match.Service
	hub *push.Hub

	// ctx bounds the lifetime of viewer connections; the request context
	// cancels as soon as the upgrade handler returns
	ctx context.Context
}

// NewHandler creates a new handler
func NewHandler(ctx context.Context, svc match.Service, hub *push.Hub) *Handler {
	return &Handler{
		svc: svc,
		hub: hub,
		ctx: ctx,
	}
}

// Routes registers every endpoint on the given router
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Get("/ws", h.HandleWebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Get("/export", h.ExportCSV)

		r.Post("/teams", h.SelectTeams)
		r.Post("/setup", h.Setup)
		r.Post("/roster/refresh", h.RefreshRoster)

		r.Post("/match/start", h.StartMatch)
		r.Post("/match/submit", h.Submit)

		r.Post("/scores", h.AddScore)
		r.Put("/scores/{id}", h.EditScore)
		r.Delete("/scores/{id}", h.DeleteScore)

		r.Post("/timeouts", h.CallTimeout)
		r.Put("/timeouts/{id}", h.ReassignTimeout)

		r.Post("/halftime", h.DeclareHalftime)
		r.Delete("/halftime/{id}", h.DeleteHalftime)

		r.Post("/stoppage/toggle", h.ToggleStoppage)

		r.Post("/recovery/accept", h.AcceptRecovery)
		r.Post("/recovery/discard", h.DiscardRecovery)
	})
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "scorekeeper",
		"viewers": h.hub.ClientCount(),
	})
}

// HandleWebSocket upgrades the connection and registers a viewer
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := push.NewClient(uuid.New().String(), conn, h.hub)
	h.hub.Register(c)

	// pumps outlive the request; they stop when the connection closes or
	// the handler context cancels
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)
}

// GetState returns everything the scoreboard renders
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.State(r.Context(), &match.StateInput{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// ExportCSV streams the current event log as a CSV download without
// submitting or resetting the match
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.State(r.Context(), &match.StateInput{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	events := make([]models.Event, 0, len(state.Events))
	for _, v := range state.Events {
		events = append(events, v.Event)
	}
	rows := export.Rows(events, state.TeamA, state.TeamB)

	matchID := state.TeamA + " vs " + state.TeamB
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(matchID)))

	if err := export.WriteCSV(w, rows); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

type selectTeamsRequest struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`
}

// SelectTeams sets the two team names
func (h *Handler) SelectTeams(w http.ResponseWriter, r *http.Request) {
	var req selectTeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.SelectTeams(r.Context(), &match.SelectTeamsInput{
		TeamA: req.TeamA,
		TeamB: req.TeamB,
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

type setupRequest struct {
	MatchMinutes           int    `json:"matchMinutes"`
	HalftimeTriggerMinutes int    `json:"halftimeTriggerMinutes"`
	HalftimeBreakMinutes   int    `json:"halftimeBreakMinutes"`
	TimeoutSeconds         int    `json:"timeoutSeconds"`
	TimeoutsPerTeam        int    `json:"timeoutsPerTeam"`
	TimeoutsPerHalf        int    `json:"timeoutsPerHalf"`
	HalftimeScore          int    `json:"halftimeScore"`
	GenderStart            string `json:"genderStart"`
}

// Setup replaces the match configuration
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.Setup(r.Context(), &match.SetupInput{
		Config: models.MatchConfig{
			MatchMinutes:           req.MatchMinutes,
			HalftimeTriggerMinutes: req.HalftimeTriggerMinutes,
			HalftimeBreakMinutes:   req.HalftimeBreakMinutes,
			TimeoutSeconds:         req.TimeoutSeconds,
			TimeoutsPerTeam:        req.TimeoutsPerTeam,
			TimeoutsPerHalf:        req.TimeoutsPerHalf,
			HalftimeScore:          req.HalftimeScore,
			GenderStart:            models.GenderStart(req.GenderStart),
		},
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// RefreshRoster re-fetches the roster from the provider
func (h *Handler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.FetchRoster(r.Context(), &match.FetchRosterInput{})
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// StartMatch starts the match and the primary clock
func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.StartMatch(r.Context(), &match.StartMatchInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

type scoreRequest struct {
	Side     string `json:"side"`
	Scorer   string `json:"scorer"`
	Assistor string `json:"assistor"`
}

// AddScore records a goal
func (h *Handler) AddScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.AddScore(r.Context(), &match.AddScoreInput{
		Side:     models.TeamSide(req.Side),
		Scorer:   req.Scorer,
		Assistor: req.Assistor,
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

type editScoreRequest struct {
	Scorer   string `json:"scorer"`
	Assistor string `json:"assistor"`
}

// EditScore updates scorer and assistor on a score event
func (h *Handler) EditScore(w http.ResponseWriter, r *http.Request) {
	var req editScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.EditScore(r.Context(), &match.EditScoreInput{
		EventID:  chi.URLParam(r, "id"),
		Scorer:   req.Scorer,
		Assistor: req.Assistor,
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// DeleteScore removes a score event
func (h *Handler) DeleteScore(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DeleteScore(r.Context(), &match.DeleteScoreInput{
		EventID: chi.URLParam(r, "id"),
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

type timeoutRequest struct {
	Side string `json:"side"`
}

// CallTimeout records a timeout
func (h *Handler) CallTimeout(w http.ResponseWriter, r *http.Request) {
	var req timeoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.CallTimeout(r.Context(), &match.CallTimeoutInput{
		Side: models.TeamSide(req.Side),
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// ReassignTimeout moves a timeout to the other side
func (h *Handler) ReassignTimeout(w http.ResponseWriter, r *http.Request) {
	var req timeoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	out, err := h.svc.ReassignTimeout(r.Context(), &match.ReassignTimeoutInput{
		EventID: chi.URLParam(r, "id"),
		NewSide: models.TeamSide(req.Side),
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// DeclareHalftime declares halftime manually
func (h *Handler) DeclareHalftime(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DeclareHalftime(r.Context(), &match.DeclareHalftimeInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// DeleteHalftime removes the most recent halftime event
func (h *Handler) DeleteHalftime(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DeleteHalftime(r.Context(), &match.DeleteHalftimeInput{
		EventID: chi.URLParam(r, "id"),
	})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// ToggleStoppage flips the stoppage flag
func (h *Handler) ToggleStoppage(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ToggleStoppage(r.Context(), &match.ToggleStoppageInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// Submit exports the match and resets to a fresh one
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Submit(r.Context(), &match.SubmitInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// AcceptRecovery restores the pending snapshot
func (h *Handler) AcceptRecovery(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Recover(r.Context(), &match.RecoverInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// DiscardRecovery refuses the pending snapshot
func (h *Handler) DiscardRecovery(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DiscardRecovery(r.Context(), &match.DiscardRecoveryInput{})
	if err != nil {
		respondError(w, errorStatus(err), err.Error())
		return
	}

	h.pushState(r)
	respondJSON(w, http.StatusOK, out)
}

// pushState broadcasts the fresh state after an accepted mutation
func (h *Handler) pushState(r *http.Request) {
	h.BroadcastState(r.Context())
}

// BroadcastState pushes the current state to all viewers. The tick loop
// also calls this when clock state changes between mutations.
func (h *Handler) BroadcastState(ctx context.Context) {
	out, err := h.svc.State(ctx, &match.StateInput{})
	if err != nil {
		return
	}

	h.hub.Broadcast(push.Message{
		Type:      push.MessageTypeState,
		Payload:   out,
		Timestamp: time.Now(),
	})
}

// errorStatus maps service errors onto HTTP status codes
func errorStatus(err error) int {
	var matchErr match.MatchError
	if !errors.As(err, &matchErr) {
		return http.StatusInternalServerError
	}

	switch matchErr {
	case match.ErrEventNotFound, match.ErrNoRecoveryPending:
		return http.StatusNotFound
	case match.ErrMatchAlreadyStarted, match.ErrMatchNotStarted,
		match.ErrStoppageActive, match.ErrScoreCapReached,
		match.ErrNoTimeoutsRemaining, match.ErrHalftimeAlreadyDeclared,
		match.ErrNoEventsLogged, match.ErrSubmissionInProgress:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
