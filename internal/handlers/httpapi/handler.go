package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/ratelimit"
	"github.com/wheelparty/chaoswheel/internal/services/room"
	"github.com/wheelparty/chaoswheel/internal/transport"
)

// defaultCountdownSeconds applies when a lock request omits the countdown
const defaultCountdownSeconds = 5

// Per-route request budgets, per client IP per minute
var defaultBudgets = map[string]int{
	"create":  6,
	"join":    20,
	"vote":    40,
	"react":   45,
	"lock":    12,
	"reveal":  12,
	"rematch": 10,
}

// Config holds the handler's collaborators
type Config struct {
	Service    room.Service
	Subscriber transport.Subscriber

	// ShareBaseURL is the public base URL encoded into share-link QR
	// codes, e.g. "https://wheel.example.com"
	ShareBaseURL string

	// Limiters overrides the per-route rate limiters; missing routes get
	// a token bucket with the default budget
	Limiters map[string]ratelimit.Limiter
}

// Handler serves the room API
type Handler struct {
	service      room.Service
	subscriber   transport.Subscriber
	shareBaseURL string
	limiters     map[string]ratelimit.Limiter
}

// New creates the HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.Service == nil {
		return nil, errors.New("config and service cannot be nil")
	}
	if cfg.Subscriber == nil {
		return nil, errors.New("subscriber is required")
	}

	limiters := make(map[string]ratelimit.Limiter, len(defaultBudgets))
	for route, budget := range defaultBudgets {
		if override, ok := cfg.Limiters[route]; ok {
			limiters[route] = override
			continue
		}
		limiter, err := ratelimit.New(&ratelimit.Config{
			Limit:    budget,
			Interval: time.Minute,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build %s limiter: %w", route, err)
		}
		limiters[route] = limiter
	}

	return &Handler{
		service:      cfg.Service,
		subscriber:   cfg.Subscriber,
		shareBaseURL: strings.TrimSuffix(cfg.ShareBaseURL, "/"),
		limiters:     limiters,
	}, nil
}

// Register mounts all routes on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/rooms", h.createRoom)
	mux.HandleFunc("GET /api/rooms/{id}", h.getSnapshot)
	mux.HandleFunc("POST /api/rooms/{id}/join", h.joinRoom)
	mux.HandleFunc("POST /api/rooms/{id}/vote", h.castVote)
	mux.HandleFunc("POST /api/rooms/{id}/react", h.sendReaction)
	mux.HandleFunc("POST /api/rooms/{id}/lock", h.lockRoom)
	mux.HandleFunc("POST /api/rooms/{id}/reveal", h.revealRoom)
	mux.HandleFunc("POST /api/rooms/{id}/rematch", h.rematch)
	mux.HandleFunc("GET /api/rooms/{id}/events", h.eventFeed)
	mux.HandleFunc("GET /api/rooms/{id}/qr", h.shareQR)
}

type createRoomRequest struct {
	Name         string   `json:"name"`
	Options      []string `json:"options"`
	HostNickname string   `json:"hostNickname"`
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "create") {
		return
	}

	var req createRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	output, err := h.service.CreateRoom(r.Context(), &room.CreateRoomInput{
		Name:         req.Name,
		OptionLabels: req.Options,
		HostNickname: req.HostNickname,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"room": output.Room,
		"host": output.Host,
	})
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetSnapshot(r.Context(), &room.GetSnapshotInput{
		RoomID: r.PathValue("id"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"room":         output.Room,
		"participants": output.Participants,
		"votes":        output.Votes,
	})
}

type joinRoomRequest struct {
	Nickname string                 `json:"nickname"`
	Role     models.ParticipantRole `json:"role"`
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "join") {
		return
	}

	var req joinRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	output, err := h.service.JoinRoom(r.Context(), &room.JoinRoomInput{
		RoomID:   r.PathValue("id"),
		Nickname: req.Nickname,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"participant": output.Participant,
	})
}

type castVoteRequest struct {
	ParticipantID string `json:"participantId"`
	OptionID      string `json:"optionId"`
}

func (h *Handler) castVote(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "vote") {
		return
	}

	var req castVoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.service.CastVote(r.Context(), &room.CastVoteInput{
		RoomID:        r.PathValue("id"),
		ParticipantID: req.ParticipantID,
		OptionID:      req.OptionID,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type sendReactionRequest struct {
	ParticipantID string `json:"participantId"`
	Emoji         string `json:"emoji"`
}

func (h *Handler) sendReaction(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "react") {
		return
	}

	var req sendReactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.service.SendReaction(r.Context(), &room.SendReactionInput{
		RoomID:        r.PathValue("id"),
		ParticipantID: req.ParticipantID,
		Emoji:         req.Emoji,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type lockRoomRequest struct {
	CallerID string `json:"participantId"`

	// CountdownSeconds defaults when omitted; an explicit zero disables
	// the countdown
	CountdownSeconds *int `json:"countdownSeconds"`
}

func (h *Handler) lockRoom(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "lock") {
		return
	}

	var req lockRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	countdown := defaultCountdownSeconds
	if req.CountdownSeconds != nil {
		countdown = *req.CountdownSeconds
	}

	output, err := h.service.LockRoom(r.Context(), &room.LockRoomInput{
		RoomID:           r.PathValue("id"),
		CallerID:         req.CallerID,
		CountdownSeconds: countdown,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"seedHash":         output.SeedCommitment,
		"countdownSeconds": output.CountdownSeconds,
	})
}

type revealRoomRequest struct {
	CallerID string `json:"participantId"`
}

func (h *Handler) revealRoom(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "reveal") {
		return
	}

	var req revealRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	output, err := h.service.RevealRoom(r.Context(), &room.RevealRoomInput{
		RoomID:   r.PathValue("id"),
		CallerID: req.CallerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	body := map[string]any{
		"winnerOptionId": output.WinnerOptionID,
		"modifier":       output.Modifier,
		"seed":           output.RevealedSeed,
	}
	if output.Weights != nil {
		body["weights"] = output.Weights
	}
	writeJSON(w, http.StatusOK, body)
}

type rematchRequest struct {
	CallerID string `json:"participantId"`
}

func (h *Handler) rematch(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "rematch") {
		return
	}

	var req rematchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.service.Rematch(r.Context(), &room.RematchInput{
		RoomID:   r.PathValue("id"),
		CallerID: req.CallerID,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) shareQR(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	// The QR is only useful for a room that exists
	if _, err := h.service.GetSnapshot(r.Context(), &room.GetSnapshotInput{RoomID: roomID}); err != nil {
		writeServiceError(w, err)
		return
	}

	base := h.shareBaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	png, err := qrcode.Encode(base+"/r/"+roomID, qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render QR code", nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Printf("room %s: failed to write QR response: %v", roomID, err)
	}
}

// allow checks the route's rate limiter; on denial it writes the 429 and
// returns false
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, route string) bool {
	limiter, ok := h.limiters[route]
	if !ok {
		return true
	}

	decision := limiter.Allow(route + ":" + clientIP(r))
	if decision.OK {
		return true
	}

	writeError(w, http.StatusTooManyRequests, "rate limited", map[string]any{
		"retryAfterMs": decision.RetryAfter.Milliseconds(),
	})
	return false
}

// clientIP resolves the caller's address, trusting forwarding headers the
// way the usual reverse-proxy deployment sets them
func clientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		first, _, _ := strings.Cut(xfwd, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, extra map[string]any) {
	body := map[string]any{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// writeServiceError maps service errors onto the API's status taxonomy
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "room not found", nil)
	case errors.Is(err, room.ErrParticipantNotFound):
		writeError(w, http.StatusForbidden, "invalid participant", nil)
	case errors.Is(err, room.ErrNotHost):
		writeError(w, http.StatusForbidden, "host only", nil)
	case errors.Is(err, room.ErrSpectatorVote):
		writeError(w, http.StatusForbidden, "spectators cannot vote", nil)
	case errors.Is(err, room.ErrOptionNotFound):
		writeError(w, http.StatusBadRequest, "invalid option", nil)
	case errors.Is(err, room.ErrInvalidOptions):
		writeError(w, http.StatusBadRequest, "between 2 and 12 options required", nil)
	case errors.Is(err, room.ErrInvalidCountdown):
		writeError(w, http.StatusBadRequest, "invalid countdown", nil)
	case errors.Is(err, room.ErrVotingClosed):
		writeError(w, http.StatusConflict, "voting is closed", nil)
	case errors.Is(err, room.ErrIllegalTransition):
		writeError(w, http.StatusConflict, "invalid room phase", nil)
	case errors.Is(err, room.ErrRevealInProgress):
		writeError(w, http.StatusConflict, "reveal in progress", nil)
	case errors.Is(err, room.ErrIntegrityFailure):
		writeError(w, http.StatusConflict, "seed commitment invalid", nil)
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	}
}
