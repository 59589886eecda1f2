package httpapi

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/services/room"
	"github.com/wheelparty/chaoswheel/internal/transport"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Rooms are joined by shareable link; the feed carries nothing the
	// snapshot endpoint does not
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventFeed streams a room's events and room updates over a WebSocket.
// A client that reconnects passes afterSeq to replay the events it missed
// before the live stream takes over; overlap is fine, consumers dedupe by
// sequence number.
func (h *Handler) eventFeed(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	afterSeq, err := parseAfterSeq(r.URL.Query().Get("afterSeq"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid afterSeq", nil)
		return
	}

	// The subscription must outlive the handler: the upgrade hijacks the
	// connection and the request context dies when this function returns
	msgs, cancel, err := h.subscriber.Subscribe(context.WithoutCancel(r.Context()), roomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Live first, backlog second: anything appended in between shows up
	// on both sides rather than on neither
	backlog, err := h.service.GetEvents(r.Context(), &room.GetEventsInput{
		RoomID:   roomID,
		AfterSeq: afterSeq,
	})
	if err != nil {
		cancel()
		writeServiceError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		log.Printf("room %s: websocket upgrade failed: %v", roomID, err)
		return
	}

	go writePump(conn, backlog.Events, msgs, cancel)
	go readPump(conn)
}

func parseAfterSeq(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// writePump replays the backlog, then forwards transport messages to the
// client and keeps the connection alive with pings
func writePump(conn *websocket.Conn, backlog []*models.Event, msgs <-chan transport.Message, cancel func()) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
	}()

	for _, event := range backlog {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(transport.Message{Event: event}); err != nil {
			return
		}
	}

	for {
		select {
		case msg, ok := <-msgs:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and notices disconnects
func readPump(conn *websocket.Conn) {
	defer conn.Close()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
