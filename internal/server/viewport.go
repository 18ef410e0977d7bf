package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vinnych/portfolio/internal/viewport"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// viewportMessage is the incoming WebSocket message format.
type viewportMessage struct {
	Type     string                 `json:"type"` // "observe", "scroll" or "layout"
	IDs      []string               `json:"ids,omitempty"`
	Y        float64                `json:"y"`
	Viewport viewport.Size          `json:"viewport"`
	Rects    []viewport.ElementRect `json:"rects,omitempty"`
}

// viewportReply is the outgoing WebSocket message format.
type viewportReply struct {
	Type      string             `json:"type"` // "ops" or "error"
	SessionID string             `json:"session_id"`
	Ops       []viewport.ClassOp `json:"ops,omitempty"`
	Message   string             `json:"message,omitempty"`
}

func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("viewport: websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sess := viewport.NewSession(uuid.NewString(), s.cfg.Viewport)
	logger := s.logger.With(zap.String("session", sess.ID))
	logger.Debug("viewport session opened")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("viewport: websocket read", zap.Error(err))
			}
			return
		}

		var msg viewportMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(conn, logger, viewportReply{Type: "error", SessionID: sess.ID, Message: "invalid message format"})
			continue
		}

		var ops []viewport.ClassOp
		switch msg.Type {
		case "observe":
			for _, id := range msg.IDs {
				sess.Fade.Observe(id)
			}
			continue
		case "scroll":
			ops = sess.Apply(viewport.Event{Kind: viewport.EventScroll, ScrollY: msg.Y})
		case "layout":
			ops = sess.Apply(viewport.Event{
				Kind:     viewport.EventLayout,
				ScrollY:  msg.Y,
				Viewport: msg.Viewport,
				Rects:    msg.Rects,
			})
		default:
			s.send(conn, logger, viewportReply{Type: "error", SessionID: sess.ID, Message: "unknown message type: " + msg.Type})
			continue
		}

		if len(ops) == 0 {
			continue
		}
		s.send(conn, logger, viewportReply{Type: "ops", SessionID: sess.ID, Ops: ops})
	}
}

func (s *Server) send(conn *websocket.Conn, logger *zap.Logger, reply viewportReply) {
	if err := conn.WriteJSON(reply); err != nil {
		logger.Warn("viewport: websocket write", zap.Error(err))
	}
}
