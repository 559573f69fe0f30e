package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/zeusync/narrowphase/internal/core/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWebSocket answers one Query per text frame, in order, until the
// client closes. Invalid queries get a Response with Error set; the stream
// stays open.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", log.String("remote", r.RemoteAddr), log.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.MaxMessageSize)
	logger := s.logger.With(log.String("remote", conn.RemoteAddr().String()))
	logger.Debug("Websocket client connected")

	var answered int
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				logger.Debug("Websocket read failed", log.Error(err))
			}
			break
		}
		s.requests.Add(1)

		resp := s.answerFrame(data)
		if err := conn.WriteJSON(resp); err != nil {
			logger.Debug("Websocket write failed", log.Error(err))
			break
		}
		answered++
	}

	logger.Debug("Websocket client disconnected", log.Int("answered", answered))
}

func (s *Server) answerFrame(data []byte) Response {
	q, err := decodeQuery(bytes.NewReader(data))
	if err != nil {
		return Response{Error: fmt.Errorf("%w: %w", ErrInvalidQuery, err).Error()}
	}

	resp, err := s.answer(q)
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
