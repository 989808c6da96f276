package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ppiankov/fakenews/internal/model"
)

const (
	frameProgress = "progress"
	frameResult   = "result"
	frameError    = "error"

	requestReadTimeout = 30 * time.Second
	writeTimeout       = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// frame is one message sent to a websocket client
type frame struct {
	Type    string        `json:"type"`
	Percent int           `json:"percent,omitempty"`
	Title   string        `json:"title,omitempty"`
	Detail  string        `json:"detail,omitempty"`
	Report  *model.Report `json:"report,omitempty"`
	Error   string        `json:"error,omitempty"`
	Code    string        `json:"code,omitempty"`
}

// progressText returns the loading title and detail shown while a run is pending
func progressText(mode model.Mode) (string, string) {
	if mode == model.ModeURL {
		return "Analyzing URL...", "Checking URL against domain markers (demo heuristic, nothing is fetched)..."
	}
	return "Analyzing Article...", "Scanning keyword signals and extracting claims (demo heuristic)..."
}

// streamHandler accepts one request per connection, emits progress frames for
// the configured delay, then a result or error frame
func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(requestReadTimeout))

	var body analyzeRequest
	if err := conn.ReadJSON(&body); err != nil {
		s.writeFrame(conn, frame{Type: frameError, Code: codeInvalidRequest, Error: "Request must be a JSON object."})
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	req, err := body.toPipeline()
	if err != nil {
		s.writeFrame(conn, frame{Type: frameError, Code: codeInvalidRequest, Error: err.Error()})
		return
	}

	// Reject invalid input before any progress is shown
	if _, _, err := s.pipeline.Validate(req); err != nil {
		s.writeStreamError(conn, r, err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// A read error means the client disconnected
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	if err := s.streamProgress(ctx, conn, req.Mode); err != nil {
		s.logger.Debug("progress stream ended", "error", err)
		return
	}

	report, err := s.pipeline.Analyze(ctx, req)
	if err != nil {
		s.writeStreamError(conn, r, err)
		return
	}

	if s.writeFrame(conn, frame{Type: frameResult, Report: report}) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
	}
}

// streamProgress emits progress frames until the configured delay elapses
func (s *Server) streamProgress(ctx context.Context, conn *websocket.Conn, mode model.Mode) error {
	delay := s.config.Server.ProgressDelay
	if delay <= 0 {
		return nil
	}
	tick := s.config.Server.ProgressTick
	if tick <= 0 || tick > delay {
		tick = delay
	}

	title, detail := progressText(mode)
	start := time.Now()

	if !s.writeFrame(conn, frame{Type: frameProgress, Percent: 0, Title: title, Detail: detail}) {
		return websocket.ErrCloseSent
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case <-ticker.C:
			percent := int(time.Since(start) * 100 / delay)
			if percent > 99 {
				percent = 99
			}
			if !s.writeFrame(conn, frame{Type: frameProgress, Percent: percent, Title: title, Detail: detail}) {
				return websocket.ErrCloseSent
			}
		}
	}
}

func (s *Server) writeStreamError(conn *websocket.Conn, r *http.Request, err error) {
	status, code, msg := s.classifyError(err)
	if status == 0 {
		return
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("analysis failed", "path", r.URL.Path, "error", err)
	}
	s.writeFrame(conn, frame{Type: frameError, Code: code, Error: msg})
}

// writeFrame sends a frame and reports whether it was delivered
func (s *Server) writeFrame(conn *websocket.Conn, f frame) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(f); err != nil {
		s.logger.Debug("websocket write failed", "error", err)
		return false
	}
	return true
}
