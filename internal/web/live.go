package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kowalski-site/kowalski/internal/session"
	"github.com/kowalski-site/kowalski/internal/ui"
)

var upgrader = websocket.Upgrader{}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type     string `json:"type"` // "action" or "navigate"
	Action   string `json:"action,omitempty"`
	Location string `json:"location"`
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type     string `json:"type"` // "render" or "error"
	HTML     string `json:"html,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Status   int    `json:"status,omitempty"`
	Content  string `json:"content,omitempty"`
}

// liveConn serializes writes to one websocket and remembers the location
// of the tab on the other end. Tabs sharing a session each keep their own.
type liveConn struct {
	mu   sync.Mutex
	conn *websocket.Conn

	locMu    sync.Mutex
	location string
}

func (c *liveConn) loc() string {
	c.locMu.Lock()
	defer c.locMu.Unlock()
	return c.location
}

func (c *liveConn) setLoc(loc string) {
	if loc == "" {
		return
	}
	c.locMu.Lock()
	c.location = loc
	c.locMu.Unlock()
}

func (c *liveConn) send(resp liveResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(resp); err != nil {
		log.Printf("web: websocket write: %v", err)
	}
}

func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	header := http.Header{}
	sess := s.sessionWithHeader(header, r)
	d := device(r)

	// Subscribe before the handshake completes so no update is missed.
	updates, cancel := sess.Subscribe()
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	lc := &liveConn{conn: conn, location: "/"}
	if loc := r.URL.Query().Get("location"); loc != "" {
		lc.setLoc(loc)
	} else {
		sess.With(func(st *session.State) { lc.setLoc(st.Location) })
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-updates:
				s.push(lc, sess, d)
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			lc.send(liveResponse{Type: "error", Content: "invalid message format"})
			continue
		}

		switch req.Type {
		case "action":
			lc.setLoc(req.Location)
			if !s.applyAction(sess, lc, req.Action) {
				lc.send(liveResponse{Type: "error", Content: "unknown action: " + req.Action})
				continue
			}
		case "navigate":
			lc.setLoc(req.Location)
		default:
			lc.send(liveResponse{Type: "error", Content: "unknown message type: " + req.Type})
			continue
		}
		s.push(lc, sess, d)
	}
}

// applyAction runs a client action against the session, starting from the
// connection's location. A path navigation moves only this connection.
func (s *Site) applyAction(sess *session.Session, lc *liveConn, action string) bool {
	var ok bool
	sess.With(func(st *session.State) {
		st.Location = lc.loc()
		ok = st.Overlay.Dispatch(ui.Action(action))
		lc.setLoc(st.Location)
	})
	if s.cfg.Verbose {
		log.Printf("web: session %s action %q ok=%v", sess.ID, action, ok)
	}
	return ok
}

// push renders the session at the connection's own location and sends it.
func (s *Site) push(lc *liveConn, sess *session.Session, d ui.Device) {
	var (
		v   view
		err error
	)
	sess.With(func(st *session.State) {
		st.Location = lc.loc()
		v, err = s.render(st, d)
	})
	if err != nil {
		log.Printf("web: render: %v", err)
		lc.send(liveResponse{Type: "error", Content: "render failed"})
		return
	}
	lc.send(liveResponse{
		Type:     "render",
		HTML:     v.HTML,
		Title:    s.cfg.Title,
		Location: v.Location,
		Status:   v.Status,
	})
}
