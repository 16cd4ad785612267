package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/session"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// session returns the caller's session, creating one and setting the cookie
// when the request has none.
func (s *Site) session(w http.ResponseWriter, r *http.Request) *session.Session {
	return s.sessionWithHeader(w.Header(), r)
}

// sessionWithHeader is session for callers that write their own response
// headers, such as the websocket upgrade.
func (s *Site) sessionWithHeader(h http.Header, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	sess, created := s.sessions.GetOrCreate(id)
	if created {
		c := &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		h.Add("Set-Cookie", c.String())
		if s.cfg.Verbose {
			log.Printf("web: new session %s", sess.ID)
		}
	}
	return sess
}

func device(r *http.Request) ui.Device {
	return ui.ClassifyRequest(r.UserAgent(), r.Header.Get("Sec-CH-UA-Mobile"))
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var (
		v   view
		err error
	)
	sess.With(func(st *session.State) {
		st.Location = r.URL.Path
		v, err = s.render(st, device(r))
	})
	if err != nil {
		log.Printf("web: render %s: %v", r.URL.Path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out, err := document(s.cfg.Title, v.HTML, true)
	if err != nil {
		log.Printf("web: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(v.Status)
	w.Write(out)
}

func (s *Site) handleToggle(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Dispatch(ui.ActionToggleMenu)
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (s *Site) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess := s.session(w, r)

	target := returnPath(r)
	var ok bool
	sess.With(func(st *session.State) {
		st.Location = target
		ok = st.Overlay.Activate(id)
		if ok && s.cfg.Mode == router.ModePath {
			target = st.Location
		}
	})
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// returnPath reads the return query parameter, accepting only local paths.
func returnPath(r *http.Request) string {
	p := r.URL.Query().Get("return")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
