package orderviewer

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionCookie names the cookie that ties a browser to its viewer.
	SessionCookie = "orderviewer_session"
	// FetchHeader marks submissions sent by the inline script. They receive
	// the re-rendered component instead of a redirect.
	FetchHeader      = "X-Requested-With"
	fetchHeaderValue = "fetch"

	identifierField = "identifier"
)

type handlers struct {
	component *Component
	routes    Routes
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != h.routes.Page {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	viewer := h.session(w, r)

	var buf bytes.Buffer
	if err := h.component.renderer.RenderPage(viewer.Snapshot(), h.routes, &buf); err != nil {
		h.component.opts.Logger.Error("render order viewer page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, r, http.StatusOK, buf.Bytes())
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	viewer := h.session(w, r)
	if _, ok := r.PostForm[identifierField]; ok {
		viewer.SetIdentifier(r.PostForm.Get(identifierField))
	}

	// The lookup outlives a client that navigates away, like the browser's
	// own in-flight request would.
	viewer.Submit(context.WithoutCancel(r.Context()))

	if !isFetch(r) {
		http.Redirect(w, r, h.routes.Page, http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := h.component.renderer.RenderComponent(viewer.Snapshot(), h.routes, &buf); err != nil {
		h.component.opts.Logger.Error("render order viewer component", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, r, http.StatusOK, buf.Bytes())
}

func (h *handlers) identifier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.session(w, r).SetIdentifier(r.PostForm.Get(identifierField))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) asset(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		http.ServeFileFS(w, r, AssetsFS(), name)
	})
}

// session returns the caller's viewer, creating one and issuing a cookie when
// the request carries no live session.
func (h *handlers) session(w http.ResponseWriter, r *http.Request) *Viewer {
	sessions := h.component.sessions

	id := ""
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		id = strings.TrimSpace(cookie.Value)
	}

	viewer, ok := sessions.Get(id)
	if !ok {
		id = uuid.NewString()
		viewer = h.component.NewViewer()
		h.component.opts.Logger.Debug("order viewer session started", zap.String("session", id))
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     h.routes.Page,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	sessions.Set(id, viewer)
	return viewer
}

func isFetch(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(FetchHeader)), fetchHeaderValue)
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
