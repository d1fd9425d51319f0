package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/compass/internal/config"
	"github.com/nao1215/compass/internal/export"
	"github.com/nao1215/compass/internal/model"
	"github.com/nao1215/compass/internal/report"
	"github.com/nao1215/compass/internal/workbook"
)

const (
	sessionCookie = "compass_session"
	layoutCookie  = "compass_layout"

	// maxBodyBytes caps a posted form.
	maxBodyBytes = 1 << 20

	// MaxFieldLength is the longest accepted answer, in runes.
	MaxFieldLength = 10000

	// layoutCookieMaxAge keeps the layout choice for a year.
	layoutCookieMaxAge = 365 * 24 * 60 * 60
)

// Form keys that steer a request rather than name a field.
const (
	keyPath   = "path"
	keyValue  = "value"
	keyNav    = "to"
	keyToggle = "toggle"
	keyLayout = "layout"
)

// updateResponse is returned to script clients after an update or move.
type updateResponse struct {
	Active  int           `json:"active"`
	Summary model.Summary `json:"summary"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, st := s.session(w, r)
	layout, chosen := s.layout(w, r)
	page := buildPage(st, layout)
	page.LayoutAuto = !chosen
	s.render(w, r, "page", page)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	form, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	st, err := s.update(w, r, func(st workbook.State) (workbook.State, error) {
		return applyForm(st, form)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.DebugContext(r.Context(), "answers updated", "fields", len(form))
	s.respond(w, r, st)
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	form, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	st, err := s.update(w, r, func(st workbook.State) (workbook.State, error) {
		next, err := applyForm(st, form)
		if err != nil {
			return st, err
		}
		return navigate(next, form.Get(keyNav))
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, st)
}

// handleExportHTML sends the printable report. A POST saves the posted
// form first, so the download includes answers typed since the last save.
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	st, ok := s.exportState(w, r)
	if !ok {
		return
	}
	doc, err := report.GenerateHTML(st.Answers)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.download(w, r, export.FileName, export.ContentTypeHTML, doc)
}

func (s *Server) handleExportMarkdown(w http.ResponseWriter, r *http.Request) {
	st, ok := s.exportState(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if _, err := report.NewMarkdownWriter(&buf).Write(st.Answers); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.download(w, r, export.MarkdownFileName, export.ContentTypeMarkdown, buf.String())
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	st, ok := s.exportState(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if _, err := report.NewJSONWriter(&buf, report.WithPrettyPrint()).Write(st.Answers); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.download(w, r, export.JSONFileName, export.ContentTypeJSON, buf.String())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.store.Len(),
	})
}

// exportState returns the session state to export, applying a posted form first.
func (s *Server) exportState(w http.ResponseWriter, r *http.Request) (workbook.State, bool) {
	if r.Method != http.MethodPost {
		_, st := s.session(w, r)
		return st, true
	}

	form, ok := s.parseForm(w, r)
	if !ok {
		return workbook.State{}, false
	}
	st, err := s.update(w, r, func(st workbook.State) (workbook.State, error) {
		return applyForm(st, form)
	})
	if err != nil {
		s.writeError(w, r, err)
		return workbook.State{}, false
	}
	return st, true
}

func (s *Server) download(w http.ResponseWriter, r *http.Request, name, contentType, doc string) {
	if err := export.Download(w, name, contentType, doc); err != nil {
		// Headers may already be sent; all that is left is to log.
		s.logger.ErrorContext(r.Context(), "report download failed",
			appendRequestID(r.Context(), []any{"file", name, "error", err})...)
		return
	}
	s.logger.InfoContext(r.Context(), "report exported",
		appendRequestID(r.Context(), []any{"file", name, "bytes", len(doc)})...)
}

// respond answers an update: JSON for script clients, otherwise a redirect
// back to the workbook page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, st workbook.State) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, updateResponse{Active: st.Active, Summary: st.Summary()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// parseForm reads a posted form, bounded by maxBodyBytes.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		s.writeStatus(w, r, code, "cannot read form", err)
		return nil, false
	}
	return r.PostForm, true
}

// session returns the caller's session, creating one when the cookie is
// missing or the session has expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, workbook.State) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if st, ok := s.store.Get(c.Value); ok {
			return c.Value, st
		}
	}
	return s.newSession(w, r)
}

func (s *Server) newSession(w http.ResponseWriter, r *http.Request) (string, workbook.State) {
	id, st := s.store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.DebugContext(r.Context(), "session created", appendRequestID(r.Context(), nil)...)
	return id, st
}

// update applies fn to the caller's session. A session that expires
// between lookup and update is replaced by a new one.
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(workbook.State) (workbook.State, error)) (workbook.State, error) {
	id, _ := s.session(w, r)
	st, ok, err := s.store.Update(id, fn)
	if !ok {
		id, _ = s.newSession(w, r)
		st, _, err = s.store.Update(id, fn)
	}
	return st, err
}

// layout picks the layout mode: a valid ?layout= query (remembered in a
// cookie), else the cookie, else the configured default. chosen reports
// whether the browser picked the mode.
func (s *Server) layout(w http.ResponseWriter, r *http.Request) (mode string, chosen bool) {
	if q := r.URL.Query().Get(keyLayout); config.ValidLayout(q) {
		http.SetCookie(w, &http.Cookie{
			Name:     layoutCookie,
			Value:    q,
			Path:     "/",
			MaxAge:   layoutCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return q, true
	}
	if c, err := r.Cookie(layoutCookie); err == nil && config.ValidLayout(c.Value) {
		return c.Value, true
	}
	return s.cfg.Layout, false
}

// applyForm applies every field of a posted form to st.
//
// A form either carries a single path/value pair (script clients) or names
// fields directly by path (the page form). A "toggle" key flips one
// checklist item. The form is applied as a whole: on any error st is
// returned unchanged.
func applyForm(st workbook.State, form url.Values) (workbook.State, error) {
	orig := st

	if form.Has(keyPath) {
		return applyField(st, form.Get(keyPath), form.Get(keyValue))
	}

	keys := make([]string, 0, len(form))
	for key := range form {
		switch key {
		case keyValue, keyNav, keyToggle, keyLayout:
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var err error
	for _, key := range keys {
		values := form[key]
		if st, err = applyField(st, key, values[len(values)-1]); err != nil {
			return orig, err
		}
	}

	if form.Has(keyToggle) {
		i, err := strconv.Atoi(form.Get(keyToggle))
		if err != nil || i < 0 || i >= model.ChecklistItemCount {
			return orig, fmt.Errorf("%w: toggle %q", workbook.ErrInvalidValue, form.Get(keyToggle))
		}
		st.Answers = workbook.ToggleChecklist(st.Answers, i)
	}
	return st, nil
}

// applyField applies one posted field. Text is NFC-normalised with CRLF
// line breaks folded to LF. Ratings must be 1..5 and checklist items can
// only be toggled.
func applyField(st workbook.State, path, raw string) (workbook.State, error) {
	f, err := workbook.ParsePath(path)
	if err != nil {
		return st, err
	}

	switch f.Kind {
	case workbook.KindCheck:
		return st, fmt.Errorf("%w: %s", ErrChecklistNotToggle, path)
	case workbook.KindScore:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 || n > model.MaxScore {
			return st, fmt.Errorf("%w: %s", ErrRatingOutOfRange, path)
		}
		return st.Apply(workbook.Update{Path: path, Value: strconv.Itoa(n)})
	}

	value := norm.NFC.String(strings.ReplaceAll(raw, "\r\n", "\n"))
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return st, fmt.Errorf("%w: %s", ErrFieldTooLong, path)
	}
	return st.Apply(workbook.Update{Path: path, Value: value})
}

// navigate moves to the target section: "prev", "next" or a 0-based index.
// An empty target stays put. Out-of-range indexes are clamped.
func navigate(st workbook.State, to string) (workbook.State, error) {
	switch to {
	case "":
		return st, nil
	case "prev":
		return st.Prev(), nil
	case "next":
		return st.Next(), nil
	}
	i, err := strconv.Atoi(to)
	if err != nil {
		return st, fmt.Errorf("%w: %q", ErrInvalidNavTarget, to)
	}
	return st.Goto(i), nil
}

// statusFor maps an error to an HTTP status: rejected input is 400,
// anything else is a server error.
func statusFor(err error) int {
	for _, target := range []error{
		workbook.ErrUnknownField,
		workbook.ErrInvalidValue,
		ErrRatingOutOfRange,
		ErrChecklistNotToggle,
		ErrInvalidNavTarget,
		ErrFieldTooLong,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := "internal server error"
	if code < http.StatusInternalServerError {
		msg = err.Error()
	}
	s.writeStatus(w, r, code, msg, err)
}

func (s *Server) writeStatus(w http.ResponseWriter, r *http.Request, code int, msg string, err error) {
	attrs := appendRequestID(r.Context(), []any{"status", code, "error", err})
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		s.logger.DebugContext(r.Context(), "request rejected", attrs...)
	}

	if wantsJSON(r) {
		writeJSON(w, code, apiError{Error: msg})
		return
	}
	http.Error(w, msg, code)
}
