package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dashdoc/dash/pkg/buildinfo"
	"github.com/dashdoc/dash/pkg/dict"
	"github.com/dashdoc/dash/pkg/document"
	dasherrors "github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/render/outline"
	"github.com/dashdoc/dash/pkg/storage"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type listResponse struct {
	Documents []string `json:"documents"`
}

type createResponse struct {
	Name string `json:"name"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Current()})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, listResponse{Documents: names})
}

// handleCreate stores a new document under a random name. An empty body
// creates a placeholder document.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc := document.NewWithRegistry(s.registry)
	if len(body) > 0 {
		if err := doc.LoadContext(r.Context(), body); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	data, err := doc.SaveContext(r.Context(), false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := uuid.NewString()
	if err := s.store.Put(r.Context(), name, data); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/documents/"+name)
	writeJSON(w, http.StatusCreated, createResponse{Name: name})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	etag := strconv.Quote(storage.Hash(data))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handlePut validates the body as a document and stores its normalized
// form: canonical tags, defaults written out. Invalid documents are not
// stored.
func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := dasherrors.ValidateName(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc := document.NewWithRegistry(s.registry)
	if err := doc.LoadContext(r.Context(), body); err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := doc.SaveContext(r.Context(), false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Put(r.Context(), name, data); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", strconv.Quote(storage.Hash(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc := document.NewWithRegistry(s.registry)
	if err := doc.LoadContext(r.Context(), data); err != nil {
		s.writeError(w, r, err)
		return
	}
	entries := outline.Entries(doc.Root())
	if entries == nil {
		entries = []outline.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, dasherrors.New(dasherrors.ErrCodeInvalidInput, "document larger than %d bytes", tooLarge.Limit)
		}
		return nil, dasherrors.Wrap(dasherrors.ErrCodeInvalidInput, err, "read body")
	}
	return body, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// writeError maps err to a status code and a JSON error body. Decode
// errors become 422 and carry the offending key.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, errorBody) {
	var (
		mk *dict.MissingKeyError
		wt *dict.WrongTypeError
		iv *dict.InvalidValueError
	)
	switch {
	case errors.As(err, &mk):
		return http.StatusUnprocessableEntity, decodeError(mk.Key, err)
	case errors.As(err, &wt):
		return http.StatusUnprocessableEntity, decodeError(wt.Key, err)
	case errors.As(err, &iv):
		return http.StatusUnprocessableEntity, decodeError(iv.Key, err)
	}

	code := dasherrors.GetCode(err)
	body := errorBody{Code: string(code), Error: dasherrors.UserMessage(err)}
	switch code {
	case dasherrors.ErrCodeInvalidDocument, dasherrors.ErrCodeInvalidName,
		dasherrors.ErrCodeInvalidInput, dasherrors.ErrCodeInvalidPath:
		return http.StatusBadRequest, body
	case dasherrors.ErrCodeNotFound, dasherrors.ErrCodeDocumentNotFound, dasherrors.ErrCodeFileNotFound:
		return http.StatusNotFound, body
	case dasherrors.ErrCodeUnsupported:
		return http.StatusNotImplemented, body
	}
	return http.StatusInternalServerError, errorBody{
		Code:  string(dasherrors.ErrCodeInternal),
		Error: "internal error",
	}
}

func decodeError(key string, err error) errorBody {
	return errorBody{Code: string(dasherrors.ErrCodeInvalidDocument), Error: err.Error(), Key: key}
}
