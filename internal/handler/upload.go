package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tabletalk/tabletalk/internal/backend"
	"github.com/tabletalk/tabletalk/internal/models"
	"github.com/tabletalk/tabletalk/internal/session"
	"github.com/tabletalk/tabletalk/internal/sheet"
)

// clientCookie identifies a browser across requests so its active session
// can be replaced on re-upload.
const clientCookie = "tabletalk_client"

// UploadHandler proxies spreadsheet uploads to the backend after the
// client-side filter
type UploadHandler struct {
	backend  *backend.Client
	sessions *session.Store
	maxBytes int64
}

func NewUploadHandler(client *backend.Client, sessions *session.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{backend: client, sessions: sessions, maxBytes: maxBytes}
}

// Upload handles POST /api/v1/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		models.WriteError(w, http.StatusRequestEntityTooLarge, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	info, err := sheet.Sniff(header.Filename, data)
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.backend.Upload(r.Context(), header.Filename, bytes.NewReader(data))
	if err != nil {
		writeBackendError(w, err)
		return
	}

	clientID := ensureClientID(w, r)
	h.sessions.Replace(clientID, &models.Session{ID: resp.SessionID, Tables: resp.Tables})

	log.Info().
		Str("session_id", resp.SessionID).
		Str("filename", header.Filename).
		Str("kind", info.Kind).
		Int("tables", len(resp.Tables)).
		Msg("upload accepted")

	models.WriteJSON(w, http.StatusOK, models.UploadResult{
		Status:    "success",
		SessionID: resp.SessionID,
		Tables:    resp.Tables,
		Sheets:    info.Sheets,
		Message:   resp.Message,
	})
}

// ensureClientID reads the browser's client cookie, minting one on first use.
func ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// writeBackendError surfaces the backend's detail string when present, with a
// generic fallback for transport failures.
func writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		models.WriteError(w, apiErr.Status, apiErr.Detail)
		return
	}
	log.Error().Err(err).Msg("backend request failed")
	models.WriteError(w, http.StatusBadGateway, "backend unavailable")
}
