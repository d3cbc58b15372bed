package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/tabletalk/tabletalk/internal/backend"
	"github.com/tabletalk/tabletalk/internal/interpret"
	"github.com/tabletalk/tabletalk/internal/models"
	"github.com/tabletalk/tabletalk/internal/session"
)

// AskHandler proxies natural-language questions to the backend and enriches
// the result with the interpreter's derived view
type AskHandler struct {
	backend  *backend.Client
	sessions *session.Store
	sf       singleflight.Group // collapse identical concurrent questions
}

func NewAskHandler(client *backend.Client, sessions *session.Store) *AskHandler {
	return &AskHandler{backend: client, sessions: sessions}
}

// Ask handles POST /api/v1/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SetDefaults()

	// Blank questions never reach the network; the page also blocks them.
	if strings.TrimSpace(req.Question) == "" {
		models.WriteError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}

	if !h.sessionActive(r, req.SessionID) {
		models.WriteError(w, http.StatusNotFound, "session not found - upload a file first")
		return
	}

	// The page disables resubmission while a request is outstanding; the
	// singleflight group backstops that so retried or duplicated identical
	// questions share one backend call.
	key := fmt.Sprintf("%s\x00%s\x00%d", req.SessionID, req.Question, req.TopK)
	v, err, shared := h.sf.Do(key, func() (interface{}, error) {
		return h.backend.Ask(r.Context(), req)
	})
	if err != nil {
		writeBackendError(w, err)
		return
	}
	if shared {
		log.Debug().Str("session_id", req.SessionID).Msg("duplicate question collapsed")
	}

	result := v.(*models.QueryResult)
	view := interpret.Interpret(result)

	models.WriteJSON(w, http.StatusOK, models.AskResponse{
		Status:      "success",
		Answer:      result.Answer,
		CleanAnswer: view.Answer,
		SQLQueries:  result.SQLQueries,
		Columns:     view.Headers(),
		Table:       view.Cells(),
		Rows:        result.Rows,
	})
}

// sessionActive checks the submitted session against the client's active one.
// Clients without a cookie have never uploaded through this server.
func (h *AskHandler) sessionActive(r *http.Request, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	c, err := r.Cookie(clientCookie)
	if err != nil || c.Value == "" {
		return false
	}
	active, ok := h.sessions.Active(c.Value)
	return ok && active.ID == sessionID
}
