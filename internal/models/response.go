package models

import "encoding/json"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// UploadResponse mirrors the backend's POST /upload response
type UploadResponse struct {
	SessionID string   `json:"session_id"`
	Tables    []string `json:"tables"`
	Message   string   `json:"message,omitempty"`
}

// QueryResult mirrors the backend's POST /ask response. The backend does not
// guarantee a stable shape for rows or the agent trace: rows may be named
// mappings or positional values, and the trace is whatever the agent run
// produced. Both are kept as raw JSON so key order and odd shapes survive
// decoding; the interpret package walks them tolerantly.
type QueryResult struct {
	Answer         string          `json:"answer"`
	SQLQueries     []string        `json:"sql_queries"`
	Rows           json.RawMessage `json:"rows,omitempty"`
	RawAgentOutput json.RawMessage `json:"raw_agent_output,omitempty"`
}

// AskResponse is returned by POST /api/v1/ask: the backend result plus the
// derived display view (cleaned answer, inferred headers, rendered cells)
type AskResponse struct {
	Status      string          `json:"status"`
	Answer      string          `json:"answer"`
	CleanAnswer string          `json:"clean_answer"`
	SQLQueries  []string        `json:"sql_queries"`
	Columns     []string        `json:"columns"`
	Table       [][]string      `json:"table"`
	Rows        json.RawMessage `json:"rows,omitempty"`
}

// UploadResult is returned by POST /api/v1/upload
type UploadResult struct {
	Status    string   `json:"status"`
	SessionID string   `json:"session_id"`
	Tables    []string `json:"tables"`
	Sheets    []string `json:"sheets,omitempty"`
	Message   string   `json:"message,omitempty"`
}
