package models

// Session correlates an uploaded dataset with subsequent questions. The
// backend owns the session; the client only remembers the active one per
// browser. A new upload replaces any previous session.
type Session struct {
	ID     string   `json:"session_id"`
	Tables []string `json:"tables"`
}
