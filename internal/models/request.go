package models

// AskRequest for POST /api/v1/ask, forwarded as-is to the backend's /ask
type AskRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	TopK      int    `json:"top_k"`
}

func (r *AskRequest) SetDefaults() {
	if r.TopK == 0 {
		r.TopK = 5 // backend default row budget
	}
	if r.TopK < 1 {
		r.TopK = 1
	}
	if r.TopK > 100 {
		r.TopK = 100
	}
}
