// Package backend is the HTTP client for the external query agent: the
// service that turns uploaded spreadsheets into per-session databases and
// natural-language questions into SQL. This layer never retries; every
// failure is terminal for that user action.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/tabletalk/tabletalk/internal/models"
)

// APIError carries the backend's error detail for a non-2xx response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Client talks to the upload/ask endpoints of the query agent.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Upload submits a spreadsheet as multipart field "file" to POST /upload.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*models.UploadResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.UploadResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ask submits a natural-language question to POST /ask.
func (c *Client) Ask(ctx context.Context, askReq models.AskRequest) (*models.QueryResult, error) {
	payload, err := json.Marshal(askReq)
	if err != nil {
		return nil, fmt.Errorf("marshal ask request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out models.QueryResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestConnection checks reachability. The backend exposes no health endpoint,
// so any HTTP response from the base URL counts as reachable; only transport
// errors are failures.
func (c *Client) TestConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// apiError extracts the backend's {"detail": ...} error body, falling back to
// a generic message when absent or malformed.
func apiError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Detail: "request failed"}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
