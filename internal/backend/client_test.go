package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tabletalk/tabletalk/internal/backend"
	"github.com/tabletalk/tabletalk/internal/models"
)

func TestUploadSendsMultipartFile(t *testing.T) {
	var gotFilename, gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" {
			t.Errorf("path = %q, want /upload", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		gotField = "file"
		gotFilename = header.Filename
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"session_id":"abc123","tables":["patients"],"message":"ok"}`))
	}))
	defer srv.Close()

	c := backend.New(srv.URL, 5*time.Second)
	resp, err := c.Upload(context.Background(), "patients.csv", strings.NewReader("age,sex\n40,M\n"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if gotField != "file" || gotFilename != "patients.csv" {
		t.Errorf("multipart field/filename = %q/%q", gotField, gotFilename)
	}
	if resp.SessionID != "abc123" {
		t.Errorf("session id = %q", resp.SessionID)
	}
	if len(resp.Tables) != 1 || resp.Tables[0] != "patients" {
		t.Errorf("tables = %v", resp.Tables)
	}
}

func TestAskDecodesQueryResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ask" {
			t.Errorf("path = %q, want /ask", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer":"40","sql_queries":["SELECT age FROM patients"],"rows":[{"age":40}],"raw_agent_output":{"intermediate_steps":[]}}`))
	}))
	defer srv.Close()

	c := backend.New(srv.URL, 5*time.Second)
	res, err := c.Ask(context.Background(), models.AskRequest{SessionID: "abc123", Question: "oldest age?"})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if res.Answer != "40" {
		t.Errorf("answer = %q", res.Answer)
	}
	if len(res.SQLQueries) != 1 {
		t.Errorf("sql_queries = %v", res.SQLQueries)
	}
	if len(res.Rows) == 0 {
		t.Error("rows should be preserved as raw JSON")
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Session not found"}`))
	}))
	defer srv.Close()

	c := backend.New(srv.URL, 5*time.Second)
	_, err := c.Ask(context.Background(), models.AskRequest{SessionID: "nope", Question: "q"})
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Detail != "Session not found" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := backend.New(srv.URL, 5*time.Second)
	_, err := c.Ask(context.Background(), models.AskRequest{SessionID: "s", Question: "q"})
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail == "" {
		t.Error("detail should fall back to a generic message")
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := backend.New(srv.URL, 5*time.Second)
	if _, err := c.Ask(ctx, models.AskRequest{SessionID: "s", Question: "q"}); err == nil {
		t.Fatal("expected error after context timeout")
	}
}

func TestTestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the backend has no health endpoint; any response means reachable
		w.WriteHeader(http.StatusNotFound)
	}))
	c := backend.New(srv.URL, 5*time.Second)
	if err := c.TestConnection(context.Background()); err != nil {
		t.Errorf("TestConnection: %v", err)
	}

	srv.Close()
	if err := c.TestConnection(context.Background()); err == nil {
		t.Error("expected error once the backend is down")
	}
}
