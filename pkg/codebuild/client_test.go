package codebuild

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStartBuild(t *testing.T) {
	t.Run("sends full ref and decodes build", func(t *testing.T) {
		var gotReq startBuildRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/builds" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
				t.Errorf("unexpected auth header: %q", auth)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(Build{
				ID:            "build-1",
				ProjectName:   gotReq.ProjectName,
				SourceVersion: gotReq.SourceVersion,
				Status:        "IN_PROGRESS",
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-token")
		build, err := c.StartBuild(context.Background(), "proj-123", "main")
		if err != nil {
			t.Fatalf("StartBuild: %v", err)
		}

		if gotReq.SourceVersion != "refs/heads/main" {
			t.Errorf("expected source version refs/heads/main, got %q", gotReq.SourceVersion)
		}
		if build.ID != "build-1" || build.Status != "IN_PROGRESS" {
			t.Errorf("unexpected build: %+v", build)
		}
	})

	t.Run("rejection yields StartBuildError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "project does not exist"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-token")
		_, err := c.StartBuild(context.Background(), "missing-proj", "main")
		if err == nil {
			t.Fatal("expected error")
		}

		var startErr *StartBuildError
		if !errors.As(err, &startErr) {
			t.Fatalf("expected *StartBuildError, got %T: %v", err, err)
		}
		if startErr.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", startErr.StatusCode)
		}
		if startErr.Message != "project does not exist" {
			t.Errorf("unexpected message: %q", startErr.Message)
		}
		if startErr.ProjectName != "missing-proj" {
			t.Errorf("unexpected project name: %q", startErr.ProjectName)
		}
	})
}

func TestGetBuildLogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/builds/build-9/logs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("expected limit=50, got %q", got)
		}
		if got := r.URL.Query().Get("nextToken"); got != "tok" {
			t.Errorf("expected nextToken=tok, got %q", got)
		}
		json.NewEncoder(w).Encode(LogPage{
			Events:    []LogEvent{{Timestamp: 1, Message: "line one"}},
			NextToken: "tok2",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	page, err := c.GetBuildLogs(context.Background(), "build-9", GetLogsOptions{Limit: 50, NextToken: "tok"})
	if err != nil {
		t.Fatalf("GetBuildLogs: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Message != "line one" {
		t.Errorf("unexpected events: %+v", page.Events)
	}
	if page.NextToken != "tok2" {
		t.Errorf("unexpected next token: %q", page.NextToken)
	}
}

func TestDeleteProject(t *testing.T) {
	t.Run("missing project is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-token")
		if err := c.DeleteProject(context.Background(), "gone"); err != nil {
			t.Errorf("expected nil error for 404, got %v", err)
		}
	})
}
