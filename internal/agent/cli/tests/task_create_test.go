package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/config"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/memory"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

func withTaskDeps(t *testing.T, fn func()) {
	t.Helper()

	origNew := cli.NewAPIClient
	origSave := cli.SaveStateToFile

	t.Cleanup(func() {
		cli.NewAPIClient = origNew
		cli.SaveStateToFile = origSave
	})

	fn()
}

func TestTaskCreate_Success_AllFlags(t *testing.T) {
	withTaskDeps(t, func() {
		var got models.CreateTaskRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if r.URL.Path != "/tasks" {
				t.Fatalf("expected /tasks, got %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode request: %v", err)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Task{
				ID: 8, Title: got.Title, UserID: 1,
				ProjectID: got.ProjectID, Priority: got.Priority,
			})
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveStateToFile = func(_ string, _ *memory.Store) error { saved = true; return nil }

		app := &cli.App{
			ServerURL: srv.URL,
			StatePath: filepath.Join(t.TempDir(), "state.json"),
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskCreate(app)
		cmd.SetArgs([]string{
			"--title", "Отчёт",
			"--project", "3",
			"--priority", "high",
			"--due", "2026-09-15",
		})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if got.Title != "Отчёт" {
			t.Fatalf("expected title Отчёт, got %q", got.Title)
		}
		if got.ProjectID == nil || *got.ProjectID != 3 {
			t.Fatalf("projectId mismatch, got=%v", got.ProjectID)
		}
		if got.Priority != "high" {
			t.Fatalf("expected priority high, got %q", got.Priority)
		}
		if got.DueDate != "2026-09-15" {
			t.Fatalf("expected due 2026-09-15, got %q", got.DueDate)
		}

		if !saved {
			t.Fatalf("expected SaveToFile called")
		}
		if _, err := app.State.GetTask(8); err != nil {
			t.Fatalf("expected task in store, err=%v", err)
		}

		if !strings.Contains(out.String(), "created task 8") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestTaskCreate_DefaultPriority_IsMedium(t *testing.T) {
	withTaskDeps(t, func() {
		var got models.CreateTaskRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Task{ID: 9, Title: got.Title, UserID: 1, Priority: got.Priority})
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveStateToFile = func(_ string, _ *memory.Store) error { return nil }

		app := &cli.App{
			ServerURL: srv.URL,
			StatePath: filepath.Join(t.TempDir(), "state.json"),
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskCreate(app)
		cmd.SetArgs([]string{"--title", "Купить молоко"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if got.Priority != models.PriorityMedium {
			t.Fatalf("expected default priority medium, got %q", got.Priority)
		}
		// project не должен улетать, если флаг не указан
		if got.ProjectID != nil {
			t.Fatalf("projectId should not be present, got=%v", *got.ProjectID)
		}
	})
}

func TestTaskCreate_Fails_NoAccessToken(t *testing.T) {
	withTaskDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: ""},
		}

		cmd := cli.TaskCreate(app)
		cmd.SetArgs([]string{"--title", "Отчёт"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "no access_token") {
			t.Fatalf("expected no access_token error, got: %v", err)
		}
	})
}

func TestTaskCreate_ForeignProject_ReturnsError(t *testing.T) {
	withTaskDeps(t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveStateToFile = func(_ string, _ *memory.Store) error {
			t.Fatalf("SaveToFile must not be called on server error")
			return nil
		}

		app := &cli.App{
			ServerURL: srv.URL,
			StatePath: filepath.Join(t.TempDir(), "state.json"),
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.TaskCreate(app)
		cmd.SetArgs([]string{"--title", "Отчёт", "--project", "99"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got: %v", err)
		}
	})
}
