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

func TestProjectUpdate_Fails_NothingToUpdate(t *testing.T) {
	withProjectDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.ProjectUpdate(app)
		cmd.SetArgs([]string{"5"}) // без флагов

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "nothing to update") {
			t.Fatalf("expected nothing to update error, got: %v", err)
		}
	})
}

func TestProjectUpdate_Fails_InvalidID(t *testing.T) {
	withProjectDeps(t, func() {
		app := &cli.App{
			ServerURL: "http://example",
			State:     memory.NewStore(),
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.ProjectUpdate(app)
		cmd.SetArgs([]string{"abc", "--name", "x"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "invalid project id") {
			t.Fatalf("expected invalid id error, got: %v", err)
		}
	})
}

func TestProjectUpdate_Success_UpdatesLocalStore(t *testing.T) {
	withProjectDeps(t, func() {
		// перехватим тело PUT запроса
		var got models.UpdateProjectRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Fatalf("expected PUT, got %s", r.Method)
			}
			if r.URL.Path != "/projects" {
				t.Fatalf("expected /projects, got %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode request: %v", err)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.Project{ID: 5, Name: *got.Name, UserID: 1})
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveStateToFile = func(_ string, _ *memory.Store) error { saved = true; return nil }

		// локально лежит старая версия
		store := memory.NewStore()
		store.ReplaceAll([]models.Project{{ID: 5, Name: "OLD", UserID: 1}}, nil)

		app := &cli.App{
			ServerURL: srv.URL,
			StatePath: filepath.Join(t.TempDir(), "state.json"),
			State:     store,
			Creds:     &config.Credentials{AccessToken: "token"},
		}

		cmd := cli.ProjectUpdate(app)
		cmd.SetArgs([]string{"5", "--name", "NEW"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		// id уходит в теле запроса
		if got.ID != 5 {
			t.Fatalf("expected id=5 in request body, got %d", got.ID)
		}
		if got.Name == nil || *got.Name != "NEW" {
			t.Fatalf("name mismatch, got=%v", got.Name)
		}
		// не указанный флаг не должен улетать
		if got.Description != nil {
			t.Fatalf("description should not be present, got=%v", *got.Description)
		}

		if !saved {
			t.Fatalf("expected SaveToFile called")
		}

		// локальный кэш обновлён ответом сервера
		p, err := app.State.GetProject(5)
		if err != nil {
			t.Fatalf("expected project in store, err=%v", err)
		}
		if p.Name != "NEW" {
			t.Fatalf("expected name NEW, got %q", p.Name)
		}

		if !strings.Contains(out.String(), "updated project 5") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestProjectUpdate_ServerReturns404_ReturnsError(t *testing.T) {
	withProjectDeps(t, func() {
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

		cmd := cli.ProjectUpdate(app)
		cmd.SetArgs([]string{"99", "--name", "x"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got: %v", err)
		}
	})
}
