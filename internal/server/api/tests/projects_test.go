package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/api"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/utils"
)

// helper: Handler только с сервисом проектов
func newProjectsTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockProjectsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := svcmocks.NewMockProjectsRepo(ctrl)

	cfg := testAPIConfig()
	svc := &service.Services{Projects: service.NewProjectsService(repo)}

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), repo
}

// helper: access-токен пользователя userID, подписанный тем же ключом
func testAccessToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID, "Ivan", "test@mail.com", crypto.JWTConfig{
		Issuer:     "issuer",
		Audience:   "audience",
		SigningKey: testSigningKey,
		AccessTTL:  1 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	return token
}

// helper: прогоняет запрос через AuthMiddleware, как это делает роутер
func doAuthed(t *testing.T, h *api.Handler, fn http.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testAccessToken(t, 1))
	rec := httptest.NewRecorder()

	h.Verifier.AuthMiddleware()(fn).ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListProjects_NoToken(t *testing.T) {
	t.Parallel()

	h, _ := newProjectsTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()

	h.Verifier.AuthMiddleware()(http.HandlerFunc(h.ListProjects)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandler_ListProjects_OK(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	repo.EXPECT().
		List(gomock.Any(), int64(1)).
		Return([]models.Project{
			{ID: 1, Name: "Работа", UserID: 1},
			{ID: 2, Name: "Дом", UserID: 1, Description: utils.StrPtr("бытовое")},
		}, nil)

	rec := doAuthed(t, h, h.ListProjects, http.MethodGet, "/projects", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got []models.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[1].Description == nil || *got[1].Description != "бытовое" {
		t.Fatalf("unexpected description: %+v", got[1].Description)
	}
}

func TestHandler_CreateProject_OK(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	repo.EXPECT().
		Create(gomock.Any(), int64(1), "Работа", nil).
		Return(models.Project{ID: 5, Name: "Работа", UserID: 1}, nil)

	body, _ := json.Marshal(models.CreateProjectRequest{Name: "Работа"})
	rec := doAuthed(t, h, h.CreateProject, http.MethodPost, "/projects", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var got models.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 5 || got.UserID != 1 {
		t.Fatalf("unexpected project: %+v", got)
	}
}

func TestHandler_CreateProject_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := newProjectsTestHandler(t)

	rec := doAuthed(t, h, h.CreateProject, http.MethodPost, "/projects", []byte("{bad json"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_CreateProject_EmptyName(t *testing.T) {
	t.Parallel()

	h, _ := newProjectsTestHandler(t)

	body, _ := json.Marshal(models.CreateProjectRequest{Name: "   "})
	rec := doAuthed(t, h, h.CreateProject, http.MethodPost, "/projects", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_UpdateProject_OK(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	name := "Новое имя"

	repo.EXPECT().
		Update(gomock.Any(), int64(1), int64(5), &name, nil).
		Return(models.Project{ID: 5, Name: name, UserID: 1}, nil)

	body, _ := json.Marshal(models.UpdateProjectRequest{ID: 5, Name: &name})
	rec := doAuthed(t, h, h.UpdateProject, http.MethodPut, "/projects", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got models.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != name {
		t.Fatalf("unexpected name: %q", got.Name)
	}
}

// чужой проект возвращает тот же 404, что и несуществующий
func TestHandler_UpdateProject_NotFound(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	name := "x"

	repo.EXPECT().
		Update(gomock.Any(), int64(1), int64(99), &name, nil).
		Return(models.Project{}, serr.ErrNotFound)

	body, _ := json.Marshal(models.UpdateProjectRequest{ID: 99, Name: &name})
	rec := doAuthed(t, h, h.UpdateProject, http.MethodPut, "/projects", body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandler_DeleteProject_OK(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	repo.EXPECT().
		Delete(gomock.Any(), int64(1), int64(5)).
		Return(nil)

	body, _ := json.Marshal(models.DeleteRequest{ID: 5})
	rec := doAuthed(t, h, h.DeleteProject, http.MethodDelete, "/projects", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got models.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Message != "project deleted successfully" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestHandler_DeleteProject_NotFound(t *testing.T) {
	t.Parallel()

	h, repo := newProjectsTestHandler(t)

	repo.EXPECT().
		Delete(gomock.Any(), int64(1), int64(99)).
		Return(serr.ErrNotFound)

	body, _ := json.Marshal(models.DeleteRequest{ID: 99})
	rec := doAuthed(t, h, h.DeleteProject, http.MethodDelete, "/projects", body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
