package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/utils"
)

func TestClient_ListTasks_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Task{
			{ID: 7, Title: "Купить молоко", UserID: 1, Priority: "medium"},
			{ID: 8, Title: "Отчёт", UserID: 1, ProjectID: utils.Ptr(int64(1)), Priority: "high", Completed: true},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	tasks, err := c.ListTasks("access-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.True(t, tasks[1].Completed)
	require.NotNil(t, tasks[1].ProjectID)
}

func TestClient_CreateTask_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		var req models.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Отчёт", req.Title)
		require.Equal(t, "high", req.Priority)
		require.Equal(t, "2026-09-15", req.DueDate)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Task{ID: 8, Title: req.Title, UserID: 1, Priority: req.Priority})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	task, err := c.CreateTask("access-1", models.CreateTaskRequest{
		Title:    "Отчёт",
		Priority: "high",
		DueDate:  "2026-09-15",
	})
	require.NoError(t, err)
	require.Equal(t, int64(8), task.ID)
}

// чужой projectId: сервер отвечает 404, клиент отдаёт это как ошибку
func TestClient_CreateTask_ForeignProject_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"not found"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.CreateTask("access-1", models.CreateTaskRequest{
		Title:     "Отчёт",
		Priority:  "high",
		ProjectID: utils.Ptr(int64(99)),
	})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "not found"))
}

func TestClient_UpdateTask_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		// id приходит в теле запроса, не в URL
		var req models.UpdateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(7), req.ID)
		require.NotNil(t, req.Completed)
		require.True(t, *req.Completed)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Task{ID: 7, Title: "Отчёт", UserID: 1, Priority: "high", Completed: true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	task, err := c.UpdateTask("access-1", models.UpdateTaskRequest{
		ID:        7,
		Completed: utils.Ptr(true),
	})
	require.NoError(t, err)
	require.True(t, task.Completed)
}

func TestClient_DeleteTask_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)

		var req models.DeleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(7), req.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "task deleted successfully"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	require.NoError(t, c.DeleteTask("access-1", 7))
}
