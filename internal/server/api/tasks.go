package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// ListTasks возвращает все задачи текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware),
// выборка всегда ограничена user_id из identity.
//
// @Summary      List tasks
// @Description  Returns all tasks belonging to the authenticated user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Task
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	tasks, err := h.Svc.Tasks.List(r.Context(), identity.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, tasks)
}

// CreateTask создаёт новую задачу для аутентифицированного пользователя.
//
// Владелец назначается сервером из identity; userId из тела запроса
// не читается вовсе. projectId (если задан) обязан указывать на проект
// того же пользователя, иначе ответ неотличим от "нет такого проекта".
//
// @Summary      Create task
// @Description  Creates a new task owned by the authenticated user.
// @Description  Optional projectId must reference a project of the same user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateTaskRequest true "Create task request"
// @Success      201 {object} models.Task
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Project not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	task, err := h.Svc.Tasks.Create(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create task failed",
				"error", err,
				"user_id", identity.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, task)
}

// UpdateTask обновляет существующую задачу пользователя.
//
// ID задачи передаётся в теле запроса; обновляются только переданные поля.
// Чужая задача и несуществующая задача дают одинаковый 404.
//
// @Summary      Update task
// @Description  Partially updates a task belonging to the authenticated user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UpdateTaskRequest true "Update task request"
// @Success      200 {object} models.Task
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /tasks [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	task, err := h.Svc.Tasks.Update(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update task failed",
				"error", err,
				"user_id", identity.ID,
				"task_id", req.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, task)
}

// DeleteTask удаляет задачу пользователя.
//
// ID задачи передаётся в теле запроса.
// Политика 404 такая же, как у UpdateTask.
//
// @Summary      Delete task
// @Description  Deletes a task belonging to the authenticated user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.DeleteRequest true "Delete task request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /tasks [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	err := h.Svc.Tasks.Delete(r.Context(), identity.ID, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete task failed",
				"error", err,
				"user_id", identity.ID,
				"task_id", req.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "task deleted successfully"})
}
