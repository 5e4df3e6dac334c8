package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// ListProjects возвращает все проекты текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware),
// выборка всегда ограничена user_id из identity.
//
// @Summary      List projects
// @Description  Returns all projects belonging to the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Project
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	projects, err := h.Svc.Projects.List(r.Context(), identity.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, projects)
}

// CreateProject создаёт новый проект для аутентифицированного пользователя.
//
// Владелец назначается сервером из identity; userId из тела запроса
// не читается вовсе.
//
// @Summary      Create project
// @Description  Creates a new project owned by the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateProjectRequest true "Create project request"
// @Success      201 {object} models.Project
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	project, err := h.Svc.Projects.Create(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create project failed",
				"error", err,
				"user_id", identity.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, project)
}

// UpdateProject обновляет существующий проект пользователя.
//
// ID проекта передаётся в теле запроса; обновляются только переданные поля.
// Чужой проект и несуществующий проект дают одинаковый 404 —
// по ответу нельзя понять, существует ли чужая запись.
//
// @Summary      Update project
// @Description  Partially updates a project belonging to the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UpdateProjectRequest true "Update project request"
// @Success      200 {object} models.Project
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [put]
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	project, err := h.Svc.Projects.Update(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update project failed",
				"error", err,
				"user_id", identity.ID,
				"project_id", req.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// DeleteProject удаляет проект пользователя вместе с его задачами.
//
// ID проекта передаётся в теле запроса.
// Политика 404 такая же, как у UpdateProject.
//
// @Summary      Delete project
// @Description  Deletes a project belonging to the authenticated user.
// @Description  Tasks of the project are deleted as well (cascade).
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.DeleteRequest true "Delete project request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /projects [delete]
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
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

	err := h.Svc.Projects.Delete(r.Context(), identity.ID, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete project failed",
				"error", err,
				"user_id", identity.ID,
				"project_id", req.ID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "project deleted successfully"})
}
