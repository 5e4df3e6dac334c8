package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/service"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/utils"
)

func newProjectsService(t *testing.T) (*service.ProjectsService, *mocks.MockProjectsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectsRepo(ctrl)
	return service.NewProjectsService(repo), repo
}

// список проектов
func TestProjectsService_List_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectsService(t)

	repo.EXPECT().
		List(ctx, int64(1)).
		Return([]models.Project{{ID: 1, Name: "Работа", UserID: 1}}, nil)

	got, err := svc.List(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Работа", got[0].Name)
}

// создание проекта
func TestProjectsService_Create_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectsService(t)

	repo.EXPECT().
		Create(ctx, int64(1), "Работа", nil).
		Return(models.Project{ID: 5, Name: "Работа", UserID: 1}, nil)

	got, err := svc.Create(ctx, 1, models.CreateProjectRequest{Name: "Работа"})

	require.NoError(t, err)
	require.Equal(t, int64(5), got.ID)
}

// имя обязательно
func TestProjectsService_Create_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectsService(t)

	_, err := svc.Create(ctx, 1, models.CreateProjectRequest{Name: "   "})

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// частичное обновление
func TestProjectsService_Update_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectsService(t)

	name := "Новое имя"

	repo.EXPECT().
		Update(ctx, int64(1), int64(5), &name, nil).
		Return(models.Project{ID: 5, Name: name, UserID: 1}, nil)

	got, err := svc.Update(ctx, 1, models.UpdateProjectRequest{ID: 5, Name: &name})

	require.NoError(t, err)
	require.Equal(t, name, got.Name)
}

// обновление с пустым именем отклоняется
func TestProjectsService_Update_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectsService(t)

	_, err := svc.Update(ctx, 1, models.UpdateProjectRequest{ID: 5, Name: utils.StrPtr("  ")})

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// id обязателен
func TestProjectsService_Update_NoID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectsService(t)

	_, err := svc.Update(ctx, 1, models.UpdateProjectRequest{Name: utils.StrPtr("x")})

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// чужой или несуществующий проект
func TestProjectsService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectsService(t)

	name := "x"

	repo.EXPECT().
		Update(ctx, int64(2), int64(5), &name, nil).
		Return(models.Project{}, serr.ErrNotFound)

	_, err := svc.Update(ctx, 2, models.UpdateProjectRequest{ID: 5, Name: &name})

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// удаление
func TestProjectsService_Delete_OK(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectsService(t)

	repo.EXPECT().
		Delete(ctx, int64(1), int64(5)).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, 1, 5))
}

// удаление без id
func TestProjectsService_Delete_NoID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectsService(t)

	err := svc.Delete(ctx, 1, 0)

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}
