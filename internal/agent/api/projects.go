package api

import (
	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// ListProjects загружает все проекты пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /projects
//
// Параметры:
//   - accessToken: access-токен пользователя. Передаётся в заголовке Authorization: Bearer <token>.
//
// Возвращает:
//   - срез sharedModels.Project (пустой срез, если проектов нет)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListProjects(accessToken string) ([]sharedModels.Project, error) {
	var resp []sharedModels.Project
	err := c.GetJSON("/projects", &resp, accessToken)
	return resp, err
}

// CreateProject создаёт новый проект на сервере.
//
// Выполняет запрос:
//
//	POST /projects
//
// Тело запроса сериализуется в JSON из sharedModels.CreateProjectRequest.
// Владельца назначает сервер по access-токену, клиент его не передаёт.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: данные создаваемого проекта (name и опционально description)
//
// Возвращает:
//   - созданный sharedModels.Project (с серверным id, userId и createdAt)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateProject(accessToken string, req sharedModels.CreateProjectRequest) (sharedModels.Project, error) {
	var resp sharedModels.Project
	err := c.PostJSON("/projects", req, &resp, accessToken)
	return resp, err
}

// UpdateProject обновляет существующий проект на сервере.
//
// Выполняет запрос:
//
//	PUT /projects
//
// id обновляемого проекта передаётся в теле запроса (req.ID), не в URL.
// Для partial update передаются только изменяемые поля.
// Если проект не существует или принадлежит другому пользователю,
// сервер отвечает 404 и метод возвращает ошибку.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: патч-данные обновления (id и name/description)
//
// Возвращает:
//   - обновлённый sharedModels.Project
//   - ошибку при неуспешном статусе (не 2xx) или ошибке декодирования JSON.
func (c *Client) UpdateProject(accessToken string, req sharedModels.UpdateProjectRequest) (sharedModels.Project, error) {
	var resp sharedModels.Project
	err := c.PutJSON("/projects", req, &resp, accessToken)
	return resp, err
}

// DeleteProject удаляет проект на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /projects
//
// id удаляемого проекта передаётся в теле запроса.
// Задачи удалённого проекта сервер удаляет каскадно.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - id: идентификатор проекта
//
// Возвращает:
//   - nil при успешном удалении (сервер отвечает {"message": ...})
//   - ошибку при неуспешном статусе (не 2xx).
func (c *Client) DeleteProject(accessToken string, id int64) error {
	return c.DeleteJSON("/projects", sharedModels.DeleteRequest{ID: id}, nil, accessToken)
}
