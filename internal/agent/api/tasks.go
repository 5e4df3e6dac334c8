package api

import (
	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// ListTasks загружает все задачи пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /tasks
//
// Параметры:
//   - accessToken: access-токен пользователя. Передаётся в заголовке Authorization: Bearer <token>.
//
// Возвращает:
//   - срез sharedModels.Task (пустой срез, если задач нет)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListTasks(accessToken string) ([]sharedModels.Task, error) {
	var resp []sharedModels.Task
	err := c.GetJSON("/tasks", &resp, accessToken)
	return resp, err
}

// CreateTask создаёт новую задачу на сервере.
//
// Выполняет запрос:
//
//	POST /tasks
//
// Тело запроса сериализуется в JSON из sharedModels.CreateTaskRequest.
// Владельца назначает сервер по access-токену. Если передан projectId
// чужого или несуществующего проекта, сервер отвечает 404.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: данные создаваемой задачи (title/priority и опционально description/projectId/dueDate)
//
// Возвращает:
//   - созданную sharedModels.Task (с серверным id, userId и createdAt)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateTask(accessToken string, req sharedModels.CreateTaskRequest) (sharedModels.Task, error) {
	var resp sharedModels.Task
	err := c.PostJSON("/tasks", req, &resp, accessToken)
	return resp, err
}

// UpdateTask обновляет существующую задачу на сервере.
//
// Выполняет запрос:
//
//	PUT /tasks
//
// id обновляемой задачи передаётся в теле запроса (req.ID), не в URL.
// Для partial update передаются только изменяемые поля.
// Если задача не существует или принадлежит другому пользователю,
// сервер отвечает 404 и метод возвращает ошибку.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: патч-данные обновления (id и title/description/projectId/priority/dueDate/completed)
//
// Возвращает:
//   - обновлённую sharedModels.Task
//   - ошибку при неуспешном статусе (не 2xx) или ошибке декодирования JSON.
func (c *Client) UpdateTask(accessToken string, req sharedModels.UpdateTaskRequest) (sharedModels.Task, error) {
	var resp sharedModels.Task
	err := c.PutJSON("/tasks", req, &resp, accessToken)
	return resp, err
}

// DeleteTask удаляет задачу на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /tasks
//
// id удаляемой задачи передаётся в теле запроса.
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - id: идентификатор задачи
//
// Возвращает:
//   - nil при успешном удалении (сервер отвечает {"message": ...})
//   - ошибку при неуспешном статусе (не 2xx).
func (c *Client) DeleteTask(accessToken string, id int64) error {
	return c.DeleteJSON("/tasks", sharedModels.DeleteRequest{ID: id}, nil, accessToken)
}
