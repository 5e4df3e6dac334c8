// Package memory содержит локальный кэш данных пользователя на стороне агента.
//
// Кэш хранит проекты и задачи, загруженные с сервера командой sync,
// и позволяет CLI работать со списками без повторных запросов.
// Сервер всегда остаётся источником истины: после мутаций кэш
// обновляется данными из ответа сервера.
package memory

import (
	"sort"
	"sync"

	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// Store — потокобезопасное in-memory хранилище проектов и задач.
//
// Используется CLI/агентом для:
//   - полной замены локального состояния после sync (ReplaceAll)
//   - выдачи отсортированных списков (Projects, Tasks)
//   - локального применения ответов сервера на create/update/delete.
type Store struct {
	mu       sync.RWMutex
	projects map[int64]sharedModels.Project
	tasks    map[int64]sharedModels.Task
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		projects: make(map[int64]sharedModels.Project),
		tasks:    make(map[int64]sharedModels.Task),
	}
}

// ReplaceAll полностью заменяет содержимое стора переданными списками.
//
// Используется после sync, чтобы локальное состояние строго соответствовало серверу.
// Если в списках есть дубликаты по ID, последнее значение перезапишет предыдущее.
func (s *Store) ReplaceAll(projects []sharedModels.Project, tasks []sharedModels.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = make(map[int64]sharedModels.Project, len(projects))
	for _, p := range projects {
		s.projects[p.ID] = p
	}
	s.tasks = make(map[int64]sharedModels.Task, len(tasks))
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
}

// Projects возвращает список всех проектов, отсортированный по ID.
func (s *Store) Projects() []sharedModels.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]sharedModels.Project, 0, len(s.projects))
	for _, p := range s.projects {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Tasks возвращает список всех задач, отсортированный по ID.
func (s *Store) Tasks() []sharedModels.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]sharedModels.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetProject возвращает проект по ID.
//
// Если проект отсутствует — возвращает serr.ErrProjectNotFound.
func (s *Store) GetProject(id int64) (sharedModels.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return sharedModels.Project{}, serr.ErrProjectNotFound
	}
	return p, nil
}

// GetTask возвращает задачу по ID.
//
// Если задача отсутствует — возвращает serr.ErrTaskNotFound.
func (s *Store) GetTask(id int64) (sharedModels.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return sharedModels.Task{}, serr.ErrTaskNotFound
	}
	return t, nil
}

// PutProject добавляет или заменяет проект данными из ответа сервера.
func (s *Store) PutProject(p sharedModels.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects[p.ID] = p
}

// PutTask добавляет или заменяет задачу данными из ответа сервера.
func (s *Store) PutTask(t sharedModels.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[t.ID] = t
}

// DeleteProject удаляет проект по ID вместе с его задачами.
//
// Задачи удаляются локально, потому что сервер удаляет их каскадно.
// Если проект отсутствует — возвращает serr.ErrProjectNotFound.
func (s *Store) DeleteProject(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return serr.ErrProjectNotFound
	}
	delete(s.projects, id)
	for tid, t := range s.tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			delete(s.tasks, tid)
		}
	}
	return nil
}

// DeleteTask удаляет задачу по ID.
//
// Если задача отсутствует — возвращает serr.ErrTaskNotFound.
func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return serr.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
