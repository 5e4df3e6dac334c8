package memory

import (
	"encoding/json"
	"os"
	"path/filepath"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// StateDump — формат файла локального состояния агента.
//
// Файл содержит объект вида:
//
//	{ "projects": [ ... ], "tasks": [ ... ] }
type StateDump struct {
	Projects []sharedModels.Project `json:"projects"`
	Tasks    []sharedModels.Task    `json:"tasks"`
}

// DefaultStatePath возвращает путь по умолчанию для локального файла состояния.
//
// Путь формируется как:
//
//	$HOME/.taskplanner/state.json
//
// Ошибки:
//   - возвращает ошибку, если не удаётся определить домашнюю директорию пользователя.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskplanner", "state.json"), nil
}

// SaveToFile сериализует текущее состояние store в JSON и сохраняет в файл по пути path.
//
// Поведение:
//   - читает store под RLock (потокобезопасно);
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: StateDump с отступами (MarshalIndent).
func SaveToFile(path string, store *Store) error {
	store.mu.RLock()
	out := StateDump{
		Projects: make([]sharedModels.Project, 0, len(store.projects)),
		Tasks:    make([]sharedModels.Task, 0, len(store.tasks)),
	}
	for _, p := range store.projects {
		out.Projects = append(out.Projects, p)
	}
	for _, t := range store.tasks {
		out.Tasks = append(out.Tasks, t)
	}
	store.mu.RUnlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает состояние из JSON-файла в store.
//
// Поведение:
//   - если файл не существует — возвращает nil (это нормальная ситуация при первом запуске);
//   - если JSON некорректный — возвращает ошибку Unmarshal;
//   - при успешной загрузке полностью заменяет содержимое store (ReplaceAll semantics).
func LoadFromFile(path string, store *Store) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump StateDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	// заменяем полностью — после sync это удобно
	store.ReplaceAll(dump.Projects, dump.Tasks)
	return nil
}
