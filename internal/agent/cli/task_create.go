package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// TaskCreate создаёт CLI-команду для создания новой задачи на сервере.
//
// Команда отправляет на сервер заголовок, приоритет и опциональные поля задачи.
// Владельца назначает сервер по access-токену. Если указан --project с id
// чужого или несуществующего проекта, сервер вернёт 404.
// Созданная задача добавляется в локальный кэш и сохраняется в файл состояния.
//
// Обязательные флаги:
//
//	--title — заголовок задачи
//
// Необязательные флаги:
//
//	--description — описание задачи
//	--project     — id проекта, к которому привязать задачу
//	--priority    — low | medium | high (по умолчанию medium)
//	--due         — срок выполнения в формате YYYY-MM-DD
//
// Примеры использования:
//
//	taskplanner task create --title "Купить молоко"
//	taskplanner task create --title "Отчёт" --project 3 --priority high --due 2026-09-15
//
// В случае успеха выводит: "created task <id>".
func TaskCreate(app *App) *cobra.Command {
	var (
		title       string
		description string
		projectID   int64
		priority    string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать новую задачу на сервере",
		Long: `Создаёт новую задачу на сервере и добавляет её в локальный кэш.

Примеры:
  taskplanner task create --title "Купить молоко"
  taskplanner task create --title "Отчёт" --project 3 --priority high --due 2026-09-15
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: taskplanner login")
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			var descPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}
			var projectPtr *int64
			if cmd.Flags().Changed("project") {
				projectPtr = &projectID
			}

			c := NewAPIClient(app.ServerURL)
			created, err := c.CreateTask(app.Creds.AccessToken, sharedModels.CreateTaskRequest{
				Title:       title,
				Description: descPtr,
				ProjectID:   projectPtr,
				Priority:    priority,
				DueDate:     due,
			})
			if err != nil {
				return err
			}
			if created.ID == 0 {
				return fmt.Errorf("server returned empty id on create")
			}

			app.State.PutTask(created)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created task %d\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "optional task description")
	cmd.Flags().Int64Var(&projectID, "project", 0, "optional project id")
	cmd.Flags().StringVar(&priority, "priority", sharedModels.PriorityMedium, "task priority: low|medium|high")
	cmd.Flags().StringVar(&due, "due", "", "optional due date (YYYY-MM-DD)")

	return cmd
}
