package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// ProjectCreate создаёт CLI-команду для создания нового проекта на сервере.
//
// Команда отправляет на сервер название и (опционально) описание проекта.
// Владельца назначает сервер по access-токену.
// Созданный проект добавляется в локальный кэш и сохраняется в файл состояния.
//
// Обязательные флаги:
//
//	--name — название проекта
//
// Необязательные флаги:
//
//	--description — описание проекта
//
// Примеры использования:
//
//	taskplanner project create --name "Работа"
//	taskplanner project create --name "Дом" --description "Домашние дела"
//
// В случае успеха выводит: "created project <id>".
func ProjectCreate(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать новый проект на сервере",
		Long: `Создаёт новый проект на сервере и добавляет его в локальный кэш.

Примеры:
  taskplanner project create --name "Работа"
  taskplanner project create --name "Дом" --description "Домашние дела"
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: taskplanner login")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			var descPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}

			c := NewAPIClient(app.ServerURL)
			created, err := c.CreateProject(app.Creds.AccessToken, sharedModels.CreateProjectRequest{
				Name:        name,
				Description: descPtr,
			})
			if err != nil {
				return err
			}
			// Стоп-кран: если ID нулевой — значит модель ответа не совпала с JSON
			if created.ID == 0 {
				return fmt.Errorf("server returned empty id on create")
			}

			app.State.PutProject(created)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created project %d\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&description, "description", "", "optional project description")

	return cmd
}
