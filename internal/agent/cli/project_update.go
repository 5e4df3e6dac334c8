package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// ProjectUpdate создаёт CLI-команду для обновления проекта на сервере и локально.
//
// Команда обновляет проект по ID на сервере и применяет ответ сервера
// к локальному кэшу. Обновлять можно только выбранные поля: name, description.
// id передаётся аргументом и отправляется в теле запроса PUT /projects.
//
// Если проект не существует или принадлежит другому пользователю,
// сервер вернёт 404 и команда завершится ошибкой.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально);
//   - должен быть указан хотя бы один флаг обновления: --name/--description.
//
// Примеры:
//
//	taskplanner project update 3 --name "Новое имя"
//	taskplanner project update 3 --description "Обновлённое описание"
//
// В случае успеха выводит: "updated project <id>".
func ProjectUpdate(app *App) *cobra.Command {
	var (
		name        string
		description string

		setName, setDescription bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить проект на сервере и локально",
		Long: `Обновляет проект по ID на сервере и обновляет локальный кэш.

Примеры:
  taskplanner project update 3 --name "Новое имя"
  taskplanner project update 3 --description "Обновлённое описание"
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: taskplanner login")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			// PATCH поля
			var namePtr, descPtr *string
			if setName {
				namePtr = &name
			}
			if setDescription {
				descPtr = &description
			}

			if !setName && !setDescription {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdateProject(app.Creds.AccessToken, sharedModels.UpdateProjectRequest{
				ID:          id,
				Name:        namePtr,
				Description: descPtr,
			})
			if err != nil {
				return err
			}

			// локальный кэш обновляем данными из ответа сервера
			app.State.PutProject(updated)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated project %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setName = cmd.Flags().Changed("name")
		setDescription = cmd.Flags().Changed("description")
	}

	return cmd
}
