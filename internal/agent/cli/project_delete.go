package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// ProjectDelete создаёт CLI-команду для удаления проекта на сервере и локально.
//
// Команда удаляет проект по ID на сервере, затем удаляет его из локального
// кэша вместе с задачами проекта (сервер удаляет их каскадно) и сохраняет
// обновлённый файл состояния.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Пример использования:
//
//	taskplanner project delete 3
//
// В случае успешного выполнения выводит: "deleted project <id>".
func ProjectDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить проект на сервере и локально",
		Long: `Удаляет проект по ID на сервере и в локальном кэше.

Задачи проекта удаляются вместе с ним (каскадно).

Пример:
  taskplanner project delete 3
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

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteProject(app.Creds.AccessToken, id); err != nil {
				return err
			}

			// проекта может не быть локально, если sync не делали
			if err := app.State.DeleteProject(id); err != nil && !errors.Is(err, serr.ErrProjectNotFound) {
				return err
			}
			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted project %d\n", id)
			return nil
		},
	}
	return cmd
}
