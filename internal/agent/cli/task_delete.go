package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// TaskDelete создаёт CLI-команду для удаления задачи на сервере и локально.
//
// Команда удаляет задачу по ID на сервере, затем удаляет её из локального
// кэша и сохраняет обновлённый файл состояния.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Пример использования:
//
//	taskplanner task delete 7
//
// В случае успешного выполнения выводит: "deleted task <id>".
func TaskDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить задачу на сервере и локально",
		Long: `Удаляет задачу по ID на сервере и в локальном кэше.

Пример:
  taskplanner task delete 7
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: taskplanner login")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteTask(app.Creds.AccessToken, id); err != nil {
				return err
			}

			// задачи может не быть локально, если sync не делали
			if err := app.State.DeleteTask(id); err != nil && !errors.Is(err, serr.ErrTaskNotFound) {
				return err
			}
			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
			return nil
		},
	}
	return cmd
}
