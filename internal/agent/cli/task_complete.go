package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/utils"
)

// TaskComplete создаёт CLI-команду для отметки задачи выполненной.
//
// Сокращение для: taskplanner task update <id> --completed=true
//
// Пример использования:
//
//	taskplanner task complete 7
//
// В случае успеха выводит: "completed task <id>".
func TaskComplete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Отметить задачу выполненной",
		Long: `Отмечает задачу выполненной на сервере и в локальном кэше.

Пример:
  taskplanner task complete 7
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
			updated, err := c.UpdateTask(app.Creds.AccessToken, sharedModels.UpdateTaskRequest{
				ID:        id,
				Completed: utils.Ptr(true),
			})
			if err != nil {
				return err
			}

			app.State.PutTask(updated)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "completed task %d\n", id)
			return nil
		},
	}
	return cmd
}
