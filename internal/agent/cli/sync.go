package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCmd создаёт CLI-команду для синхронизации локального кэша с сервером.
//
// Команда запрашивает у сервера полные списки проектов и задач текущего
// пользователя и полностью заменяет ими локальный кэш. Сервер остаётся
// источником истины: локальные данные после sync строго соответствуют серверу.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
//
// Поведение:
//  1. выполняет запросы ListProjects и ListTasks с access token;
//  2. перезаписывает локальный кэш (ReplaceAll);
//  3. сохраняет кэш в файл состояния;
//  4. выводит: "synced N projects, M tasks".
//
// Пример:
//
//	taskplanner sync
func NewSyncCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Синхронизация проектов и задач с сервером",
		Long: `Синхронизация локального кэша с сервером.

Загружает все проекты и задачи пользователя и сохраняет их локально.

Пример:
  taskplanner sync
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: taskplanner login")
			}

			c := NewAPIClient(app.ServerURL)
			projects, err := c.ListProjects(app.Creds.AccessToken)
			if err != nil {
				return err
			}
			tasks, err := c.ListTasks(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			app.State.ReplaceAll(projects, tasks)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d projects, %d tasks\n", len(projects), len(tasks))
			return nil
		},
	}

	return cmd
}
