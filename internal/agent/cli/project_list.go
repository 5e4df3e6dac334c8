package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ProjectList создаёт CLI-команду для просмотра локально сохранённых проектов.
//
// Команда работает только с локальным кэшем (после sync) и не обращается к серверу.
// Печатает список проектов: ID, name, description, created_at.
//
// Примеры:
//
//	taskplanner project list
func ProjectList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать локальные проекты",
		Long: `Показывает локально сохранённые проекты (после sync).

Пример:
  taskplanner project list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.State.Projects()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no local projects (run: taskplanner sync)")
				return nil
			}

			for _, p := range items {
				desc := ""
				if p.Description != nil {
					desc = *p.Description
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%d\t%s\t%s\t%s\n",
					p.ID, p.Name, desc, p.CreatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			return nil
		},
	}

	return cmd
}
