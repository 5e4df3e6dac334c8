package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TaskList создаёт CLI-команду для просмотра локально сохранённых задач.
//
// Команда работает только с локальным кэшем (после sync) и не обращается к серверу.
// Печатает список задач: ID, статус, приоритет, заголовок, проект и срок.
//
// Флаги:
//
//	--project — показать только задачи указанного проекта
//	--pending — показать только невыполненные задачи
//
// Примеры:
//
//	taskplanner task list
//	taskplanner task list --project 3 --pending
func TaskList(app *App) *cobra.Command {
	var projectID int64
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать локальные задачи",
		Long: `Показывает локально сохранённые задачи (после sync).

Примеры:
  taskplanner task list
  taskplanner task list --project 3 --pending
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.State.Tasks()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no local tasks (run: taskplanner sync)")
				return nil
			}

			byProject := cmd.Flags().Changed("project")
			shown := 0
			for _, t := range items {
				if byProject && (t.ProjectID == nil || *t.ProjectID != projectID) {
					continue
				}
				if pendingOnly && t.Completed {
					continue
				}

				status := " "
				if t.Completed {
					status = "x"
				}
				project := "-"
				if t.ProjectID != nil {
					project = fmt.Sprintf("%d", *t.ProjectID)
				}
				due := "-"
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%d\t[%s]\t%s\t%s\tproject=%s\tdue=%s\n",
					t.ID, status, t.Priority, t.Title, project, due,
				)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no tasks match the filter")
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "show only tasks of this project")
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "show only not completed tasks")

	return cmd
}
