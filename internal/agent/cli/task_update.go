package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// TaskUpdate создаёт CLI-команду для обновления задачи на сервере и локально.
//
// Команда обновляет задачу по ID на сервере и применяет ответ сервера
// к локальному кэшу. Обновлять можно только выбранные поля:
// title, description, project, priority, due, completed.
// id передаётся аргументом и отправляется в теле запроса PUT /tasks.
//
// Если задача не существует или принадлежит другому пользователю,
// сервер вернёт 404 и команда завершится ошибкой. То же произойдёт
// при попытке привязать задачу к чужому проекту.
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально);
//   - должен быть указан хотя бы один флаг обновления.
//
// Примеры:
//
//	taskplanner task update 7 --title "Новый заголовок"
//	taskplanner task update 7 --priority high --due 2026-09-20
//	taskplanner task update 7 --completed=true
//
// В случае успеха выводит: "updated task <id>".
func TaskUpdate(app *App) *cobra.Command {
	var (
		title       string
		description string
		projectID   int64
		priority    string
		due         string
		completed   bool

		setTitle, setDescription, setProject, setPriority, setDue, setCompleted bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить задачу на сервере и локально",
		Long: `Обновляет задачу по ID на сервере и обновляет локальный кэш.

Примеры:
  taskplanner task update 7 --title "Новый заголовок"
  taskplanner task update 7 --priority high --due 2026-09-20
  taskplanner task update 7 --completed=true
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

			// PATCH поля
			req := sharedModels.UpdateTaskRequest{ID: id}
			if setTitle {
				req.Title = &title
			}
			if setDescription {
				req.Description = &description
			}
			if setProject {
				req.ProjectID = &projectID
			}
			if setPriority {
				req.Priority = &priority
			}
			if setDue {
				req.DueDate = &due
			}
			if setCompleted {
				req.Completed = &completed
			}

			if !setTitle && !setDescription && !setProject && !setPriority && !setDue && !setCompleted {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdateTask(app.Creds.AccessToken, req)
			if err != nil {
				return err
			}

			// локальный кэш обновляем данными из ответа сервера
			app.State.PutTask(updated)

			if err := SaveStateToFile(app.StatePath, app.State); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated task %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new task title")
	cmd.Flags().StringVar(&description, "description", "", "new task description")
	cmd.Flags().Int64Var(&projectID, "project", 0, "new project id")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority: low|medium|high")
	cmd.Flags().StringVar(&due, "due", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&completed, "completed", false, "completed flag")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setTitle = cmd.Flags().Changed("title")
		setDescription = cmd.Flags().Changed("description")
		setProject = cmd.Flags().Changed("project")
		setPriority = cmd.Flags().Changed("priority")
		setDue = cmd.Flags().Changed("due")
		setCompleted = cmd.Flags().Changed("completed")
	}

	return cmd
}
