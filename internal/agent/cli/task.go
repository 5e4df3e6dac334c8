package cli

import (
	"github.com/spf13/cobra"
)

// NewTaskCmd создаёт родительскую CLI-команду для работы с задачами.
//
// Подкоманды:
//
//	create    Создать задачу на сервере
//	list      Показать локальные задачи (после sync)
//	update    Обновить задачу на сервере
//	complete  Отметить задачу выполненной
//	delete    Удалить задачу на сервере и локально
func NewTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Работа с задачами",
	}

	cmd.AddCommand(TaskCreate(app))
	cmd.AddCommand(TaskList(app))
	cmd.AddCommand(TaskUpdate(app))
	cmd.AddCommand(TaskComplete(app))
	cmd.AddCommand(TaskDelete(app))

	return cmd
}
