package cli

import (
	"github.com/spf13/cobra"
)

// NewProjectCmd создаёт родительскую CLI-команду для работы с проектами.
//
// Подкоманды:
//
//	create  Создать проект на сервере
//	list    Показать локальные проекты (после sync)
//	update  Обновить проект на сервере
//	delete  Удалить проект на сервере и локально
func NewProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Работа с проектами",
	}

	cmd.AddCommand(ProjectCreate(app))
	cmd.AddCommand(ProjectList(app))
	cmd.AddCommand(ProjectUpdate(app))
	cmd.AddCommand(ProjectDelete(app))

	return cmd
}
