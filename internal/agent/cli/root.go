// Package cli реализует командный интерфейс (CLI) клиентского приложения TaskPlanner.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (access/refresh токены) из конфигурационного файла;
//   - загрузку локального кэша проектов и задач;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/config"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/memory"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу, загруженные учётные
// данные и локальный кэш проектов и задач.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера TaskPlanner (например, "https://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранёнными учётными данными (access/refresh токены).
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials

	// StatePath — путь к файлу локального кэша проектов и задач.
	StatePath string
	// State — локальный кэш проектов и задач, заполняется после sync.
	State *memory.Store
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяются пути к файлам, загружаются сохранённые токены и локальный кэш.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "https://127.0.0.1:8080",
		State:     memory.NewStore(),
	}

	cmd := &cobra.Command{
		Use:   "taskplanner",
		Short: "TaskPlanner CLI — персональный планировщик задач и проектов",
		Long: `TaskPlanner CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить access/refresh)
  refresh   Обновить access по refresh токену
  sync      Синхронизация проектов и задач с сервером
  project   Работа с проектами (create/list/update/delete)
  task      Работа с задачами (create/list/update/complete/delete)
  version   Версия и дата сборки

Примеры:

Регистрация:
  taskplanner register --name Ivan --email test@example.com

Логин:
  taskplanner login --email test@example.com
  (сохраняет access и refresh токены в локальном конфиге)

Refresh:
  taskplanner refresh
	(обновляет access токен используя refresh_token из локального конфига)

Синхронизация:
  taskplanner sync
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			sp, err := memory.DefaultStatePath()
			if err != nil {
				return err
			}
			app.StatePath = sp

			return memory.LoadFromFile(app.StatePath, app.State)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "https://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewRefreshCmd(app))
	cmd.AddCommand(NewSyncCmd(app))
	cmd.AddCommand(NewProjectCmd(app))
	cmd.AddCommand(NewTaskCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
