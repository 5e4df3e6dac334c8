package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере TaskPlanner
// с использованием имени, email и пароля. Обязательные флаги: --name и --email.
//
// Пароль не передаётся флагом, чтобы не утекать в shell history.
// По умолчанию пароль запрашивается интерактивно (скрытый ввод).
// Для скриптов/CI доступен режим чтения пароля из STDIN через флаг
// --password-stdin.
//
// Примеры использования:
//
//	taskplanner register --name Ivan --email test@example.com
//
//	# для скриптов (пароль из STDIN)
//	echo "StrongPass123" | taskplanner register --name Ivan --email test@example.com --password-stdin
//
// В случае успешной регистрации пользователю выводится id созданного аккаунта.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email string
	var passwordFromStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пароль запрашивается интерактивно (скрытый ввод).
Для скриптов: --password-stdin читает пароль из STDIN.

Пример:
  taskplanner register --name Ivan --email test@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Signup(name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (user id=%d)\n", resp.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

// readPassword читает пароль пользователя.
//
// Режимы:
//   - fromStdin=true: читает пароль из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает пароль интерактивно из терминала со скрытым вводом.
//
// Важно:
//   - если fromStdin=false, но stdin не является терминалом, функция вернёт ошибку
//     "stdin is not a terminal; use --password-stdin".
//   - пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
