package cli

import (
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/api"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/agent/memory"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient    = api.NewClient
	SaveStateToFile = memory.SaveToFile
	ReadPassword    = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
