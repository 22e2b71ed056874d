package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/merojugx/mero/internal/interfaces/cli/admin"
	"github.com/merojugx/mero/internal/interfaces/cli/configcmd"
	"github.com/merojugx/mero/internal/interfaces/cli/migrate"
	"github.com/merojugx/mero/internal/interfaces/cli/server"
)

// @title Mero Jugx API
// @version 1.0
// @description Multi-tenant business platform API.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mero",
		Short: "Mero Jugx - multi-tenant business platform API",
		Long:  `Mero Jugx serves the multi-tenant API and ships migration, admin and configuration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
