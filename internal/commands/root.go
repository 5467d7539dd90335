package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/adapters/credentials"
	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// app carries what every subcommand needs. It is filled in before a
// subcommand runs, once the flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	creds  *credentials.FileStore
	client *remote.Client
}

func (a *app) init(stderr io.Writer, verbose bool) error {
	level := a.cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.creds = credentials.NewFileStore(a.cfg.CredentialsFile)

	client, err := remote.NewClient(a.cfg.APIBaseURL, a.creds, a.cfg.HTTPTimeout, a.logger)
	if err != nil {
		return err
	}
	a.client = client
	return nil
}

func (a *app) owner() (domain.OwnerID, error) {
	if a.cfg.OwnerID == "" {
		return "", fmt.Errorf("OWNER_ID is not set")
	}
	return domain.OwnerID(a.cfg.OwnerID), nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	var verbose bool
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Track expenses against category budgets",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr(), verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and debug output")

	rootCmd.AddCommand(
		newLoginCommand(a),
		newRegisterCommand(a),
		newLogoutCommand(a),
		newExpensesCommand(a),
		newBudgetsCommand(a),
		newDashboardCommand(a),
		newReportCommand(a),
	)

	return rootCmd
}
