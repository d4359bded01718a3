package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
		Long:  `Show the service-wide settings or change the default currency.`,
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setCurrencyCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			settings, err := client.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			content := fmt.Sprintf("App: %s\nDefault currency: %s\nUpdated: %s",
				settings.AppName,
				settings.DefaultCurrency,
				settings.UpdatedAt.Format("2006-01-02 15:04"))
			fmt.Println(cli.RenderBox("Settings", content))

			return nil
		},
	}
}

func setCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <code>",
		Short: "Set the default currency",
		Long: `Change the default currency for new transactions and budgets.
Existing entries keep the currency they were recorded with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := strings.ToUpper(strings.TrimSpace(args[0]))

			client, err := initClient()
			if err != nil {
				return err
			}

			settings, err := client.UpdateSettings(ctx, model.SettingsUpdate{DefaultCurrency: code})
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Default currency set to %s", settings.DefaultCurrency)))
			return nil
		},
	}
}
