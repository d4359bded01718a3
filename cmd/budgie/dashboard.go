package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgielabs/budgie/internal/dashboard"
	"github.com/budgielabs/budgie/internal/tui"
	"github.com/budgielabs/budgie/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	var themeFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Launch the full-screen dashboard for browsing transactions, budget
progress and spending, and for recording new entries.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := initClient()
			if err != nil {
				return err
			}

			theme := themeFlag
			if theme == "" {
				theme = viper.GetString("ui.theme")
			}

			return tui.Run(cmd.Context(),
				tui.WithStore(dashboard.New(client)),
				tui.WithTheme(themes.GetTheme(theme)),
			)
		},
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "color theme (default, nord)")

	return cmd
}
