package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, and delete the income and expense categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display all categories with their type and display color.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			var categories []model.Category
			if typeFlag != "" {
				t, err := model.ParseTransactionType(typeFlag)
				if err != nil {
					return err
				}
				categories, err = client.CategoriesByType(ctx, t)
				if err != nil {
					return fmt.Errorf("failed to get categories: %w", err)
				}
			} else {
				categories, err = client.Categories(ctx)
				if err != nil {
					return fmt.Errorf("failed to get categories: %w", err)
				}
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'budgie categories add' to create one."))
				return nil
			}

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Name"),
				headerStyle.Render("Type"),
				headerStyle.Render("Color"),
				headerStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 9),
				strings.Repeat("-", 36))

			for _, cat := range categories {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("●")
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.Name,
					cat.Type,
					swatch+" "+cat.Color,
					cli.SubtleStyle.Render(cat.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Filter by type (income, expense)")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		typeFlag  string
		colorFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long:  `Create a category for filing transactions. The color is used by the dashboard and reports.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			t, err := model.ParseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			draft := model.CategoryDraft{
				Name:  args[0],
				Color: colorFlag,
				Type:  t,
			}
			req, err := draft.Validate()
			if err != nil {
				return err
			}

			cat, err := client.CreateCategory(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created %s category %q", cat.Type, cat.Name)))
			fmt.Printf("  ID: %s\n", cat.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "expense", "Category type (income, expense)")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Display color as #RRGGBB (default: service default)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category by its ID. Transactions filed under it keep their records on the service.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			client, err := initClient()
			if err != nil {
				return err
			}

			if !confirmAction(fmt.Sprintf("Are you sure you want to delete category %s?", id), force) {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			if err := client.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted category %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
