package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/pressmark/schemagen/schema"
)

func buildCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build <content.yaml>",
		Short: "Render JSON-LD for the items in a content document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			for _, item := range doc.Items {
				data, err := a.renderer.Render(ctx, item)
				if err != nil {
					return fmt.Errorf("render item %d: %w", item.ID, err)
				}
				if data == nil {
					a.log.Info("no schema applies", "item", item.ID, "type", item.Type)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}
			return nil
		},
	}
}

func validateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <content.yaml>",
		Short: "Build and validate items, reporting missing properties",
		Long: `Validate builds every item in the content document without caching and
reports missing required and recommended properties. The exit code is
non-zero when any item is missing a required property.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			allValid := true
			for _, item := range doc.Items {
				report, err := a.renderer.Report(ctx, item)
				if err != nil {
					return fmt.Errorf("validate item %d: %w", item.ID, err)
				}
				if !report.Valid {
					allValid = false
				}
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}

			if !allValid {
				// Distinct from usage errors so scripts can branch on it.
				os.Exit(3)
			}
			return nil
		},
	}
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported schema types, grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			grouped := schema.NewFactory().TypesGrouped()

			categories := make([]string, 0, len(grouped))
			for category := range grouped {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			out := cmd.OutOrStdout()
			for _, category := range categories {
				fmt.Fprintf(out, "%s:\n", category)
				ids := make([]string, 0, len(grouped[category]))
				for id := range grouped[category] {
					ids = append(ids, id)
				}
				sort.Strings(ids)
				for _, id := range ids {
					fmt.Fprintf(out, "  %-20s %s\n", id, grouped[category][id])
				}
			}
			return nil
		},
	}
}
