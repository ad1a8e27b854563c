package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsjohal14/learnhub/internal/scope/catalog"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tutorials in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			docs := c.Docs()
			if category != "" {
				docs = c.ByCategory(category)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY")
			for _, d := range docs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Title, d.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list tutorials in this category")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one tutorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			d, ok := c.Get(args[0])
			if !ok {
				return fmt.Errorf("tutorial %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n%s\n\n", d.Title, d.Description)
			fmt.Fprintf(out, "Category: %s\nPath:     %s\nKeywords: %s\n", d.Category, d.Path, strings.Join(d.Keywords, ", "))
			if d.Content != "" {
				fmt.Fprintf(out, "\n%s\n", d.Content)
			}
			return nil
		},
	}
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with tutorial counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range c.Categories() {
				fmt.Fprintf(tw, "%s\t%d\n", name, len(c.ByCategory(name)))
			}
			return tw.Flush()
		},
	}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the catalog loads and every entry is well formed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tutorials in %d categories\n", c.Count(), len(c.Categories()))
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as JSON lines to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return catalog.WriteJSONL(cmd.OutOrStdout(), c.Docs())
		},
	}
}
