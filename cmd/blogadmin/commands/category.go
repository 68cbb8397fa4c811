package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCategoryCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Args:  cobra.NoArgs,
		Short: "Manage post categories",
	}

	cmd.AddCommand(
		newCategoryAddCommand(rt),
		newCategoryPublishCommand(rt, "publish", "Show a category and its posts", true),
		newCategoryPublishCommand(rt, "unpublish", "Hide a category and its posts", false),
	)

	return cmd
}

func newCategoryAddCommand(rt *runtime) *cobra.Command {
	var (
		title, description, slug string
		unpublished              bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bm, closeFn, err := rt.manager(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			category, err := bm.CreateCategory(cmd.Context(), time.Now(), title, description, slug, !unpublished)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "category %q created with slug %q\n", category.Title, category.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "category title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVarP(&slug, "slug", "s", "", "URL slug, generated from the title when empty")
	cmd.Flags().BoolVar(&unpublished, "unpublished", false, "create the category hidden")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newCategoryPublishCommand(rt *runtime, use, short string, published bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <slug>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bm, closeFn, err := rt.manager(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := bm.SetCategoryPublished(cmd.Context(), args[0], published); err != nil {
				return fmt.Errorf("category %q: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "category %q %sed\n", args[0], use)
			return nil
		},
	}
}

