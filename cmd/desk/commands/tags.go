package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List and inspect the most used ticket tags on the account",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCountCommand())
	cmd.AddCommand(newTagsAutocompleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List the most used tags with their usage counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := desk.NewQueryParams().WithPerPage(perPage)

			var tags []desk.Tag

			if allPages {
				tags, err = client.Tags().ListAll(ctx, params)
			} else {
				var page *desk.ListResponse[desk.Tag]

				page, err = client.Tags().List(ctx, params)
				if page != nil {
					tags = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return outputTags(tags)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newTagsCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count tags",
		Long:  "Display the approximate number of distinct tags on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			count, err := client.Tags().Count(context.Background())
			if err != nil {
				return fmt.Errorf("failed to count tags: %w", err)
			}

			fmt.Fprintln(os.Stdout, count)

			return nil
		},
	}
}

func newTagsAutocompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete PREFIX",
		Short: "Autocomplete tags",
		Long:  "List tags beginning with the given prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().Autocomplete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to autocomplete tags: %w", err)
			}

			return outputTags(tags)
		},
	}
}

func outputTags(tags []desk.Tag) error {
	if len(tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	return renderObject(tags, func(table tableRenderer) {
		table.Header("Name", "Count")

		for _, tag := range tags {
			_ = table.Append(tag.Name, strconv.Itoa(tag.Count))
		}
	})
}
