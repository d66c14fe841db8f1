package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// NewContentCommand creates the content command group.
func NewContentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage CMS content",
		Long:  "Read, create, and update content items on the CMS host",
	}

	cmd.AddCommand(newContentGetCommand())
	cmd.AddCommand(newContentListCommand())
	cmd.AddCommand(newContentCreateCommand())
	cmd.AddCommand(newContentUpdateCommand())

	return cmd
}

func newContentGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a content item",
		Long:  "Fetch a single content item by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", constants.ErrContentIDRequired, args[0])
			}

			format, err := resolveResponseFormat()
			if err != nil {
				return err
			}

			client, err := CreateContext(false)
			if err != nil {
				return err
			}

			var item cms.ContentItem

			err = client.GetResponse(context.Background(), cms.NewContentGetQuery(contentID, format), &item)
			if err != nil {
				return fmt.Errorf("failed to fetch content: %w", err)
			}

			err = checkEnvelope(&item.Envelope)
			if err != nil {
				return err
			}

			return renderContentItem(&item)
		},
	}
}

func newContentListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List content items",
		Long:  "Fetch all content items on the host",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveResponseFormat()
			if err != nil {
				return err
			}

			client, err := CreateContext(false)
			if err != nil {
				return err
			}

			var list cms.ContentList

			err = client.GetResponse(context.Background(), cms.NewContentListQuery(format), &list)
			if err != nil {
				return fmt.Errorf("failed to list content: %w", err)
			}

			err = checkEnvelope(&list.Envelope)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(list.Items)
			case OutputFormatYAML:
				return outputYAML(list.Items)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Author", "Published", "Updated")

				for _, item := range list.Items {
					published := constants.BooleanFalse
					if item.Published {
						published = constants.BooleanTrue
					}

					_ = table.Append(strconv.Itoa(item.ID), item.Title, item.Author, published, item.UpdatedAt)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newContentCreateCommand() *cobra.Command {
	var fieldAssignments []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a content item",
		Long:  "Create a content item from --field name=value assignments (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fieldAssignments) == 0 {
				return constants.ErrContentFieldsRequired
			}

			fields, err := parseFields(fieldAssignments)
			if err != nil {
				return err
			}

			format, err := resolveResponseFormat()
			if err != nil {
				return err
			}

			client, err := CreateContext(true)
			if err != nil {
				return err
			}

			var item cms.ContentItem

			err = client.GetResponse(context.Background(), cms.NewContentCreateQuery(fields, format), &item)
			if err != nil {
				return fmt.Errorf("failed to create content: %w", err)
			}

			err = checkEnvelope(&item.Envelope)
			if err != nil {
				return err
			}

			fmt.Printf("Created content %d\n", item.ID)

			return renderContentItem(&item)
		},
	}

	cmd.Flags().StringArrayVarP(&fieldAssignments, "field", "f", nil, "content field as name=value (repeatable)")

	return cmd
}

func newContentUpdateCommand() *cobra.Command {
	var fieldAssignments []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a content item",
		Long:  "Update a content item from --field name=value assignments (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", constants.ErrContentIDRequired, args[0])
			}

			if len(fieldAssignments) == 0 {
				return constants.ErrContentFieldsRequired
			}

			fields, err := parseFields(fieldAssignments)
			if err != nil {
				return err
			}

			format, err := resolveResponseFormat()
			if err != nil {
				return err
			}

			client, err := CreateContext(true)
			if err != nil {
				return err
			}

			var item cms.ContentItem

			err = client.GetResponse(context.Background(), cms.NewContentUpdateQuery(contentID, fields, format), &item)
			if err != nil {
				return fmt.Errorf("failed to update content: %w", err)
			}

			err = checkEnvelope(&item.Envelope)
			if err != nil {
				return err
			}

			fmt.Printf("Updated content %d\n", contentID)

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldAssignments, "field", "f", nil, "content field as name=value (repeatable)")

	return cmd
}

func renderContentItem(item *cms.ContentItem) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(item)
	case OutputFormatYAML:
		return outputYAML(item)
	default:
		published := constants.BooleanFalse
		if item.Published {
			published = constants.BooleanTrue
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")
		_ = table.Append("ID", strconv.Itoa(item.ID))
		_ = table.Append("Title", item.Title)
		_ = table.Append("Body", item.Body)
		_ = table.Append("Author", item.Author)
		_ = table.Append("Published", published)
		_ = table.Append("Updated", item.UpdatedAt)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
