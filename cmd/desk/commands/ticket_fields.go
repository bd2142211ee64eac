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

// NewTicketFieldsCommand creates the ticket-fields command group.
func NewTicketFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ticket-fields",
		Aliases: []string{"ticket-field", "fields"},
		Short:   "Manage ticket fields",
		Long:    "Create, list, update, and delete ticket field definitions",
	}

	cmd.AddCommand(newTicketFieldsListCommand())
	cmd.AddCommand(newTicketFieldsGetCommand())
	cmd.AddCommand(newTicketFieldsCreateCommand())
	cmd.AddCommand(newTicketFieldsUpdateCommand())
	cmd.AddCommand(newTicketFieldsDeleteCommand())
	cmd.AddCommand(newTicketFieldOptionsCommand())

	return cmd
}

func newTicketFieldsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ticket fields",
		Long:  "List ticket field definitions in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := desk.NewQueryParams().WithPerPage(perPage)

			var fields []desk.TicketField

			if allPages {
				fields, err = client.TicketFields().ListAll(ctx, params)
			} else {
				var page *desk.ListResponse[desk.TicketField]

				page, err = client.TicketFields().List(ctx, params)
				if page != nil {
					fields = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list ticket fields: %w", err)
			}

			return outputTicketFields(fields)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newTicketFieldsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FIELD_ID",
		Short: "Get ticket field details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			field, err := client.TicketFields().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get ticket field: %w", err)
			}

			return outputTicketField(field)
		},
	}
}

func newTicketFieldsCreateCommand() *cobra.Command {
	var (
		fieldType   string
		title       string
		description string
		position    int
		active      bool
		required    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket field",
		Long:  "Create a new ticket field with the given type and title",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldType == "" || title == "" {
				return ErrFieldTypeAndTitleRequired
			}

			request := &desk.TicketFieldRequest{
				Type:  fieldType,
				Title: title,
			}
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("position") {
				request.Position = &position
			}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			if cmd.Flags().Changed("required") {
				request.Required = &required
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			field, err := client.TicketFields().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create ticket field: %w", err)
			}

			return outputTicketField(field)
		},
	}

	cmd.Flags().StringVar(&fieldType, "type", "", "field type (text, textarea, tagger, ...)")
	cmd.Flags().StringVar(&title, "title", "", "field title shown to agents")
	cmd.Flags().StringVar(&description, "description", "", "field help text")
	cmd.Flags().IntVar(&position, "position", 0, "display position")
	cmd.Flags().BoolVar(&active, "active", true, "whether the field is active")
	cmd.Flags().BoolVar(&required, "required", false, "whether the field is mandatory")

	return cmd
}

func newTicketFieldsUpdateCommand() *cobra.Command {
	var (
		title       string
		description string
		position    int
		active      bool
		required    bool
	)

	cmd := &cobra.Command{
		Use:   "update FIELD_ID",
		Short: "Update a ticket field",
		Long:  "Update a ticket field, changing only the attributes given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &desk.TicketFieldRequest{}
			if cmd.Flags().Changed("title") {
				request.Title = title
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("position") {
				request.Position = &position
			}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			if cmd.Flags().Changed("required") {
				request.Required = &required
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			field, err := client.TicketFields().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update ticket field: %w", err)
			}

			return outputTicketField(field)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "field title shown to agents")
	cmd.Flags().StringVar(&description, "description", "", "field help text")
	cmd.Flags().IntVar(&position, "position", 0, "display position")
	cmd.Flags().BoolVar(&active, "active", true, "whether the field is active")
	cmd.Flags().BoolVar(&required, "required", false, "whether the field is mandatory")

	return cmd
}

func newTicketFieldsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FIELD_ID",
		Short: "Delete a ticket field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.TicketFields().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete ticket field: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted ticket field %d\n", id)

			return nil
		},
	}
}

func newTicketFieldOptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Manage dropdown field options",
		Long:  "List, upsert, and delete the options of a dropdown ticket field",
	}

	cmd.AddCommand(newFieldOptionsListCommand())
	cmd.AddCommand(newFieldOptionsGetCommand())
	cmd.AddCommand(newFieldOptionsUpsertCommand())
	cmd.AddCommand(newFieldOptionsDeleteCommand())

	return cmd
}

func newFieldOptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list FIELD_ID",
		Short: "List field options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			options, err := client.TicketFields().ListOptions(context.Background(), fieldID)
			if err != nil {
				return fmt.Errorf("failed to list field options: %w", err)
			}

			return outputFieldOptions(options)
		},
	}
}

func newFieldOptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FIELD_ID OPTION_ID",
		Short: "Get field option details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldID, err := parseID(args[0])
			if err != nil {
				return err
			}

			optionID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			option, err := client.TicketFields().GetOption(context.Background(), fieldID, optionID)
			if err != nil {
				return fmt.Errorf("failed to get field option: %w", err)
			}

			return outputFieldOptions([]desk.FieldOption{*option})
		},
	}
}

func newFieldOptionsUpsertCommand() *cobra.Command {
	var (
		optionID  int64
		name      string
		value     string
		position  int
		isDefault bool
	)

	cmd := &cobra.Command{
		Use:   "upsert FIELD_ID",
		Short: "Create or update a field option",
		Long:  "Create a field option, or update an existing one when --id is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				return ErrNameRequired
			}

			option := &desk.FieldOption{
				Name:     name,
				Value:    value,
				Position: position,
				Default:  isDefault,
			}
			if cmd.Flags().Changed("id") {
				option.ID = &optionID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.TicketFields().UpsertOption(context.Background(), fieldID, option)
			if err != nil {
				return fmt.Errorf("failed to upsert field option: %w", err)
			}

			return outputFieldOptions([]desk.FieldOption{*result})
		},
	}

	cmd.Flags().Int64Var(&optionID, "id", 0, "existing option ID to update")
	cmd.Flags().StringVar(&name, "name", "", "option display name")
	cmd.Flags().StringVar(&value, "value", "", "tag value applied when selected")
	cmd.Flags().IntVar(&position, "position", 0, "display position")
	cmd.Flags().BoolVar(&isDefault, "default", false, "whether this option is preselected")

	return cmd
}

func newFieldOptionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FIELD_ID OPTION_ID",
		Short: "Delete a field option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldID, err := parseID(args[0])
			if err != nil {
				return err
			}

			optionID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.TicketFields().DeleteOption(context.Background(), fieldID, optionID)
			if err != nil {
				return fmt.Errorf("failed to delete field option: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted option %d from field %d\n", optionID, fieldID)

			return nil
		},
	}
}

func outputTicketFields(fields []desk.TicketField) error {
	if len(fields) == 0 {
		_, _ = os.Stdout.WriteString("No ticket fields found\n")

		return nil
	}

	return renderObject(fields, func(table tableRenderer) {
		table.Header("ID", "Type", "Title", "Active", "Required", "Position")

		for _, field := range fields {
			_ = table.Append(
				strconv.FormatInt(field.ID, 10),
				field.Type,
				field.Title,
				strconv.FormatBool(field.Active),
				strconv.FormatBool(field.Required),
				strconv.Itoa(field.Position),
			)
		}
	})
}

func outputTicketField(field *desk.TicketField) error {
	return renderObject(field, func(table tableRenderer) {
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(field.ID, 10))
		_ = table.Append("Type", field.Type)
		_ = table.Append("Title", field.Title)
		_ = table.Append("Description", field.Description)
		_ = table.Append("Position", strconv.Itoa(field.Position))
		_ = table.Append("Active", strconv.FormatBool(field.Active))
		_ = table.Append("Required", strconv.FormatBool(field.Required))
		_ = table.Append("Validation Regexp", formatStringPtr(field.RegexpForValidation))
		_ = table.Append("Tag", formatStringPtr(field.Tag))
		_ = table.Append("Removable", strconv.FormatBool(field.Removable))
	})
}

func outputFieldOptions(options []desk.FieldOption) error {
	if len(options) == 0 {
		_, _ = os.Stdout.WriteString("No options found\n")

		return nil
	}

	return renderObject(options, func(table tableRenderer) {
		table.Header("ID", "Name", "Value", "Position", "Default")

		for _, option := range options {
			id := NotAvailable
			if option.ID != nil {
				id = strconv.FormatInt(*option.ID, 10)
			}

			_ = table.Append(
				id,
				option.Name,
				option.Value,
				strconv.Itoa(option.Position),
				strconv.FormatBool(option.Default),
			)
		}
	})
}
