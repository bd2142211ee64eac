package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// NewTicketsCommand creates the tickets command group.
func NewTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Manage tickets",
		Long:    "Create, list, update, and delete support tickets",
	}

	cmd.AddCommand(newTicketsListCommand())
	cmd.AddCommand(newTicketsGetCommand())
	cmd.AddCommand(newTicketsCreateCommand())
	cmd.AddCommand(newTicketsUpdateCommand())
	cmd.AddCommand(newTicketsDeleteCommand())

	return cmd
}

func newTicketsListCommand() *cobra.Command {
	var (
		allPages  bool
		perPage   int
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := desk.NewQueryParams().WithPerPage(perPage)
			if sortBy != "" {
				params = params.WithSort(sortBy, sortOrder)
			}

			var tickets []desk.Ticket

			if allPages {
				tickets, err = client.Tickets().ListAll(ctx, params)
			} else {
				var page *desk.ListResponse[desk.Ticket]

				page, err = client.Tickets().List(ctx, params)
				if page != nil {
					tickets = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list tickets: %w", err)
			}

			return outputTickets(tickets)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort field (id, status, priority, ...)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "asc", "sort order (asc or desc)")

	return cmd
}

func newTicketsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TICKET_ID",
		Short: "Get ticket details",
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

			ticket, err := client.Tickets().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get ticket: %w", err)
			}

			return outputTicket(ticket)
		},
	}
}

func newTicketsCreateCommand() *cobra.Command {
	var (
		subject  string
		comment  string
		priority string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		Long:  "Create a new ticket with the given subject and first comment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				return ErrSubjectRequired
			}

			request := &desk.TicketRequest{
				Subject:  subject,
				Priority: priority,
				Tags:     tags,
			}
			if comment != "" {
				request.Comment = &desk.TicketComment{Body: comment}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ticket, err := client.Tickets().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create ticket: %w", err)
			}

			return outputTicket(ticket)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "ticket subject")
	cmd.Flags().StringVar(&comment, "comment", "", "first comment body")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, normal, high, urgent)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags to apply")

	return cmd
}

func newTicketsUpdateCommand() *cobra.Command {
	var (
		subject  string
		comment  string
		status   string
		priority string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "update TICKET_ID",
		Short: "Update a ticket",
		Long:  "Update a ticket, changing only the attributes given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &desk.TicketRequest{
				Subject:  subject,
				Status:   status,
				Priority: priority,
			}
			if comment != "" {
				request.Comment = &desk.TicketComment{Body: comment}
			}

			if cmd.Flags().Changed("tags") {
				request.Tags = tags
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ticket, err := client.Tickets().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update ticket: %w", err)
			}

			return outputTicket(ticket)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "ticket subject")
	cmd.Flags().StringVar(&comment, "comment", "", "comment to add")
	cmd.Flags().StringVar(&status, "status", "", "status (open, pending, solved, ...)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, normal, high, urgent)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "replacement tag list")

	return cmd
}

func newTicketsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TICKET_ID",
		Short: "Delete a ticket",
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

			err = client.Tickets().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete ticket: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted ticket %d\n", id)

			return nil
		},
	}
}

func outputTickets(tickets []desk.Ticket) error {
	if len(tickets) == 0 {
		_, _ = os.Stdout.WriteString("No tickets found\n")

		return nil
	}

	return renderObject(tickets, func(table tableRenderer) {
		table.Header("ID", "Subject", "Status", "Priority", "Tags")

		for _, ticket := range tickets {
			_ = table.Append(
				strconv.FormatInt(ticket.ID, 10),
				ticket.Subject,
				ticket.Status,
				ticket.Priority,
				strings.Join(ticket.Tags, ", "),
			)
		}
	})
}

func outputTicket(ticket *desk.Ticket) error {
	return renderObject(ticket, func(table tableRenderer) {
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(ticket.ID, 10))
		_ = table.Append("Subject", ticket.Subject)
		_ = table.Append("Status", ticket.Status)
		_ = table.Append("Priority", ticket.Priority)
		_ = table.Append("Requester", strconv.FormatInt(ticket.RequesterID, 10))
		_ = table.Append("Assignee", strconv.FormatInt(ticket.AssigneeID, 10))
		_ = table.Append("Tags", strings.Join(ticket.Tags, ", "))

		if ticket.Description != "" {
			_ = table.Append("Description", ticket.Description)
		}
	})
}
