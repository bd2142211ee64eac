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

// NewNPSCommand creates the nps command group.
func NewNPSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nps",
		Short: "Manage NPS surveys",
		Long:  "Inspect NPS surveys and manage their invitations and recipients",
	}

	cmd.AddCommand(newNPSSurveysCommand())
	cmd.AddCommand(newNPSInvitationsCommand())
	cmd.AddCommand(newNPSRecipientsCommand())

	return cmd
}

func newNPSSurveysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "surveys",
		Aliases: []string{"survey"},
		Short:   "Manage surveys",
	}

	cmd.AddCommand(newSurveysListCommand())
	cmd.AddCommand(newSurveysGetCommand())

	return cmd
}

func newSurveysListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := desk.NewQueryParams().WithPerPage(perPage)

			page, err := client.NPS().ListSurveys(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list surveys: %w", err)
			}

			return outputSurveys(page.Items)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newSurveysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID",
		Short: "Get survey details",
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

			survey, err := client.NPS().GetSurvey(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get survey: %w", err)
			}

			return outputSurveys([]desk.Survey{*survey})
		},
	}
}

func newNPSInvitationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invitations",
		Aliases: []string{"invitation"},
		Short:   "Manage survey invitations",
	}

	cmd.AddCommand(newInvitationsListCommand())
	cmd.AddCommand(newInvitationsGetCommand())
	cmd.AddCommand(newInvitationsCreateCommand())

	return cmd
}

func newInvitationsListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list SURVEY_ID",
		Short: "List invitations of a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := desk.NewQueryParams().WithPerPage(perPage)

			page, err := client.NPS().ListInvitations(context.Background(), surveyID, params)
			if err != nil {
				return fmt.Errorf("failed to list invitations: %w", err)
			}

			return outputInvitations(page.Items)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newInvitationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID INVITATION_ID",
		Short: "Get invitation details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			invitationID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			invitation, err := client.NPS().GetInvitation(context.Background(), surveyID, invitationID)
			if err != nil {
				return fmt.Errorf("failed to get invitation: %w", err)
			}

			return outputInvitations([]desk.Invitation{*invitation})
		},
	}
}

func newInvitationsCreateCommand() *cobra.Command {
	var recipientIDs []int64

	cmd := &cobra.Command{
		Use:   "create SURVEY_ID",
		Short: "Send a survey invitation wave",
		Long:  "Send a survey to the given recipients, or to all eligible recipients when none are given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &desk.InvitationRequest{RecipientIDs: recipientIDs}

			invitation, err := client.NPS().CreateInvitation(context.Background(), surveyID, request)
			if err != nil {
				return fmt.Errorf("failed to create invitation: %w", err)
			}

			return outputInvitations([]desk.Invitation{*invitation})
		},
	}

	cmd.Flags().Int64SliceVar(&recipientIDs, "recipients", nil, "recipient IDs to invite")

	return cmd
}

func newNPSRecipientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipients",
		Aliases: []string{"recipient"},
		Short:   "Manage survey recipients",
	}

	cmd.AddCommand(newRecipientsListCommand())
	cmd.AddCommand(newRecipientsGetCommand())
	cmd.AddCommand(newRecipientsCreateCommand())
	cmd.AddCommand(newRecipientsUpdateCommand())
	cmd.AddCommand(newRecipientsSearchCommand())

	return cmd
}

func newRecipientsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list SURVEY_ID",
		Short: "List recipients of a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := desk.NewQueryParams().WithPerPage(perPage)

			var recipients []desk.Recipient

			if allPages {
				recipients, err = client.NPS().ListAllRecipients(ctx, surveyID, params)
			} else {
				var page *desk.ListResponse[desk.Recipient]

				page, err = client.NPS().ListRecipients(ctx, surveyID, params)
				if page != nil {
					recipients = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list recipients: %w", err)
			}

			return outputRecipients(recipients)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newRecipientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID RECIPIENT_ID",
		Short: "Get recipient details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			recipientID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			recipient, err := client.NPS().GetRecipient(context.Background(), surveyID, recipientID)
			if err != nil {
				return fmt.Errorf("failed to get recipient: %w", err)
			}

			return outputRecipients([]desk.Recipient{*recipient})
		},
	}
}

func newRecipientsCreateCommand() *cobra.Command {
	var (
		name     string
		email    string
		language string
	)

	cmd := &cobra.Command{
		Use:   "create SURVEY_ID",
		Short: "Add a recipient to a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if email == "" {
				return ErrEmailRequired
			}

			request := &desk.RecipientRequest{
				Name:         name,
				EmailAddress: email,
				Language:     language,
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			recipient, err := client.NPS().CreateRecipient(context.Background(), surveyID, request)
			if err != nil {
				return fmt.Errorf("failed to create recipient: %w", err)
			}

			return outputRecipients([]desk.Recipient{*recipient})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipient name")
	cmd.Flags().StringVar(&email, "email", "", "recipient email address")
	cmd.Flags().StringVar(&language, "language", "", "preferred survey language")

	return cmd
}

func newRecipientsUpdateCommand() *cobra.Command {
	var (
		name     string
		email    string
		language string
	)

	cmd := &cobra.Command{
		Use:   "update SURVEY_ID RECIPIENT_ID",
		Short: "Update a recipient",
		Long:  "Update a recipient, changing only the attributes given as flags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			recipientID, err := parseID(args[1])
			if err != nil {
				return err
			}

			request := &desk.RecipientRequest{
				Name:         name,
				EmailAddress: email,
				Language:     language,
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			recipient, err := client.NPS().UpdateRecipient(context.Background(), surveyID, recipientID, request)
			if err != nil {
				return fmt.Errorf("failed to update recipient: %w", err)
			}

			return outputRecipients([]desk.Recipient{*recipient})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipient name")
	cmd.Flags().StringVar(&email, "email", "", "recipient email address")
	cmd.Flags().StringVar(&language, "language", "", "preferred survey language")

	return cmd
}

func newRecipientsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search SURVEY_ID EMAIL",
		Short: "Search recipients by email",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			recipients, err := client.NPS().SearchRecipients(context.Background(), surveyID, args[1])
			if err != nil {
				return fmt.Errorf("failed to search recipients: %w", err)
			}

			return outputRecipients(recipients)
		},
	}
}

func outputSurveys(surveys []desk.Survey) error {
	if len(surveys) == 0 {
		_, _ = os.Stdout.WriteString("No surveys found\n")

		return nil
	}

	return renderObject(surveys, func(table tableRenderer) {
		table.Header("ID", "Title", "Status")

		for _, survey := range surveys {
			_ = table.Append(strconv.FormatInt(survey.ID, 10), survey.Title, survey.Status)
		}
	})
}

func outputInvitations(invitations []desk.Invitation) error {
	if len(invitations) == 0 {
		_, _ = os.Stdout.WriteString("No invitations found\n")

		return nil
	}

	return renderObject(invitations, func(table tableRenderer) {
		table.Header("ID", "Survey", "Status", "Recipients")

		for _, invitation := range invitations {
			_ = table.Append(
				strconv.FormatInt(invitation.ID, 10),
				strconv.FormatInt(invitation.SurveyID, 10),
				invitation.Status,
				strconv.Itoa(invitation.RecipientsCount),
			)
		}
	})
}

func outputRecipients(recipients []desk.Recipient) error {
	if len(recipients) == 0 {
		_, _ = os.Stdout.WriteString("No recipients found\n")

		return nil
	}

	return renderObject(recipients, func(table tableRenderer) {
		table.Header("ID", "Name", "Email", "Unsubscribed")

		for _, recipient := range recipients {
			_ = table.Append(
				strconv.FormatInt(recipient.ID, 10),
				recipient.Name,
				recipient.EmailAddress,
				strconv.FormatBool(recipient.Unsubscribed),
			)
		}
	})
}
