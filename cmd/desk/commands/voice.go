package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helpwire-io/deskapi/pkg/desk"
)

// NewVoiceCommand creates the voice command group.
func NewVoiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Inspect voice queue statistics",
		Long:  "Display historical, current, and per-agent voice queue statistics",
	}

	cmd.AddCommand(newVoiceQueueCommand())
	cmd.AddCommand(newVoiceCurrentCommand())
	cmd.AddCommand(newVoiceAgentsCommand())

	return cmd
}

func newVoiceQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show historical queue statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			activity, err := client.Voice().HistoricalQueueActivity(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get queue activity: %w", err)
			}

			return renderObject(activity, func(table tableRenderer) {
				table.Header("Metric", "Value")

				_ = table.Append("Average Wait Time", strconv.Itoa(activity.AverageWaitTime))
				_ = table.Append("Longest Wait Time", strconv.Itoa(activity.LongestWaitTime))
				_ = table.Append("Average Abandonment Time", strconv.Itoa(activity.AverageAbandonmentTime))
				_ = table.Append("Total Calls", strconv.Itoa(activity.TotalCalls))
				_ = table.Append("Abandoned Calls", strconv.Itoa(activity.AbandonedCalls))
				_ = table.Append("Callback Calls", strconv.Itoa(activity.CallbackCalls))
				_ = table.Append("Voicemail Calls", strconv.Itoa(activity.VoicemailCalls))
			})
		},
	}
}

func newVoiceCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show live queue statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			activity, err := client.Voice().CurrentQueueActivity(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get current queue activity: %w", err)
			}

			return renderObject(activity, func(table tableRenderer) {
				table.Header("Metric", "Value")

				_ = table.Append("Agents Online", strconv.Itoa(activity.AgentsOnline))
				_ = table.Append("Calls Waiting", strconv.Itoa(activity.CallsWaiting))
				_ = table.Append("Callbacks Waiting", strconv.Itoa(activity.CallbacksWaiting))
				_ = table.Append("Average Wait Time", strconv.Itoa(activity.AverageWaitTime))
				_ = table.Append("Longest Wait Time", strconv.Itoa(activity.LongestWaitTime))
			})
		},
	}
}

func newVoiceAgentsCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Show per-agent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var agents []desk.AgentActivity

			if allPages {
				agents, err = client.Voice().AllAgentsActivity(ctx, nil)
			} else {
				var page *desk.ListResponse[desk.AgentActivity]

				page, err = client.Voice().AgentsActivity(ctx, nil)
				if page != nil {
					agents = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to get agent activity: %w", err)
			}

			return outputAgentActivity(agents)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func outputAgentActivity(agents []desk.AgentActivity) error {
	if len(agents) == 0 {
		_, _ = os.Stdout.WriteString("No agent activity found\n")

		return nil
	}

	return renderObject(agents, func(table tableRenderer) {
		table.Header("Agent", "Name", "Status", "Accepted", "Missed", "Avg Talk Time")

		for _, agent := range agents {
			_ = table.Append(
				strconv.FormatInt(agent.AgentID, 10),
				agent.Name,
				agent.AvailabilityStatus,
				strconv.Itoa(agent.CallsAccepted),
				strconv.Itoa(agent.CallsMissed),
				strconv.Itoa(agent.AverageTalkTime),
			)
		}
	})
}
