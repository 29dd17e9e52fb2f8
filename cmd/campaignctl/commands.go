package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/pkg/latency"
	"github.com/ignite/campaign-chat/internal/service/campaign"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "campaignctl",
		Short:         "Classify messages and generate campaign recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd(), newGenerateCmd(), newSourcesCmd())
	return root
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [message]",
		Short: "Print the intent a message classifies as",
		Long: `Runs the keyword classifier on a message and prints the intent.

Example:
  campaignctl classify "recover abandoned carts"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), campaign.Classify(strings.Join(args, " ")))
			return nil
		},
	}
}

type generateOptions struct {
	sources []string
	seed    uint64
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [message]",
		Short: "Generate a campaign the way the chat endpoint does",
		Long: `Generates a campaign for a message and prints the reply text followed
by the JSON payload. Simulated latency is skipped.

Examples:
  campaignctl generate --source shopify "recover abandoned carts"
  campaignctl generate --source google_ads --source facebook_page --seed 7 "retarget visitors"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringSliceVarP(&opts.sources, "source", "s", nil, "connected data source id (repeatable)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed; 0 seeds from the clock")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, message string) error {
	ids := make([]domain.SourceID, 0, len(opts.sources))
	for _, raw := range opts.sources {
		id := domain.SourceID(strings.TrimSpace(raw))
		if !id.Valid() {
			return fmt.Errorf("unknown data source %q", raw)
		}
		ids = append(ids, id)
	}

	rng := campaign.NewRand(opts.seed)
	svc := campaign.NewService(campaign.NewGenerator(rng), campaign.NewRenderer(), latency.NoDelay{}, rng, campaign.LatencyConfig{})

	rec, err := svc.Recommend(context.Background(), message, domain.NewSourceSet(ids...))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rec.Response)
	for _, card := range rec.Campaigns {
		payload, err := json.MarshalIndent(card.JSONPayload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode campaign: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, string(payload))
	}
	return nil
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the data source catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, id := range domain.SourceIDs() {
				fmt.Fprintf(tw, "%s\t%s\n", id, id.DisplayName())
			}
			return tw.Flush()
		},
	}
}
