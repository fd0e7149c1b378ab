package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pardna/pkg/pardna"
)

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pardnas",
		Long: `List the pardnas known to the API.

Examples:
  pardna list
  pardna list --endpoint http://localhost:4000/graphql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := loadConfig(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			client := newClient(cfg, cfg.NewLogger(cmd.ErrOrStderr()))

			items, err := client.Pardnas(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				info(out, "No pardnas yet. Run 'pardna create' to make one.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTART\tDURATION\tCONTRIBUTION\tFEE\tPARTICIPANTS")
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d %s\t%s\t%s%%\t%d\n",
					p.ID,
					p.Name,
					p.StartDate.Format("2006-01-02"),
					p.Duration, pardna.DurationUnitLabel(p.PaymentFrequency),
					pardna.FormatMoney(cfg.CurrencySymbol, pardna.FromMinorUnits(p.ContributionAmount)),
					p.BankerFee.String(),
					len(p.Participants),
				)
			}
			return tw.Flush()
		},
	}
}
