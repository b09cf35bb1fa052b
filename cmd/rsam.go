package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rsamPeriod int

var rsamCmd = &cobra.Command{
	Use:   "rsam",
	Short: "Fetch an RSAM envelope for a channel as CSV",

	RunE: func(cmd *cobra.Command, args []string) error {
		scnl, span, err := parseSpanFlags()
		if err != nil {
			return err
		}

		cli, log, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		rsam := cli.GetRsam(cmd.Context(), scnl, span, rsamPeriod, true)
		fmt.Print(rsam.ToCSV())

		return nil
	},
}

func init() {
	addSpanFlags(rsamCmd)
	rsamCmd.Flags().IntVar(&rsamPeriod, "period", 60, "RSAM period in seconds")
}
