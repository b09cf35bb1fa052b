package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var heliCmd = &cobra.Command{
	Use:   "heli",
	Short: "Fetch helicorder min/max pairs for a channel as CSV",

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

		heli := cli.GetHelicorder(cmd.Context(), scnl, span, true)
		fmt.Print(heli.ToCSV())

		return nil
	},
}

func init() {
	addSpanFlags(heliCmd)
}
