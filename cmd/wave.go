package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volcanolab/wws/data"
)

var sacOut string

var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Fetch raw waveform samples for a channel",
	Long: `Fetch raw waveform samples for a channel

By default samples are dumped one per line to stdout. With --sac the
wave is written to a SAC binary file instead.

Usage
	wws -s winston.example.org wave --scnl AUGL.EHZ.AV --start -10m
	wws -s winston.example.org wave --scnl AUGL.EHZ.AV --start -10m --sac augl.sac

`,

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

		wave := cli.GetWave(cmd.Context(), scnl, span, true)
		if wave.IsEmpty() {
			fmt.Println("No data received.")
			return nil
		}

		if sacOut != "" {
			if err := data.WriteSac(sacOut, scnl, wave); err != nil {
				return err
			}
			fmt.Println("Wrote", len(wave.Samples), "samples to", sacOut)
			return nil
		}

		fmt.Print(wave.ToText())

		return nil
	},
}

func init() {
	addSpanFlags(waveCmd)
	waveCmd.Flags().StringVar(&sacOut, "sac", "", "Write the wave to this SAC file instead of stdout")
}
