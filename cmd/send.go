package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <command>",
	Short: "Send a raw protocol command and stream the response to stdout",
	Long: `Send a raw protocol command and stream the response to stdout

The trailing LF is added for you. The response is copied verbatim until
the server hangs up or the idle timeout fires.

Usage
	wws -s winston.example.org send "STATUS: GC"

`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cli, log, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cli.SendRaw(cmd.Context(), args[0], os.Stdout)

		return nil
	},
}
