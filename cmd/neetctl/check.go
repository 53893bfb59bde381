package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the quiz fixture directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient(cmd)
		missing, err := client.CheckDataDir()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(missing) == 0 {
			fmt.Fprintf(out, "%s: all fixtures present\n", client.DataDir())
			return nil
		}
		fmt.Fprintf(out, "%s: missing fixtures:\n", client.DataDir())
		for _, name := range missing {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
