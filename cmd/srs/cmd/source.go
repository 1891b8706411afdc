package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaykit/srs"
)

var sourceCmd = &cobra.Command{
	Use:   "source address",
	Short: "Show the original sender inside an SRS address, without verification",
	Args:  cobra.ExactArgs(1),
	RunE:  RunSource,
}

func RunSource(cmd *cobra.Command, args []string) error {
	src, err := srs.AsSourceAddress(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), src)
	return nil
}
