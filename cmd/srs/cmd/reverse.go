package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse address",
	Short: "Recover the address one forward hop back",
	Args:  cobra.ExactArgs(1),
	RunE:  RunReverse,
}

func RunReverse(cmd *cobra.Command, args []string) error {
	engine, err := makeEngine()
	if err != nil {
		return err
	}

	recovered, err := engine.Reverse(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), recovered)
	return nil
}
