package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zostay/go-addr/pkg/addr"
)

var (
	forwardCmd = &cobra.Command{
		Use:   "forward address forwarder",
		Short: "Rewrite a sender address on behalf of a forwarder domain",
		Args:  cobra.ExactArgs(2),
		RunE:  RunForward,
	}

	shortcut bool
	strict   bool
)

func init() {
	forwardCmd.Flags().BoolVar(&shortcut, "shortcut", false, "force the shortcut scheme, always producing a fresh SRS0")
	forwardCmd.Flags().BoolVar(&strict, "strict", false, "validate the input against RFC addr-spec grammar first")
}

func RunForward(cmd *cobra.Command, args []string) error {
	sender, forwarder := args[0], args[1]

	if strict {
		if _, err := addr.ParseEmailAddrSpec(sender); err != nil {
			return fmt.Errorf("address %q is not a valid addr-spec: %w", sender, err)
		}
	}

	engine, err := makeEngine()
	if err != nil {
		return err
	}

	rewrite := engine.Forward
	if shortcut {
		rewrite = engine.ForwardShortcut
	}

	rewritten, err := rewrite(sender, forwarder)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rewritten)
	return nil
}
