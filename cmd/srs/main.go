package main

import (
	"github.com/spf13/cobra"

	"github.com/relaykit/srs/cmd/srs/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
