package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "srs",
		Short: "Rewrite and recover envelope sender addresses with SRS",
	}

	configFile string
	secretKey  string
)

func init() {
	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(sourceCmd)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&secretKey, "secret", "", "secret key, overrides the configuration file")
}

func Execute() error {
	return rootCmd.Execute()
}
