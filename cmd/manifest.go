package cmd

import (
	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Run and build batch manifests",
	Long: `Manifests describe whole batches of encrypt and decrypt operations in a
YAML file, so the same set of files can be locked or restored in one
command. Entries may anchor their paths to portable roots (HOME, CONFIG,
CACHE, TEMP) that resolve per machine.`,
}

func init() {
	manifestCmd.AddCommand(manifestRunCmd)
	manifestCmd.AddCommand(manifestInitCmd)
}
