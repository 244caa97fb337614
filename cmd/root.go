package cmd

import (
	logger "github.com/alplock/alplock/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "alplock",
		Short: "Alplock - authenticated file encryption with manifest-driven batches.",
		Long: `Alplock encrypts single files in place with authenticated encryption and
runs whole batches of encrypt and decrypt operations described in a YAML
manifest.

Features:
  - Encrypt any file; the credential is printed once and never stored
  - Decrypt with the credential, restoring the original file name
  - Run manifests concurrently, each entry isolated from its siblings
  - Describe paths relative to portable roots (HOME, CONFIG, CACHE, TEMP)
  - Review the operation history kept on this machine

Run 'alplock help <command>' for more details on a specific command.
`,
		// Commands print their own failure messages; Execute's error only
		// drives the exit code.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Welcome to Alplock! Run 'alplock --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(manifestCmd)
	RootCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetDecryptCommandState()
	resetManifestRunCommandState()
	resetLogCommandState()
	resetFlagState(RootCmd)
}

// resetFlagState clears cobra's flag-was-changed tracking on the command
// and everything beneath it, so sequential test executions start clean.
func resetFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
