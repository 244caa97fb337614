package cmd

import (
	"context"
	"errors"

	alperrors "github.com/alplock/alplock/internal/errors"
	"github.com/alplock/alplock/internal/ui"
	"github.com/alplock/alplock/internal/workflows"
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file>",
	Short: "Encrypt a file in place and print its credential",
	Long: `Encrypts a single file with a freshly generated key and nonce, compresses
the sealed payload, and renames the file with the encrypted extension.

The credential printed on success is the only way to recover the file. It
is never written to disk, so copy it somewhere safe before closing the
terminal.

Examples:
  alplock encrypt notes.txt        # notes.txt becomes notes.txt.alp
  alplock encrypt backups/db.sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting file...", verbose)
		defer cleanup()

		path := args[0]
		Logger.Debugf("Encrypting target: %s", path)

		result, err := workflows.Encrypt(context.Background(), workflows.EncryptOptions{Path: path})
		if err != nil {
			Logger.Errorf("Failed to encrypt %s: %v", path, err)
			spinner.FinalMSG = formatEncryptError(path, err)
			return err
		}

		Logger.Infof("Encrypted %s to %s", path, result.WrittenPath)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint(path) +
			" to " + ui.Path.Sprint(result.WrittenPath) + "\n" +
			"Credential: " + ui.Credential.Sprint(result.Credential) + "\n" +
			ui.Info.Sprint("→") + " Keep this credential safe. Without it the file cannot be recovered"
		return nil
	},
}

// formatEncryptError formats an encrypt error for display to the user.
func formatEncryptError(path string, err error) string {
	switch {
	case errors.Is(err, alperrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " File not found: " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Check the path and try again"

	default:
		return ui.Error.Sprint("✗") + " Failed to encrypt " + ui.Path.Sprint(path) + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
