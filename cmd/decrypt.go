package cmd

import (
	"context"
	"errors"
	"fmt"

	alperrors "github.com/alplock/alplock/internal/errors"
	"github.com/alplock/alplock/internal/ui"
	"github.com/alplock/alplock/internal/utils"
	"github.com/alplock/alplock/internal/workflows"
	"github.com/spf13/cobra"
)

var decryptKey string

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "credential in the form <hex key>#<hex nonce>")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptKey = ""
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Decrypt a file using its credential",
	Long: `Decrypts a file that alplock encrypted, restoring its original name and
contents. The credential is the key and nonce pair printed at encryption
time, in the form <hex key>#<hex nonce>.

Without --key the credential is read from stdin: a masked prompt on a
terminal, or the piped input otherwise, so it never lands in shell history.

Examples:
  alplock decrypt notes.txt.alp                # prompts for the credential
  alplock decrypt notes.txt.alp -k "3f2a...#9b01..."
  pass show backups/db | alplock decrypt backups/db.sqlite.alp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		path := args[0]
		credential := decryptKey

		// Gather the credential before the spinner starts so the prompt
		// is not fighting the animation for the terminal.
		if credential == "" {
			var err error
			credential, err = readCredential()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read credential: %v", err)
			}
		}
		if credential == "" {
			fmt.Print(ui.EnsureNewline(formatDecryptError(path, alperrors.ErrMissingCredential)))
			return alperrors.ErrMissingCredential
		}

		spinner, cleanup := startSpinner("Decrypting file...", verbose)
		defer cleanup()

		Logger.Debugf("Decrypting target: %s", path)
		result, err := workflows.Decrypt(context.Background(), workflows.DecryptOptions{
			Path:       path,
			Credential: credential,
		})
		if err != nil {
			Logger.Errorf("Failed to decrypt %s: %v", path, err)
			spinner.FinalMSG = formatDecryptError(path, err)
			return err
		}

		Logger.Infof("Decrypted %s to %s", path, result.WrittenPath)
		finalMessage := ui.Success.Sprint("✓") + " Decrypted " + ui.Path.Sprint(path)
		if result.WrittenPath != path {
			finalMessage += " to " + ui.Path.Sprint(result.WrittenPath)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// readCredential obtains the credential from stdin: masked when attached to
// a terminal, otherwise consumed from the pipe.
func readCredential() (string, error) {
	if utils.IsTerminal() {
		return utils.ReadCredentialSecurely("Credential: ")
	}
	Logger.Debugf("Stdin is not a terminal, reading piped credential")
	return utils.ReadFromStdin()
}

// formatDecryptError formats a decrypt error for display to the user.
func formatDecryptError(path string, err error) string {
	switch {
	case errors.Is(err, alperrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " File not found: " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Check the path and try again"

	case errors.Is(err, alperrors.ErrMissingCredential):
		return ui.Error.Sprint("✗") + " No credential supplied\n" +
			ui.Info.Sprint("→") + " Pass one with " + ui.Flag.Sprint("--key") + " or pipe it to stdin"

	case errors.Is(err, alperrors.ErrMalformedCredential):
		return ui.Error.Sprint("✗") + " That credential cannot be decoded\n" +
			ui.Info.Sprint("→") + " Expected " + ui.Code.Sprint("<hex key>#<hex nonce>") + ", exactly as printed at encryption time"

	case errors.Is(err, alperrors.ErrAuthenticationFailed):
		return ui.Error.Sprint("✗") + " Credential does not match " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Wrong key or nonce, or the file was modified. The file is unchanged"

	case errors.Is(err, alperrors.ErrCorruptPayload):
		return ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " does not look like an alplock file\n" +
			ui.Info.Sprint("→") + " The payload is truncated or was not produced by " + ui.Code.Sprint("alplock encrypt")

	default:
		return ui.Error.Sprint("✗") + " Failed to decrypt " + ui.Path.Sprint(path) + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
