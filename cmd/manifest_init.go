package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alplock/alplock/internal/crypt"
	"github.com/alplock/alplock/internal/manifest"
	"github.com/alplock/alplock/internal/ui"
	"github.com/alplock/alplock/internal/utils"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// defaultManifestName is offered when the wizard's file prompt is left empty.
const defaultManifestName = "manifest.yaml"

var manifestInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively append an entry to a manifest",
	Long: `Walks through the questions needed to build one manifest entry and
appends it to a manifest file, creating the file if it does not exist.
Run it once per entry to grow a manifest.

Decrypt entries ask for the file's credential, which is checked for shape
before anything is written. The credential is stored in the manifest, so
treat manifests with decrypt entries as sensitive files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting manifest init wizard")

		myFigure := figure.NewColorFigure("alplock", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()

		reader := bufio.NewReader(cmd.InOrStdin())

		manifestPath, err := utils.PromptForInput(reader, "Manifest file ["+defaultManifestName+"]: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read manifest name: %v", err)
		}
		if manifestPath == "" {
			manifestPath = defaultManifestName
		}

		actionIndex, err := promptForChoice(reader, "Select action", []string{"Encrypt", "Decrypt"})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read action: %v", err)
		}
		action := manifest.ActionEncrypt
		if actionIndex == 1 {
			action = manifest.ActionDecrypt
		}

		rootIndex, err := promptForChoice(reader, "Select root directory", []string{
			"None (use the path exactly as typed)",
			"Home",
			"Config (Roaming AppData on Windows)",
			"Cache (Local AppData on Windows)",
			"Temp",
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read root: %v", err)
		}
		rootToken := [...]string{"", "HOME", "CONFIG", "CACHE", "TEMP"}[rootIndex]

		pathPrompt := "Full path of the file: "
		if rootToken != "" {
			pathPrompt = "File path after the root directory (e.g. videos/film.mp4): "
		}
		path, err := utils.PromptForInput(reader, pathPrompt)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read file path: %v", err)
		}
		if path == "" {
			fmt.Print(ui.EnsureNewline(ui.Error.Sprint("✗") + " A file path is required"))
			return fmt.Errorf("no file path supplied")
		}

		entry := manifest.Entry{
			Action:   action,
			Root:     rootToken,
			Filepath: path,
		}

		if action == manifest.ActionDecrypt {
			credential, err := readWizardCredential(reader)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read credential: %v", err)
			}
			// Validate the shape now. A typo caught here costs a retry; one
			// caught at run time costs a skipped entry on some later machine.
			if _, _, err := crypt.DecodeCredential(credential); err != nil {
				fmt.Print(ui.EnsureNewline(
					ui.Error.Sprint("✗") + " That credential cannot be decoded\n" +
						ui.Info.Sprint("→") + " Expected " + ui.Code.Sprint("<hex key>#<hex nonce>") + ", exactly as printed at encryption time"))
				return err
			}
			entry.Key = credential
		}

		if err := manifest.AppendEntry(manifestPath, entry); err != nil {
			Logger.Errorf("Failed to append entry to %s: %v", manifestPath, err)
			fmt.Print(ui.EnsureNewline(
				ui.Error.Sprint("✗") + " Failed to write " + ui.Path.Sprint(manifestPath) + "\n" +
					ui.Error.Sprint("Error: ") + err.Error()))
			return err
		}

		Logger.Infof("Appended %s entry for %s to %s", action, path, manifestPath)
		fmt.Println(ui.Success.Sprint("✓") + " Added " + ui.Highlight.Sprint(strings.ToLower(action)) +
			" entry to " + ui.Path.Sprint(manifestPath))
		if entries, err := manifest.Load(manifestPath); err == nil {
			count := len(entries)
			fmt.Println(ui.Muted.Sprintf("%s now holds %d %s", manifestPath, count, utils.Pluralize(count, "entry", "entries")))
		}
		fmt.Println(ui.Info.Sprint("→") + " Run it with " + ui.Code.Sprint("alplock manifest run "+manifestPath))
		return nil
	},
}

// promptForChoice displays a numbered menu and reads a selection, returning
// its zero-based index. Invalid answers reprompt; end of input surfaces as
// an error so scripted stdin cannot loop forever.
func promptForChoice(reader *bufio.Reader, prompt string, options []string) (int, error) {
	fmt.Fprintln(os.Stderr, prompt)
	for i, option := range options {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, option)
	}

	for {
		input, err := utils.PromptForInput(reader, fmt.Sprintf("Choice [1-%d]: ", len(options)))
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(input)
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		fmt.Fprintln(os.Stderr, ui.Warning.Sprintf("Please enter a number between 1 and %d", len(options)))
	}
}

// readWizardCredential reads the credential for a decrypt entry: masked on
// a terminal, plain from scripted input otherwise.
func readWizardCredential(reader *bufio.Reader) (string, error) {
	if utils.IsTerminal() {
		return utils.ReadCredentialSecurely("Credential for this file: ")
	}
	return utils.PromptForInput(reader, "Credential for this file: ")
}
