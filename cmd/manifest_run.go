package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	alperrors "github.com/alplock/alplock/internal/errors"
	"github.com/alplock/alplock/internal/manifest"
	"github.com/alplock/alplock/internal/ui"
	"github.com/alplock/alplock/internal/utils"
	"github.com/alplock/alplock/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	manifestRunWorkers int
	manifestRunJSON    bool
)

func init() {
	manifestRunCmd.Flags().IntVarP(&manifestRunWorkers, "workers", "w", 0, "worker pool size (0 uses the config value, then one per CPU)")
	manifestRunCmd.Flags().BoolVar(&manifestRunJSON, "json", false, "print the batch report as JSON")
}

// resetManifestRunCommandState resets the manifest run command's global state for testing.
func resetManifestRunCommandState() {
	manifestRunWorkers = 0
	manifestRunJSON = false
}

var manifestRunCmd = &cobra.Command{
	Use:   "run <manifest>",
	Short: "Execute every entry of a manifest",
	Long: `Runs all encrypt and decrypt entries of a YAML manifest across a worker
pool. Entries are isolated: one failing or being skipped never stops the
others, and every entry ends the run as written, skipped, or failed.

Decrypt entries without a key column are skipped, as are entries whose
root directory does not exist on this machine. Credentials for freshly
encrypted entries are printed per entry and never stored.

Examples:
  alplock manifest run manifest.yaml
  alplock manifest run manifest.yaml --workers 8
  alplock manifest run manifest.yaml --json > report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting manifest run command")
		spinner, cleanup := startSpinner("Running manifest...", verbose)
		defer cleanup()

		manifestPath := args[0]
		Logger.Debugf("Manifest path: %s, workers: %d, json: %t", manifestPath, manifestRunWorkers, manifestRunJSON)

		opts := workflows.RunOptions{
			ManifestPath: manifestPath,
			Workers:      manifestRunWorkers,
		}
		if !manifestRunJSON {
			// Stream entry outcomes as they arrive. The report is keyed by
			// manifest index, but mid-run feedback matters on long batches.
			opts.OnResult = func(result manifest.EntryResult) {
				printEntryResult(spinner, result)
			}
		}

		result, err := workflows.Run(context.Background(), opts)
		if err != nil {
			Logger.Errorf("Manifest run failed: %v", err)
			spinner.FinalMSG = formatManifestRunError(manifestPath, err)
			return err
		}

		report := result.Report
		written := report.CountByStatus(manifest.StatusWritten)
		skipped := report.CountByStatus(manifest.StatusSkipped)
		failed := report.CountByStatus(manifest.StatusFailed)
		Logger.Infof("Manifest complete: %d written, %d skipped, %d failed in %dms",
			written, skipped, failed, report.DurationMS)
		if written > 0 {
			paths := make([]string, 0, written)
			for _, entryResult := range report.Results {
				if entryResult.Status == manifest.StatusWritten {
					paths = append(paths, entryResult.Written)
				}
			}
			Logger.Infof("Written files:\n%s", utils.FormatPathList(paths))
		}

		if manifestRunJSON {
			spinner.FinalMSG = ""
			cleanup()
			return outputReportJSON(report)
		}

		counts := fmt.Sprintf("%d written, %d skipped, %d failed of %d",
			written, skipped, failed, len(report.Results))
		if report.HasFailures() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Manifest completed with failures: " + counts + "\n" +
				ui.Info.Sprint("→") + " Failed entries are listed above; the rest of the batch is unaffected"
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Manifest complete: " + counts
		}
		return nil
	},
}

// printEntryResult prints one entry outcome without corrupting the spinner
// line. Stopping and restarting around the print is how mid-run output and
// the animation share a terminal.
func printEntryResult(s *spinner.Spinner, result manifest.EntryResult) {
	line := formatEntryResult(result)
	if !verbose && !debug {
		s.Stop()
		warnUnknownRoot(result)
		fmt.Println(line)
		s.Start()
	} else {
		warnUnknownRoot(result)
		fmt.Println(line)
	}
}

// warnUnknownRoot flags entries whose root token is outside the known set.
// They still run with the file path as written, so a typo like ROAM for
// ROAMING surfaces here instead of passing silently.
func warnUnknownRoot(result manifest.EntryResult) {
	if manifest.ParseRoot(result.Root) == manifest.RootUnknown {
		Logger.WarnfAlways("Unrecognized root %q for %s, using the file path as written", result.Root, result.Path)
	}
}

// formatEntryResult renders one entry outcome as a display line.
func formatEntryResult(result manifest.EntryResult) string {
	switch result.Status {
	case manifest.StatusWritten:
		if result.Credential != "" {
			return ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint(result.Path) +
				" with credential " + ui.Credential.Sprint(result.Credential)
		}
		return ui.Success.Sprint("✓") + " Decrypted " + ui.Path.Sprint(result.Path)

	case manifest.StatusSkipped:
		return ui.Warning.Sprint("-") + " Skipped " + ui.Path.Sprint(result.Path) + " " +
			ui.Muted.Sprint(result.Reason)

	default:
		return ui.Error.Sprint("✗") + " Failed " + ui.Path.Sprint(result.Path) + ": " + result.Reason
	}
}

// formatManifestRunError formats a manifest run error for display to the user.
func formatManifestRunError(path string, err error) string {
	switch {
	case errors.Is(err, alperrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " Manifest not found: " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Create one with " + ui.Code.Sprint("alplock manifest init")

	case errors.Is(err, alperrors.ErrMalformedManifest):
		return ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " is not a valid manifest\n" +
			ui.Info.Sprint("→") + " Expected a YAML sequence of entries with " + ui.Code.Sprint("action") +
			" and " + ui.Code.Sprint("filepath") + " fields\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to run " + ui.Path.Sprint(path) + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}

func outputReportJSON(report *manifest.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
