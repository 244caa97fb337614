package log_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alplock/alplock/internal/configs"
	"github.com/alplock/alplock/test/integration/shared"
)

// TestLogIntegration contains integration tests for the `alplock log` command.
func TestLogIntegration(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	originalUserSettings := configs.UserAlplockSettings

	t.Run("LogWithNoHistory", func(t *testing.T) {
		testLogWithNoHistory(t, originalWd, originalUserSettings)
	})

	t.Run("LogShowsEntriesAfterEncrypt", func(t *testing.T) {
		testLogShowsEntriesAfterEncrypt(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithLimitFlag", func(t *testing.T) {
		testLogWithLimitFlag(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithReverseFlag", func(t *testing.T) {
		testLogWithReverseFlag(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithOperationFilter", func(t *testing.T) {
		testLogWithOperationFilter(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithInvalidDateFilter", func(t *testing.T) {
		testLogWithInvalidDateFilter(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithOnelineFormat", func(t *testing.T) {
		testLogWithOnelineFormat(t, originalWd, originalUserSettings)
	})

	t.Run("LogWithJSONFormat", func(t *testing.T) {
		testLogWithJSONFormat(t, originalWd, originalUserSettings)
	})

	t.Run("LogShowsManifestRunSummary", func(t *testing.T) {
		testLogShowsManifestRunSummary(t, originalWd, originalUserSettings)
	})

	t.Run("LogNeverContainsCredentials", func(t *testing.T) {
		testLogNeverContainsCredentials(t, originalWd, originalUserSettings)
	})
}

// encryptFileForLog creates and encrypts a file so history has an entry.
func encryptFileForLog(t *testing.T, dir, name string) string {
	t.Helper()
	target := filepath.Join(dir, name)
	shared.WriteTestFile(t, target, []byte("content of "+name+"\n"))

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"encrypt", target}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Failed to encrypt %s: %v\nOutput: %s", target, err, output)
	}
	credential := shared.ExtractCredential(output)
	if credential == "" {
		t.Fatalf("No credential in encrypt output: %s", output)
	}
	return credential
}

// testLogWithNoHistory tests log output before anything was recorded.
func testLogWithNoHistory(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-empty-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed unexpectedly: %v", err)
	}

	if !strings.Contains(output, "No history yet") {
		t.Errorf("Expected 'No history yet' message in output: %s", output)
	}
}

// testLogShowsEntriesAfterEncrypt tests that operations land in the log.
func testLogShowsEntriesAfterEncrypt(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-entries-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)
	encryptFileForLog(t, tempDir, "a.txt")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "encrypt") {
		t.Errorf("Expected 'encrypt' operation in log output: %s", output)
	}
	if !strings.Contains(output, "testuser") {
		t.Errorf("Expected username in log output: %s", output)
	}
	if !strings.Contains(output, "a.txt -> ") {
		t.Errorf("Expected source and written paths in log output: %s", output)
	}
}

// testLogWithLimitFlag tests the -n flag to limit number of entries.
func testLogWithLimitFlag(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-limit-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		encryptFileForLog(t, tempDir, name)
	}

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "-n", "1"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	encryptLines := 0
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.Contains(line, "encrypt") {
			encryptLines++
		}
	}
	if encryptLines != 1 {
		t.Errorf("Expected 1 encrypt entry with -n 1, got %d. Output: %s", encryptLines, output)
	}
	// The limit keeps the most recent entry.
	if !strings.Contains(output, "c.txt") {
		t.Errorf("Expected the most recent entry to survive the limit: %s", output)
	}
}

// testLogWithReverseFlag tests the --reverse flag.
func testLogWithReverseFlag(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-reverse-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	encryptFileForLog(t, tempDir, "first.txt")
	encryptFileForLog(t, tempDir, "second.txt")

	outputReverse, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--reverse"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(outputReverse), "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected at least 2 log lines, got: %s", outputReverse)
	}
	if !strings.Contains(lines[0], "second.txt") {
		t.Errorf("Expected the newest entry first with --reverse. First line: %s", lines[0])
	}
}

// testLogWithOperationFilter tests the --operation filter.
func testLogWithOperationFilter(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-op-filter-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	credential := encryptFileForLog(t, tempDir, "a.txt")

	// Decrypt it back so both operations are in history.
	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"decrypt", filepath.Join(tempDir, "a.txt.alp"), "-k", credential}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Failed to decrypt: %v\nOutput: %s", err, output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--operation", "decrypt"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.Contains(line, " encrypt ") {
			t.Errorf("Encrypt entries should be filtered out: %s", output)
		}
	}
	if !strings.Contains(output, "decrypt") {
		t.Errorf("Expected decrypt entries, got: %s", output)
	}

	// Filter by an operation that never ran.
	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--operation", "rotate"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}
	if !strings.Contains(output, "No history entries match the filters") {
		t.Errorf("Expected no entries for unused operation, got: %s", output)
	}
}

// testLogWithInvalidDateFilter tests that a bad --since value is rejected
// with a readable message.
func testLogWithInvalidDateFilter(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-bad-date-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)
	encryptFileForLog(t, tempDir, "a.txt")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--since", "last tuesday"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("An invalid date filter should not cause a non-zero exit: %v", err)
	}
	if !strings.Contains(output, "invalid date filter") {
		t.Errorf("Expected invalid date filter message in output: %s", output)
	}
}

// testLogWithOnelineFormat tests the --oneline format.
func testLogWithOnelineFormat(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-oneline-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)
	encryptFileForLog(t, tempDir, "a.txt")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--oneline"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	line := strings.TrimSpace(output)
	if !strings.Contains(line, "encrypt") {
		t.Errorf("Expected encrypt in oneline output: %s", output)
	}
	// Oneline starts with the date only, no clock time.
	if strings.Contains(line, ":") {
		t.Errorf("Expected the compact format without a time column: %s", output)
	}
}

// testLogWithJSONFormat tests the --json format.
func testLogWithJSONFormat(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-json-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)
	encryptFileForLog(t, tempDir, "a.txt")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log", "--json"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	trimmedOutput := strings.TrimSpace(output)
	if !strings.HasPrefix(trimmedOutput, "[") || !strings.HasSuffix(trimmedOutput, "]") {
		t.Errorf("Expected JSON array output, got: %s", output)
	}
	if !strings.Contains(output, `"op": "encrypt"`) {
		t.Errorf("Expected 'op: encrypt' in JSON output: %s", output)
	}
	if !strings.Contains(output, `"user"`) {
		t.Errorf("Expected 'user' field in JSON output: %s", output)
	}
}

// testLogShowsManifestRunSummary tests that batch runs are summarized in
// history with their counts.
func testLogShowsManifestRunSummary(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-batch-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	target := filepath.Join(tempDir, "a.txt")
	shared.WriteTestFile(t, target, []byte("batch me\n"))
	manifestPath := filepath.Join(tempDir, "batch.yaml")
	shared.WriteTestFile(t, manifestPath, []byte("- action: Encrypt\n  filepath: "+target+"\n"))

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"manifest", "run", manifestPath}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Manifest run failed: %v\nOutput: %s", err, output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}

	if !strings.Contains(output, "manifest run") {
		t.Errorf("Expected 'manifest run' operation in log output: %s", output)
	}
	if !strings.Contains(output, "1 written, 0 skipped, 0 failed of 1") {
		t.Errorf("Expected batch counts in log output: %s", output)
	}
}

// testLogNeverContainsCredentials tests the history's core guarantee.
func testLogNeverContainsCredentials(t *testing.T, originalWd string, originalUserSettings *configs.UserSettings) {
	tempDir, err := os.MkdirTemp("", "alplock-test-log-no-creds-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tempUserDir, err := os.MkdirTemp("", "alplock-user-*")
	if err != nil {
		t.Fatalf("Failed to create temp user directory: %v", err)
	}
	defer os.RemoveAll(tempUserDir)

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	credential := encryptFileForLog(t, tempDir, "a.txt")

	history, err := os.ReadFile(shared.AuditLogPath())
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}
	if strings.Contains(string(history), credential) {
		t.Errorf("History file must never contain credentials")
	}

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"log"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Errorf("Command failed: %v", err)
	}
	if strings.Contains(output, credential) {
		t.Errorf("Log output must never contain credentials")
	}
}
