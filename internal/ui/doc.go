// Package ui centralizes terminal text styling for alplock.
//
// Commands never call the color library directly; they pick a semantic
// Formatter so the same kind of output looks the same everywhere:
//
//	spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint(target)
//	fmt.Println("Credential: " + ui.Credential.Sprint(credential))
//
// Every Formatter degrades gracefully when color is unavailable: some fall
// back to plain text, others to a textual decoration (backticks for code,
// quotes for credentials), so meaning survives NO_COLOR, dumb terminals,
// and piped output.
package ui
