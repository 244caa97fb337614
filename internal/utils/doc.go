// Package utils holds small helpers shared across alplock commands:
// terminal detection and masked credential input, stdin and line-based
// prompting, path list formatting, and username lookup for audit entries.
//
// Anything with real domain logic lives elsewhere; this package is for
// plumbing that would otherwise be duplicated across cmd files.
package utils
