// Package assets embeds the default word lists so the game runs
// without any files configured.
package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answer pool.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}

// Allowed opens the embedded list of extra valid guesses.
func Allowed() (io.ReadCloser, error) {
	return FS.Open("allowed.txt")
}
