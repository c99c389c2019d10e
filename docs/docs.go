//go:build docs

// Regenerates the CLI reference under docs/ and splices the root command
// page into README.md. Run from the repository root:
//
//	go run -tags docs ./docs
package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra/doc"

	"github.com/maxgio92/stackmark/internal/settings"
	"github.com/maxgio92/stackmark/pkg/cmd"
)

const (
	docsDir        = "docs"
	readmeTemplate = "README.md.tpl"
	readmeMarker   = "{{ .CLI_REFERENCE }}"
)

// The root command page replaces the marker in the README template;
// every other page links relative to docs/.
func rewriteLink(filename string) string {
	if filename == settings.CmdName+".md" {
		return "README.md"
	}

	return path.Join(docsDir, filename)
}

func run() error {
	root := cmd.NewCommand(cmd.NewOptions(
		cmd.WithLogger(log.New(os.Stderr).Level(log.InfoLevel)),
	))

	noHeader := func(string) string { return "" }
	if err := doc.GenMarkdownTreeCustom(root, docsDir, noHeader, rewriteLink); err != nil {
		return fmt.Errorf("failed to generate CLI reference: %w", err)
	}

	tpl, err := os.ReadFile(readmeTemplate)
	if err != nil {
		return fmt.Errorf("failed to read README template: %w", err)
	}

	rootPage, err := os.ReadFile(path.Join(docsDir, settings.CmdName+".md"))
	if err != nil {
		return fmt.Errorf("failed to read generated root page: %w", err)
	}

	readme := strings.Replace(string(tpl), readmeMarker, string(rootPage), 1)
	if err := os.WriteFile("README.md", []byte(readme), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
