package main

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clicycle/pkg/render"
)

//go:embed topics/*.md
var topicsFS embed.FS

// docsCmd renders the embedded documentation topics through the library
// itself, so the help pages double as a rendering test bed.
var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation topics (markup, themes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := topicNames()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			for _, name := range names {
				fmt.Fprintln(os.Stdout, name)
			}
			return nil
		}

		content, err := topicsFS.ReadFile(path.Join("topics", args[0]+".md"))
		if err != nil {
			return fmt.Errorf("unknown topic %q, available: %s", args[0], strings.Join(names, ", "))
		}

		th, err := loadTheme()
		if err != nil {
			return err
		}
		c, err := render.New(os.Stdout, th)
		if err != nil {
			return err
		}
		return c.Markdown(string(content))
	},
}

func topicNames() ([]string, error) {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
