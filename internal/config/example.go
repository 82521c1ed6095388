package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// exampleConfig covers every feature the config format supports: global
// colors, a page with multi-key and single-key entries, and an empty page.
func exampleConfig() Config {
	return Config{
		Theme: DefaultTheme(),
		Pages: []Page{
			{
				Name: "General",
				Entries: []Entry{
					{
						Name:        "Copy",
						Keys:        []string{"Ctrl", "C"},
						Description: "Copies the current selection.",
					},
					{
						Name:        "RecallClose",
						Keys:        []string{"q"},
						Description: "Closes recall",
					},
				},
			},
			{Name: "EmptyPage"},
		},
	}
}

// WriteExample writes an annotated example config to path (or the default
// location when path is empty) and returns a confirmation message. It
// refuses to overwrite an existing file.
func WriteExample(path string) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(resolved); err == nil {
		return "", fmt.Errorf("config file already exists at %s", resolved)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("check config path %s: %w", resolved, err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(resolved, []byte(renderExample(exampleConfig())), 0o644); err != nil {
		return "", fmt.Errorf("write example config: %w", err)
	}

	return fmt.Sprintf("Created example config in %s", resolved), nil
}

// renderExample serializes cfg as TOML annotated with usage hints. Each hint
// is written at most once, next to the first construct it explains.
func renderExample(cfg Config) string {
	var b strings.Builder

	b.WriteString("# Global settings for recall\n")
	b.WriteString("[" + settingsTable + "]\n")
	b.WriteString("# Colors are indices into the ANSI color table (0-255)\n")
	fmt.Fprintf(&b, "primary_color = %s\n", cfg.Theme.Primary)
	fmt.Fprintf(&b, "highlight_color = %s\n\n", cfg.Theme.Highlight)

	var subtableHint, contentHint, descriptionHint, emptyPageHint bool

	for _, page := range cfg.Pages {
		if !subtableHint {
			b.WriteString("# Each subtable defines a new page\n")
			b.WriteString("# The name of the page is the name of the subtable\n")
			subtableHint = true
		}

		fmt.Fprintf(&b, "[%s]\n", page.Name)

		for _, entry := range page.Entries {
			if len(entry.Keys) > 0 && !contentHint {
				b.WriteString("# \"content\" takes an array of strings used as keys needed for a shortcut\n")
				contentHint = true
			}
			if entry.Description != "" && !descriptionHint {
				b.WriteString("# \"description\" takes a string used as a description for this entry\n")
				descriptionHint = true
			}

			keys := make([]string, len(entry.Keys))
			for i, key := range entry.Keys {
				keys[i] = strconv.Quote(key)
			}
			fmt.Fprintf(&b, "%s = {content = [%s], description = %s}\n",
				entry.Name, strings.Join(keys, ","), strconv.Quote(entry.Description))
		}

		if len(page.Entries) == 0 && !emptyPageHint {
			b.WriteString("# Empty tables are also allowed (but useless)\n")
			emptyPageHint = true
		}

		b.WriteString("\n")
	}

	return b.String()
}
