package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one row within a page: an ordered key sequence plus a description.
// Name is the TOML identifier of the entry; it guarantees uniqueness within
// the page and is never displayed.
type Entry struct {
	Name        string
	Keys        []string
	Description string
}

// Page is a named, ordered group of entries shown as one navigable screen.
type Page struct {
	Name    string
	Entries []Entry
}

// Theme holds the two colors used to style all rendered text.
type Theme struct {
	Primary   lipgloss.Color
	Highlight lipgloss.Color
}

// Config is the immutable domain model built from a config file. Pages keep
// the order their sections appeared in the document and may be empty.
type Config struct {
	Theme Theme
	Pages []Page
}

const (
	defaultConfigPath = "~/.config/recall/config.toml"

	// ANSI color table indices used when [recall] omits a color.
	defaultPrimaryColor   = lipgloss.Color("15") // white
	defaultHighlightColor = lipgloss.Color("14") // cyan
)

// settingsTable is the reserved top-level table holding global settings.
// Every other top-level table is a page.
const settingsTable = "recall"

// DefaultTheme returns the colors used when the config defines none.
func DefaultTheme() Theme {
	return Theme{Primary: defaultPrimaryColor, Highlight: defaultHighlightColor}
}

// Load reads and validates the config file at path, or at the default
// location when path is empty. A missing or unreadable file is an error;
// `recall init` creates a starter file.
func Load(path string) (Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", resolved, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return Config{}, err
	}

	return build(doc)
}

// build turns a parsed document into the domain model. It partitions
// top-level keys into the reserved settings table and pages, preserving
// document order for pages and for entries within each page.
func build(doc *document) (Config, error) {
	cfg := Config{Theme: DefaultTheme()}

	for _, name := range doc.keys() {
		if name == settingsTable {
			theme, err := buildTheme(doc)
			if err != nil {
				return Config{}, err
			}
			cfg.Theme = theme
			continue
		}

		page, err := buildPage(doc, name)
		if err != nil {
			return Config{}, err
		}
		cfg.Pages = append(cfg.Pages, page)
	}

	return cfg, nil
}

// settingsRecord mirrors the optional [recall] table. Pointer fields
// distinguish absent values from zero values.
type settingsRecord struct {
	PrimaryColor   *int64 `toml:"primary_color"`
	HighlightColor *int64 `toml:"highlight_color"`
}

func buildTheme(doc *document) (Theme, error) {
	var raw settingsRecord
	if err := doc.decode(settingsTable, &raw); err != nil {
		return Theme{}, &ConfigError{Section: settingsTable, Reason: err.Error()}
	}

	theme := DefaultTheme()
	if raw.PrimaryColor != nil {
		color, err := indexedColor(*raw.PrimaryColor)
		if err != nil {
			return Theme{}, &ConfigError{Section: settingsTable, Reason: fmt.Sprintf("primary_color: %v", err)}
		}
		theme.Primary = color
	}
	if raw.HighlightColor != nil {
		color, err := indexedColor(*raw.HighlightColor)
		if err != nil {
			return Theme{}, &ConfigError{Section: settingsTable, Reason: fmt.Sprintf("highlight_color: %v", err)}
		}
		theme.Highlight = color
	}

	return theme, nil
}

// indexedColor converts an ANSI color table index into a lipgloss color.
func indexedColor(index int64) (lipgloss.Color, error) {
	if index < 0 || index > 255 {
		return "", fmt.Errorf("index %d outside the ANSI color table range 0-255", index)
	}
	return lipgloss.Color(strconv.FormatInt(index, 10)), nil
}

// entryRecord mirrors one entry table within a page. Both fields are
// required; pointers detect absence so a missing field is reported instead
// of silently defaulted.
type entryRecord struct {
	Content     *[]string `toml:"content"`
	Description *string   `toml:"description"`
}

func buildPage(doc *document, name string) (Page, error) {
	entries, err := doc.table(name)
	if err != nil {
		return Page{}, &ConfigError{Section: name, Reason: fmt.Sprintf("page must be a table of entries: %v", err)}
	}

	page := Page{Name: name}
	for _, entryName := range doc.tableKeys(name) {
		var raw entryRecord
		if err := doc.decodePrimitive(entries[entryName], &raw); err != nil {
			return Page{}, &ConfigError{Section: name, Entry: entryName, Reason: err.Error()}
		}
		if raw.Content == nil {
			return Page{}, &ConfigError{Section: name, Entry: entryName, Reason: `missing required field "content"`}
		}
		if raw.Description == nil {
			return Page{}, &ConfigError{Section: name, Entry: entryName, Reason: `missing required field "description"`}
		}
		page.Entries = append(page.Entries, Entry{
			Name:        entryName,
			Keys:        *raw.Content,
			Description: *raw.Description,
		})
	}

	return page, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// ResolvePath expands path, falling back to the default location when empty.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
