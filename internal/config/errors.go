package config

import "fmt"

// ParseError reports malformed TOML syntax. The document could not be read
// at all, so no section information is available.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a document that parses but violates the expected
// shape. Section names the offending top-level table; Entry is set when a
// specific entry within a page is at fault.
type ConfigError struct {
	Section string
	Entry   string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("config section %q, entry %q: %s", e.Section, e.Entry, e.Reason)
	}
	return fmt.Sprintf("config section %q: %s", e.Section, e.Reason)
}
