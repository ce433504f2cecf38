// Package metadata extracts the metadata block from the top of a Markdown
// document. Two dialects are supported: plain "key: value" header lines and
// YAML frontmatter. Both produce the same shape: every key maps to the list
// of values declared for it, in declaration order.
package metadata

import "fmt"

// Parser splits raw document bytes into a metadata map and the remaining
// Markdown body. A document without a metadata block yields an empty map and
// the unchanged input.
type Parser interface {
	Parse(src []byte) (meta map[string][]string, body []byte, err error)
}

// Dialect names accepted in configuration.
const (
	DialectMeta = "meta"
	DialectYAML = "yaml"
)

// ForDialect returns the Parser for the named dialect.
func ForDialect(name string) (Parser, error) {
	switch name {
	case DialectMeta, "":
		return MetaParser{}, nil
	case DialectYAML:
		return YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("metadata: unknown dialect %q", name)
	}
}

// First returns the first declared value for key, or "" when absent.
func First(meta map[string][]string, key string) string {
	if vs := meta[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
