package metadata

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads frontmatter between leading --- delimiters. Scalar values
// become single-element lists and YAML sequences become multi-element lists,
// so both dialects present metadata the same way to the pipeline.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(src []byte) (map[string][]string, []byte, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(src, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return map[string][]string{}, src, nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter, treat everything as body.
		return map[string][]string{}, src, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(rest[:idx], &raw); err != nil {
		return nil, nil, fmt.Errorf("metadata: frontmatter: %w", err)
	}

	afterDelim := rest[idx+1+len(delim):]
	body := []byte(strings.TrimLeft(string(afterDelim), "\n\r"))

	meta := make(map[string][]string, len(raw))
	for k, v := range raw {
		meta[strings.ToLower(k)] = stringify(v)
	}
	return meta, body, nil
}

func stringify(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{""}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, stringify(item)...)
		}
		return out
	case string:
		return []string{t}
	default:
		return []string{fmt.Sprintf("%v", t)}
	}
}
