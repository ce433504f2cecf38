package metadata

import (
	"regexp"
	"strings"
)

var metaKeyRe = regexp.MustCompile(`^([A-Za-z0-9_-]+):\s*(.*)$`)

// MetaParser reads a header of "key: value" lines at the very top of the
// document, terminated by the first blank line. Repeated keys accumulate
// values; lines indented by four spaces or a tab continue the previous key.
// If the first line is not a "key: value" line there is no metadata block
// and the whole input is body.
type MetaParser struct{}

// Parse implements Parser.
func (MetaParser) Parse(src []byte) (map[string][]string, []byte, error) {
	lines := strings.Split(string(src), "\n")
	meta := map[string][]string{}
	var lastKey string
	consumed := 0

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if i == 0 {
				break
			}
			// Blank line ends the block; body starts on the next line.
			consumed = i + 1
			break
		}
		if cont, ok := continuation(line); ok && lastKey != "" {
			meta[lastKey] = append(meta[lastKey], cont)
			consumed = i + 1
			continue
		}
		m := metaKeyRe.FindStringSubmatch(line)
		if m == nil {
			if i == 0 {
				// No metadata block at all.
				break
			}
			// First non-matching line after the block: it belongs to the body.
			consumed = i
			break
		}
		key := strings.ToLower(m[1])
		meta[key] = append(meta[key], strings.TrimSpace(m[2]))
		lastKey = key
		consumed = i + 1
	}

	if len(meta) == 0 {
		return map[string][]string{}, src, nil
	}
	body := []byte(strings.Join(lines[consumed:], "\n"))
	return meta, body, nil
}

// continuation reports whether line extends the previous key's value list.
func continuation(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "    "):
		return strings.TrimSpace(line[4:]), true
	case strings.HasPrefix(line, "\t"):
		return strings.TrimSpace(line[1:]), true
	}
	return "", false
}
