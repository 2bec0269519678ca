package skills

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const frontmatterMarker = "---"

var (
	frontmatterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)
	headerLineRe  = regexp.MustCompile(`^([a-zA-Z_-]+):\s*(.*)$`)
)

// ExtractFrontmatter returns the raw frontmatter text between the opening
// "---" marker at the start of content and the next "---" line. It fails if
// the document does not start with the marker or the closing marker is
// missing.
func ExtractFrontmatter(content string) (string, error) {
	if !strings.HasPrefix(content, frontmatterMarker) {
		return "", errors.New("no frontmatter found")
	}

	match := frontmatterRe.FindStringSubmatch(content)
	if match == nil {
		return "", errors.New("invalid frontmatter format")
	}

	return match[1], nil
}

// ParseFrontmatter parses flat "key: value" frontmatter lines into a map.
// Keys are letters, hyphens, and underscores. Values are trimmed and one
// layer of matching surrounding quotes (double or single) is stripped.
// Blank lines and "#" comments are skipped; lines that do not match the
// pattern are silently ignored. Duplicate keys are last-write-wins.
func ParseFrontmatter(text string) map[string]string {
	result := make(map[string]string)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := headerLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		key := match[1]
		value := strings.TrimSpace(match[2])
		result[key] = stripQuotes(value)
	}

	return result
}

func stripQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
		(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
		return value[1 : len(value)-1]
	}
	return value
}
