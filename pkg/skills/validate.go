package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// SkillFileName is the metadata document every skill directory must contain.
const SkillFileName = "SKILL.md"

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
	maxSkillFileLines    = 500
)

var allowedProperties = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"allowed-tools": true,
	"metadata":      true,
}

var hyphenCaseRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate checks a skill directory's SKILL.md against the structural rules:
// allowed frontmatter keys, required name and description, hyphen-case name
// matching the directory name, description content and length limits, and
// the overall file line count. Checks short-circuit: the first failure
// determines the returned message. The returned bool reports validity and
// the string is a single human-readable diagnostic.
func Validate(skillPath string) (bool, string) {
	absPath, err := filepath.Abs(skillPath)
	if err != nil {
		absPath = skillPath
	}

	skillFile := filepath.Join(absPath, SkillFileName)
	data, err := os.ReadFile(skillFile)
	if err != nil {
		return false, "SKILL.md not found"
	}
	content := string(data)

	if !strings.HasPrefix(content, frontmatterMarker) {
		return false, "No YAML frontmatter found"
	}

	frontmatterText, err := ExtractFrontmatter(content)
	if err != nil {
		return false, "Invalid frontmatter format"
	}

	frontmatter := ParseFrontmatter(frontmatterText)
	if frontmatter == nil {
		return false, "Frontmatter must be a YAML dictionary"
	}

	var unexpected []string
	for key := range frontmatter {
		if !allowedProperties[key] {
			unexpected = append(unexpected, key)
		}
	}
	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		allowed := make([]string, 0, len(allowedProperties))
		for key := range allowedProperties {
			allowed = append(allowed, key)
		}
		sort.Strings(allowed)
		return false, fmt.Sprintf("Unexpected key(s) in frontmatter: %s. Allowed: %s",
			strings.Join(unexpected, ", "), strings.Join(allowed, ", "))
	}

	if _, ok := frontmatter["name"]; !ok {
		return false, "Missing 'name' in frontmatter"
	}
	if _, ok := frontmatter["description"]; !ok {
		return false, "Missing 'description' in frontmatter"
	}

	name := strings.TrimSpace(frontmatter["name"])
	if name != "" {
		if !hyphenCaseRe.MatchString(name) {
			return false, fmt.Sprintf("Name '%s' should be hyphen-case (lowercase letters, digits, and hyphens only)", name)
		}
		if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
			return false, fmt.Sprintf("Name '%s' cannot start/end with hyphen or contain consecutive hyphens", name)
		}
		if utf8.RuneCountInString(name) > maxNameLength {
			return false, fmt.Sprintf("Name is too long (%d chars). Maximum is %d characters.", utf8.RuneCountInString(name), maxNameLength)
		}
		if name != filepath.Base(absPath) {
			return false, fmt.Sprintf("Name '%s' does not match directory name '%s'", name, filepath.Base(absPath))
		}
	}

	description := strings.TrimSpace(frontmatter["description"])
	if description != "" {
		if strings.ContainsAny(description, "<>") {
			return false, "Description cannot contain angle brackets (< or >)"
		}
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return false, fmt.Sprintf("Description is too long (%d chars). Maximum is %d characters.", utf8.RuneCountInString(description), maxDescriptionLength)
		}
	}

	if lines := len(strings.Split(content, "\n")); lines > maxSkillFileLines {
		return false, fmt.Sprintf("SKILL.md has %d lines. Maximum recommended is %d.", lines, maxSkillFileLines)
	}

	return true, "Skill is valid!"
}
