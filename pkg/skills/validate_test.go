package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, name, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillFileName), []byte(content), 0o644))
	return dir
}

func skillDoc(name, description string) string {
	return fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n\n# Body\n", name, description)
}

func TestValidate(t *testing.T) {
	t.Run("valid skill", func(t *testing.T) {
		dir := writeSkill(t, "my-skill", skillDoc("my-skill", "A skill that does things"))
		valid, message := Validate(dir)
		assert.True(t, valid)
		assert.Equal(t, "Skill is valid!", message)
	})

	t.Run("missing SKILL.md", func(t *testing.T) {
		valid, message := Validate(t.TempDir())
		assert.False(t, valid)
		assert.Equal(t, "SKILL.md not found", message)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		dir := writeSkill(t, "foo", "# Just a heading\n")
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "No YAML frontmatter found", message)
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\nname: foo\ndescription: ok\n")
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Invalid frontmatter format", message)
	})

	t.Run("unexpected keys are sorted in the message", func(t *testing.T) {
		content := "---\nname: foo\ndescription: ok\nzeta: z\nalpha: a\n---\n"
		dir := writeSkill(t, "foo", content)
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Unexpected key(s) in frontmatter: alpha, zeta. Allowed: allowed-tools, description, license, metadata, name", message)
	})

	t.Run("all allowed keys accepted", func(t *testing.T) {
		content := "---\nname: full-skill\ndescription: ok\nlicense: MIT\nallowed-tools: Bash, Read\nmetadata: extra\n---\n"
		dir := writeSkill(t, "full-skill", content)
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("missing name", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\ndescription: ok\n---\n")
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Missing 'name' in frontmatter", message)
	})

	t.Run("missing description", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\nname: foo\n---\n")
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Missing 'description' in frontmatter", message)
	})

	t.Run("name with uppercase", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("Foo", "ok"))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Name 'Foo' should be hyphen-case (lowercase letters, digits, and hyphens only)", message)
	})

	t.Run("name with consecutive hyphens", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("foo--bar", "ok"))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Name 'foo--bar' cannot start/end with hyphen or contain consecutive hyphens", message)
	})

	t.Run("name with leading hyphen", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("-foo", "ok"))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Name '-foo' cannot start/end with hyphen or contain consecutive hyphens", message)
	})

	t.Run("name at 64 chars passes", func(t *testing.T) {
		name := strings.Repeat("a", 64)
		dir := writeSkill(t, name, skillDoc(name, "ok"))
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("name over 64 chars fails with length", func(t *testing.T) {
		name := strings.Repeat("a", 65)
		dir := writeSkill(t, "foo", skillDoc(name, "ok"))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Name is too long (65 chars). Maximum is 64 characters.", message)
	})

	t.Run("name must match directory", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\nname: bar\ndescription: x\n---\n")
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Name 'bar' does not match directory name 'foo'", message)
	})

	t.Run("empty name skips name checks", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\nname:\ndescription: ok\n---\n")
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("description with angle brackets", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("foo", "uses <script> tags"))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Description cannot contain angle brackets (< or >)", message)
	})

	t.Run("description at 1024 chars passes", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("foo", strings.Repeat("d", 1024)))
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("description over 1024 chars fails with length", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("foo", strings.Repeat("d", 1025)))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "Description is too long (1025 chars). Maximum is 1024 characters.", message)
	})

	t.Run("empty description skips description checks", func(t *testing.T) {
		dir := writeSkill(t, "foo", "---\nname: foo\ndescription:\n---\n")
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("exactly 500 lines passes", func(t *testing.T) {
		dir := writeSkill(t, "foo", docWithLines(500))
		valid, message := Validate(dir)
		assert.True(t, valid, message)
	})

	t.Run("501 lines fails with count", func(t *testing.T) {
		dir := writeSkill(t, "foo", docWithLines(501))
		valid, message := Validate(dir)
		assert.False(t, valid)
		assert.Equal(t, "SKILL.md has 501 lines. Maximum recommended is 500.", message)
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		dir := writeSkill(t, "foo", skillDoc("bar", "ok"))
		valid1, message1 := Validate(dir)
		valid2, message2 := Validate(dir)
		assert.Equal(t, valid1, valid2)
		assert.Equal(t, message1, message2)
	})
}

// docWithLines builds a well-formed document whose content splits into
// exactly n lines.
func docWithLines(n int) string {
	lines := []string{"---", "name: foo", "description: ok", "---"}
	for len(lines) < n {
		lines = append(lines, "body text")
	}
	return strings.Join(lines, "\n")
}
