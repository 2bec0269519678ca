package skills

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"my-new-skill", "My New Skill"},
		{"skill", "Skill"},
		{"pdf-2-text", "Pdf 2 Text"},
		{"a", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.name))
		})
	}
}

func TestInitSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the full skill structure", func(t *testing.T) {
		dest := t.TempDir()

		skillDir, err := InitSkill(ctx, "my-new-skill", dest)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dest, "my-new-skill"), skillDir)

		content, err := os.ReadFile(filepath.Join(skillDir, SkillFileName))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "---\n"))
		assert.Contains(t, string(content), "name: my-new-skill")
		assert.Contains(t, string(content), "# My New Skill")

		script, err := os.ReadFile(filepath.Join(skillDir, "scripts", "example.py"))
		require.NoError(t, err)
		assert.Contains(t, string(script), "Example script for my-new-skill")

		reference, err := os.ReadFile(filepath.Join(skillDir, "references", "REFERENCE.md"))
		require.NoError(t, err)
		assert.Contains(t, string(reference), "Reference Documentation for My New Skill")

		asset, err := os.ReadFile(filepath.Join(skillDir, "assets", "example_asset.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(asset), "Example Asset File")
	})

	t.Run("example script is executable", func(t *testing.T) {
		dest := t.TempDir()

		skillDir, err := InitSkill(ctx, "exec-check", dest)
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(skillDir, "scripts", "example.py"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o111, "example.py should be executable")
	})

	t.Run("creates nested destination directories", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "skills", "public")

		skillDir, err := InitSkill(ctx, "nested-skill", dest)
		require.NoError(t, err)
		assert.DirExists(t, skillDir)
	})

	t.Run("refuses an existing skill directory", func(t *testing.T) {
		dest := t.TempDir()
		existing := filepath.Join(dest, "already-there")
		require.NoError(t, os.MkdirAll(existing, 0o755))

		_, err := InitSkill(ctx, "already-there", dest)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		// No writes should have happened inside the existing directory
		entries, err := os.ReadDir(existing)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("generated skill passes validation", func(t *testing.T) {
		dest := t.TempDir()

		skillDir, err := InitSkill(ctx, "my-new-skill", dest)
		require.NoError(t, err)

		valid, message := Validate(skillDir)
		assert.True(t, valid, message)
	})
}
