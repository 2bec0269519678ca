package skills

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/pkg/errors"
)

var skillTemplate = template.Must(template.New("skill").Parse(`---
name: {{.Name}}
description: [TODO: Explain what this skill does and when to use it. Include specific triggers like file types, tasks, or scenarios.]
---

# {{.Title}}

## Overview

[TODO: 1-2 sentences explaining what this skill enables]

## Workflow

[TODO: Add the main workflow or instructions. Choose a structure that fits:

**Workflow-Based** (sequential processes):
## Workflow Decision Tree -> ## Step 1 -> ## Step 2...

**Task-Based** (tool collections):
## Quick Start -> ## Task 1 -> ## Task 2...

**Reference/Guidelines** (standards):
## Guidelines -> ## Specifications -> ## Usage...

Delete this guidance section when done.]

## Resources

Example directories are included to demonstrate structure:

- ` + "`scripts/`" + `: Executable code (Python/Bash) for automation
- ` + "`references/`" + `: Documentation loaded into context as needed
- ` + "`assets/`" + `: Files used in output (templates, images, not loaded into context)

Delete any unneeded directories.
`))

var exampleScriptTemplate = template.Must(template.New("script").Parse(`#!/usr/bin/env python3
"""
Example helper script for {{.Name}}

Replace with actual implementation or delete if not needed.
"""

def main():
    print("Example script for {{.Name}}")
    # TODO: Add actual script logic

if __name__ == "__main__":
    main()
`))

var exampleReferenceTemplate = template.Must(template.New("reference").Parse(`# Reference Documentation for {{.Title}}

Replace with actual reference content or delete if not needed.

Reference docs are ideal for:
- Comprehensive API documentation
- Detailed workflow guides
- Complex multi-step processes
- Information too lengthy for main SKILL.md
`))

const exampleAsset = `# Example Asset File

Replace with actual asset files (templates, images, fonts, etc.) or delete if not needed.

Asset files are NOT loaded into context but used in the output the agent produces.

Common asset types: .pptx, .docx, .png, .ttf, .csv, boilerplate directories
`

type templateData struct {
	Name  string
	Title string
}

// TitleCase converts a hyphenated skill name to a display title, e.g.
// "my-new-skill" becomes "My New Skill".
func TitleCase(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// InitSkill creates <path>/<name>/ with a templated SKILL.md and example
// scripts/, references/, and assets/ directories. It refuses to touch an
// existing skill directory. On partial failure the structure created so far
// is left in place; re-running after fixing the reported issue is the
// recovery path. Returns the created skill directory path.
func InitSkill(ctx context.Context, name, path string) (string, error) {
	log := logger.G(ctx).WithField("skill", name)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve destination path")
	}
	skillDir := filepath.Join(absPath, name)

	if _, err := os.Stat(skillDir); err == nil {
		return "", errors.Errorf("skill directory already exists: %s", skillDir)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skill directory")
	}
	log.WithField("dir", skillDir).Debug("created skill directory")

	data := templateData{Name: name, Title: TitleCase(name)}

	if err := writeTemplate(filepath.Join(skillDir, SkillFileName), skillTemplate, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to create SKILL.md")
	}
	log.Debug("created SKILL.md")

	scriptsDir := filepath.Join(skillDir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create scripts directory")
	}
	if err := writeTemplate(filepath.Join(scriptsDir, "example.py"), exampleScriptTemplate, data, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create scripts/example.py")
	}
	log.Debug("created scripts/example.py")

	referencesDir := filepath.Join(skillDir, "references")
	if err := os.MkdirAll(referencesDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create references directory")
	}
	if err := writeTemplate(filepath.Join(referencesDir, "REFERENCE.md"), exampleReferenceTemplate, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to create references/REFERENCE.md")
	}
	log.Debug("created references/REFERENCE.md")

	assetsDir := filepath.Join(skillDir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create assets directory")
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "example_asset.txt"), []byte(exampleAsset), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to create assets/example_asset.txt")
	}
	log.Debug("created assets/example_asset.txt")

	return skillDir, nil
}

func writeTemplate(path string, tmpl *template.Template, data templateData, mode os.FileMode) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return err
	}
	// WriteFile applies the mode only on create and respects umask, so the
	// executable bit is set explicitly.
	return os.Chmod(path, mode)
}
