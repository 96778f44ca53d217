// Package taskfile round-trips a single task through a markdown file
// with YAML frontmatter, so it can be edited outside the store and
// imported back.
package taskfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/nmorgan/tasktrack/internal/model"
)

// Marshal serializes the task metadata as YAML frontmatter with the
// description as the markdown body.
func Marshal(t *model.Task) ([]byte, error) {
	meta, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n")
	if t.Description != "" {
		buf.WriteString("\n")
		buf.WriteString(t.Description)
		if !strings.HasSuffix(t.Description, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// Parse reads an exported task; the markdown body becomes the description.
func Parse(r io.Reader) (model.Task, error) {
	var t model.Task
	body, err := frontmatter.Parse(r, &t)
	if err != nil {
		return t, fmt.Errorf("parsing frontmatter: %w", err)
	}
	t.Description = strings.TrimSpace(string(body))
	return t, nil
}

// ReadFile parses the exported task at path.
func ReadFile(path string) (model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Task{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
