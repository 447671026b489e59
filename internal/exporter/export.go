// Package exporter exports snippets and the whole database to portable files.
package exporter

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"patchpad/internal/config"
)

// Bundle is the portable YAML form of a single snippet. Body round-trips
// byte-exactly through yaml.v3 literal scalars, which matters because a
// body is a verbatim paste fragment.
type Bundle struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Instruction string   `yaml:"instruction"`
	Body        string   `yaml:"body"`
	AuthorName  string   `yaml:"author_name,omitempty"`
	AuthorEmail string   `yaml:"author_email,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// ExportDatabase copies the active patchpad database to dstPath.
func ExportDatabase(dstPath string) error {
	src, err := config.DBPath()
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source db: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create dst db: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return nil
}

// ExportSnippetYAML writes the named snippet from srcDB as a YAML bundle at
// dstPath. If the named snippet does not exist an error is returned.
func ExportSnippetYAML(srcDB *sql.DB, name string, dstPath string) error {
	row := srcDB.QueryRow("SELECT id, name, description, instruction, body, author_name, author_email FROM snippets WHERE name = ?", name)
	var id int64
	var b Bundle
	var description, authorName, authorEmail sql.NullString
	if err := row.Scan(&id, &b.Name, &description, &b.Instruction, &b.Body, &authorName, &authorEmail); err != nil {
		return fmt.Errorf("select snippet: %w", err)
	}
	b.Description = description.String
	b.AuthorName = authorName.String
	b.AuthorEmail = authorEmail.String

	rows, err := srcDB.Query("SELECT t.name FROM tags t JOIN snippet_tags st ON t.id = st.tag_id WHERE st.snippet_id = ?", id)
	if err != nil {
		return fmt.Errorf("select tags: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return err
		}
		b.Tags = append(b.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	f, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	defer func() { _ = f.Close() }()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&b); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return enc.Close()
}
