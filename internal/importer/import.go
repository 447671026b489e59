// Package importer imports snippets and whole databases from portable files.
package importer

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"patchpad/internal/config"
	"patchpad/internal/exporter"
	"patchpad/internal/registry"
)

// ImportDatabase replaces the active patchpad database with the file at
// srcPath. The current database, if any, is saved next to itself with a
// .bak suffix first so a bad import can be undone by hand.
func ImportDatabase(srcPath string) error {
	dst, err := config.DBPath()
	if err != nil {
		return err
	}
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer func() { _ = in.Close() }()

	if _, err := os.Stat(dst); err == nil {
		if err := copyFile(dst, dst+".bak"); err != nil {
			return fmt.Errorf("backup current db: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create db: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return nil
}

// ImportSnippetYAML reads a YAML bundle from srcPath and creates the snippet
// in the registry backed by db. Returns the imported snippet's name.
// A name collision is reported as an error; nothing is written in that case.
func ImportSnippetYAML(db *sql.DB, srcPath string) (string, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("read bundle: %w", err)
	}
	var b exporter.Bundle
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return "", fmt.Errorf("decode bundle: %w", err)
	}
	if b.Name == "" {
		return "", fmt.Errorf("bundle has no name")
	}

	r := registry.NewRepository(db)
	var descPtr, anPtr, aePtr *string
	if b.Description != "" {
		descPtr = &b.Description
	}
	if b.AuthorName != "" {
		anPtr = &b.AuthorName
	}
	if b.AuthorEmail != "" {
		aePtr = &b.AuthorEmail
	}
	id, err := r.CreateSnippet(b.Name, descPtr, b.Instruction, b.Body, anPtr, aePtr)
	if err != nil {
		return "", err
	}
	for _, tag := range b.Tags {
		if err := r.AddTag(id, tag); err != nil {
			return "", err
		}
	}
	return b.Name, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	_, err = io.Copy(out, in)
	return err
}
