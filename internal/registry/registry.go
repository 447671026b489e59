package registry

import (
	"database/sql"
	"fmt"
	"strings"

	"patchpad/internal/nameutil"
)

// Repository provides CRUD operations for snippets and their tags.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSnippet inserts a new snippet and returns its ID. The name is
// trimmed and validated; duplicate names are rejected inside the insert so
// the uniqueness check happens in the DB engine and avoids TOCTOU races
// across processes.
func (r *Repository) CreateSnippet(name string, description *string, instruction, body string, authorName, authorEmail *string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("invalid name: name cannot be empty")
	}
	if err := nameutil.ValidateName(name); err != nil {
		return 0, err
	}
	if strings.TrimSpace(instruction) == "" {
		return 0, fmt.Errorf("instruction cannot be empty")
	}
	if body == "" {
		return 0, fmt.Errorf("body cannot be empty")
	}

	trx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = trx.Rollback() }()

	res, err := trx.Exec(`INSERT INTO snippets (name, description, instruction, body, author_name, author_email, created_at)
			SELECT ?, ?, ?, ?, ?, ?, datetime('now')
			WHERE NOT EXISTS(SELECT 1 FROM snippets WHERE TRIM(name) = ?)`,
		name, description, instruction, body, authorName, authorEmail, name)
	if err != nil {
		return 0, fmt.Errorf("insert snippet: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		// Another row with the same trimmed name already exists
		return 0, fmt.Errorf("name %q already in use", name)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := trx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetSnippetByName retrieves a snippet and its tags by name.
// Returns (nil, nil) when no snippet has that name.
func (r *Repository) GetSnippetByName(name string) (*Snip, error) {
	row := r.db.QueryRow("SELECT id, name, description, instruction, body, author_name, author_email, created_at, last_shown FROM snippets WHERE name = ?", name)
	var s Snip
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Instruction, &s.Body, &s.AuthorName, &s.AuthorEmail, &s.CreatedAt, &s.LastShown); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.attachTags(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSnippets returns all snippets ordered by creation time, newest first.
func (r *Repository) ListSnippets() ([]Snip, error) {
	rows, err := r.db.Query("SELECT id, name, description, instruction, body, author_name, author_email, created_at, last_shown FROM snippets ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Snip
	for rows.Next() {
		var s Snip
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Instruction, &s.Body, &s.AuthorName, &s.AuthorEmail, &s.CreatedAt, &s.LastShown); err != nil {
			return nil, err
		}
		if err := r.attachTags(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateSnippet updates a snippet's metadata and body, replacing its tags.
func (r *Repository) UpdateSnippet(snippetID int64, newName string, description *string, instruction, body string, tags []string) error {
	newName = strings.TrimSpace(newName)
	if err := nameutil.ValidateName(newName); err != nil {
		return err
	}
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if err := r.ensureNameNotTakenTx(trx, newName, snippetID); err != nil {
		return err
	}
	if _, err := trx.Exec("UPDATE snippets SET name = ?, description = ?, instruction = ?, body = ? WHERE id = ?",
		newName, description, instruction, body, snippetID); err != nil {
		return err
	}
	if err := r.replaceTagsTx(trx, snippetID, tags); err != nil {
		return err
	}
	return trx.Commit()
}

// UpdateBody replaces only the body of a snippet.
func (r *Repository) UpdateBody(snippetID int64, body string) error {
	if body == "" {
		return fmt.Errorf("body cannot be empty")
	}
	_, err := r.db.Exec("UPDATE snippets SET body = ? WHERE id = ?", body, snippetID)
	return err
}

func (r *Repository) ensureNameNotTakenTx(trx *sql.Tx, newName string, snippetID int64) error {
	var existingID int64
	row := trx.QueryRow("SELECT id FROM snippets WHERE name = ?", newName)
	if err := row.Scan(&existingID); err == nil {
		if existingID != snippetID {
			return fmt.Errorf("name %q already in use", newName)
		}
	} else if err != sql.ErrNoRows {
		return err
	}
	return nil
}

// DeleteSnippet removes a snippet and its tag associations by name.
// Deleting a name that does not exist is not an error.
func (r *Repository) DeleteSnippet(name string) error {
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	var id int64
	row := trx.QueryRow("SELECT id FROM snippets WHERE name = ?", name)
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if _, err := trx.Exec("DELETE FROM snippet_tags WHERE snippet_id = ?", id); err != nil {
		return err
	}
	if _, err := trx.Exec("DELETE FROM snippets WHERE id = ?", id); err != nil {
		return err
	}
	return trx.Commit()
}

// TouchLastShown records that a snippet was emitted just now.
func (r *Repository) TouchLastShown(snippetID int64) error {
	_, err := r.db.Exec("UPDATE snippets SET last_shown = datetime('now') WHERE id = ?", snippetID)
	return err
}

// attachTags loads tags for a snippet into the provided Snip.
func (r *Repository) attachTags(s *Snip) error {
	rows, err := r.db.Query("SELECT t.name FROM tags t JOIN snippet_tags st ON t.id = st.tag_id WHERE st.snippet_id = ?", s.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		s.Tags = append(s.Tags, name)
	}
	return rows.Err()
}

func (r *Repository) replaceTagsTx(trx *sql.Tx, snippetID int64, tags []string) error {
	if _, err := trx.Exec("DELETE FROM snippet_tags WHERE snippet_id = ?", snippetID); err != nil {
		return err
	}
	for _, tag := range tags {
		if _, err := trx.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", tag); err != nil {
			return err
		}
		var tagID int64
		rrow := trx.QueryRow("SELECT id FROM tags WHERE name = ?", tag)
		if err := rrow.Scan(&tagID); err != nil {
			return err
		}
		if _, err := trx.Exec("INSERT OR IGNORE INTO snippet_tags (snippet_id, tag_id) VALUES (?, ?)", snippetID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// AddTag adds a tag (creating it if necessary) and associates it with the snippet.
func (r *Repository) AddTag(snippetID int64, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if _, err := trx.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", tag); err != nil {
		return err
	}
	var tagID int64
	row := trx.QueryRow("SELECT id FROM tags WHERE name = ?", tag)
	if err := row.Scan(&tagID); err != nil {
		return err
	}
	if _, err := trx.Exec("INSERT OR IGNORE INTO snippet_tags (snippet_id, tag_id) VALUES (?, ?)", snippetID, tagID); err != nil {
		return err
	}
	return trx.Commit()
}

// RemoveTag removes an association between a tag and a snippet.
// Removing a tag that is not associated is not an error.
func (r *Repository) RemoveTag(snippetID int64, tag string) error {
	row := r.db.QueryRow("SELECT id FROM tags WHERE name = ?", tag)
	var tagID int64
	if err := row.Scan(&tagID); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	_, err := r.db.Exec("DELETE FROM snippet_tags WHERE snippet_id = ? AND tag_id = ?", snippetID, tagID)
	return err
}

// ListSnippetsByTag returns all snippets that have the given tag.
func (r *Repository) ListSnippetsByTag(tag string) ([]Snip, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.name, s.description, s.instruction, s.body, s.author_name, s.author_email, s.created_at, s.last_shown
		FROM snippets s
		JOIN snippet_tags st ON s.id = st.snippet_id
		JOIN tags t ON t.id = st.tag_id
		WHERE t.name = ?
		ORDER BY s.created_at DESC
	`, tag)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Snip
	for rows.Next() {
		var s Snip
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Instruction, &s.Body, &s.AuthorName, &s.AuthorEmail, &s.CreatedAt, &s.LastShown); err != nil {
			return nil, err
		}
		if err := r.attachTags(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SearchSnippets searches for snippets by name, description, or body content.
func (r *Repository) SearchSnippets(query string) ([]Snip, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(`
		SELECT id, name, description, instruction, body, author_name, author_email, created_at, last_shown
		FROM snippets
		WHERE name LIKE ? OR description LIKE ? OR body LIKE ?
		ORDER BY created_at DESC
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Snip
	for rows.Next() {
		var s Snip
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Instruction, &s.Body, &s.AuthorName, &s.AuthorEmail, &s.CreatedAt, &s.LastShown); err != nil {
			return nil, err
		}
		if err := r.attachTags(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
