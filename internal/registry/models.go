// Package registry provides the snippet registry.
package registry

import "database/sql"

// Snip is a stored paste-ready fix snippet.
type Snip struct {
	ID          int64
	Name        string
	Description sql.NullString
	Instruction string
	Body        string
	AuthorName  sql.NullString
	AuthorEmail sql.NullString
	CreatedAt   string
	LastShown   sql.NullString
	Tags        []string
}
