// Package content exposes the minimal surface the moderation workflow
// needs over user-generated content: ownership lookup and removal. Content
// CRUD itself lives elsewhere.
package content

import "context"

// Repository operates on a closed set of content tables; the table name is
// resolved from the report's content type, never from user input.
type Repository interface {
	// OwnerID returns the owning user of a content row, or 0 when the row
	// has no recorded owner.
	OwnerID(ctx context.Context, table string, contentID uint) (uint, error)
	// DeleteByID removes the content row. Deleting an absent row is not an
	// error.
	DeleteByID(ctx context.Context, table string, contentID uint) error
}
