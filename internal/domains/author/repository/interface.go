package repository

import (
	"context"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/paging"
)

// RepositoryInterface defines author storage and the aggregate author queries.
// Every method runs on the transaction bound to ctx when there is one.
type RepositoryInterface interface {
	// Create inserts an unsaved author and returns it persisted
	Create(ctx context.Context, a model.Author) (model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when no row matches
	GetByID(ctx context.Context, id int64) (model.Author, error)

	// FindByName matches first and last name exactly.
	// Returns model.ErrAuthorNameNotFound when nobody matches.
	FindByName(ctx context.Context, firstName, lastName string) (model.Author, error)

	// Update overwrites the names of a stored author
	Update(ctx context.Context, a model.Author) error

	// CountBooks counts association rows, 0 for an author without books
	CountBooks(ctx context.Context, id int64) (int64, error)

	// List pages through authors with their derived book counts
	List(ctx context.Context, sort model.AuthorSort, page paging.Request) (paging.Page[model.AuthorView], error)

	// DeleteAll purges authors and their associations (test/reset only)
	DeleteAll(ctx context.Context) error
}
