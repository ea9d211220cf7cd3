package service

import (
	"context"

	"catalog-backend/internal/domains/author/model"
	bookModel "catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
)

// ServiceInterface defines the author use cases
type ServiceInterface interface {
	// GetAuthor returns the author with its derived book count
	GetAuthor(ctx context.Context, id int64) (model.AuthorView, error)

	// AddAuthor validates and stores a new author, returning its id
	AddAuthor(ctx context.Context, req model.CreateAuthorRequest) (int64, error)

	// PatchAuthor applies an RFC 6902 document and stores the result.
	// Concurrent patches of one author are last-write-wins.
	PatchAuthor(ctx context.Context, id int64, document []byte) (model.AuthorView, error)

	// ListAuthors pages through authors in the requested order
	ListAuthors(ctx context.Context, sort model.AuthorSort, page paging.Request) (paging.Page[model.AuthorView], error)

	// FindBooks pages through an author's books, newest first
	FindBooks(ctx context.Context, id int64, page paging.Request) (paging.Page[bookModel.Book], error)
}
