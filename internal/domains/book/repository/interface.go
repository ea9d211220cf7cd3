package repository

import (
	"context"
	"time"

	authorModel "catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
)

// RepositoryInterface defines book storage and the author/book join queries.
// Book listings are ordered newest first with ISBN as tie-break.
type RepositoryInterface interface {
	// Create inserts the book and its author associations atomically.
	// Returns model.ErrDuplicateIsbn when the ISBN is taken.
	Create(ctx context.Context, b model.Book) error

	// GetByIsbn returns model.ErrBookNotFound when no row matches
	GetByIsbn(ctx context.Context, isbn int64) (model.Book, error)
	ExistsByIsbn(ctx context.Context, isbn int64) (bool, error)

	ListAll(ctx context.Context, page paging.Request) (paging.Page[model.Book], error)
	ListByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[model.Book], error)
	ListByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[model.Book], error)
	ListByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[model.Book], error)

	// FindAuthors lists the authors of a book with their derived counts, unpaginated
	FindAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error)

	// FindRecentIsbns returns ISBNs of books created at or after since
	FindRecentIsbns(ctx context.Context, since time.Time) ([]int64, error)

	// DeleteAll purges books and their associations (test/reset only)
	DeleteAll(ctx context.Context) error
}
