package service

import (
	"context"
	"time"

	authorModel "catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
)

// ServiceInterface defines the book use cases
type ServiceInterface interface {
	// PublishBook validates the ISBN, resolves the named authors and stores
	// the book. Nothing is written when any step fails.
	PublishBook(ctx context.Context, req model.CreateBookRequest) (int64, error)

	FindByIsbn(ctx context.Context, isbn int64) (model.Book, error)

	// FindByTitle is a lookup: no match is model.ErrBookTitleNotFound
	FindByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[model.Book], error)

	// FindByGenre, FindByAuthor and FindAll return empty pages when nothing matches
	FindByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[model.Book], error)
	// FindByAuthor does not check that the author exists. The HTTP route for
	// an author's books goes through the author service, which does.
	FindByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[model.Book], error)
	FindAll(ctx context.Context, page paging.Request) (paging.Page[model.Book], error)

	// FindBookAuthors lists a book's authors with their derived counts
	FindBookAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error)

	// RecentIsbns returns ISBNs of books created within the trailing window
	RecentIsbns(ctx context.Context, window time.Duration) ([]int64, error)
}
