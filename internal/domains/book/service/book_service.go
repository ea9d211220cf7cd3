package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	authorModel "catalog-backend/internal/domains/author/model"
	authorRepo "catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/pkg/database"
)

// bookService implements ServiceInterface
type bookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorRepo.RepositoryInterface
	txManager  database.Transactor
	now        func() time.Time
}

func NewBookService(repo repository.RepositoryInterface, authors authorRepo.RepositoryInterface, tx database.Transactor) ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authors,
		txManager:  tx,
		now:        time.Now,
	}
}

// ═══════════════════════════════════════════════════════════
// PUBLISH
// ═══════════════════════════════════════════════════════════

func (s *bookService) PublishBook(ctx context.Context, req model.CreateBookRequest) (int64, error) {
	if err := model.ValidateIsbn(req.Isbn); err != nil {
		return 0, err
	}
	if len(req.Authors) == 0 {
		return 0, model.ErrEmptyAuthorList
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		authors := make([]authorModel.Author, 0, len(req.Authors))
		for _, name := range req.Authors {
			a, err := s.authorRepo.FindByName(ctx, name.FirstName, name.LastName)
			if err != nil {
				return err
			}
			authors = append(authors, a)
		}

		b, err := model.NewBook(req.Isbn, req.Title, req.Genre, authors)
		if err != nil {
			return err
		}
		return s.repo.Create(ctx, b)
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("isbn", req.Isbn).
		Int("authors", len(req.Authors)).
		Msg("Book published")
	return req.Isbn, nil
}

// ═══════════════════════════════════════════════════════════
// LOOKUPS
// ═══════════════════════════════════════════════════════════

func (s *bookService) FindByIsbn(ctx context.Context, isbn int64) (model.Book, error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (model.Book, error) {
		return s.repo.GetByIsbn(ctx, isbn)
	})
}

func (s *bookService) FindByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[model.Book], error) {
	result, err := database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[model.Book], error) {
		return s.repo.ListByTitle(ctx, title, page)
	})
	if err != nil {
		return paging.Page[model.Book]{}, err
	}
	if len(result.Items) == 0 {
		return paging.Page[model.Book]{}, model.ErrBookTitleNotFound
	}
	return result, nil
}

func (s *bookService) FindByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[model.Book], error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[model.Book], error) {
		return s.repo.ListByGenre(ctx, genre, page)
	})
}

func (s *bookService) FindByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[model.Book], error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[model.Book], error) {
		return s.repo.ListByAuthor(ctx, authorID, page)
	})
}

func (s *bookService) FindAll(ctx context.Context, page paging.Request) (paging.Page[model.Book], error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[model.Book], error) {
		return s.repo.ListAll(ctx, page)
	})
}

func (s *bookService) FindBookAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) ([]authorModel.AuthorView, error) {
		exists, err := s.repo.ExistsByIsbn(ctx, isbn)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrBookNotFound
		}
		return s.repo.FindAuthors(ctx, isbn, sort)
	})
}

// ═══════════════════════════════════════════════════════════
// REPORTING
// ═══════════════════════════════════════════════════════════

func (s *bookService) RecentIsbns(ctx context.Context, window time.Duration) ([]int64, error) {
	since := s.now().UTC().Add(-window)
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) ([]int64, error) {
		return s.repo.FindRecentIsbns(ctx, since)
	})
}
