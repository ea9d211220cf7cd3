package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/repository"
	bookModel "catalog-backend/internal/domains/book/model"
	bookRepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/pkg/database"
)

// authorService implements ServiceInterface
type authorService struct {
	repo      repository.RepositoryInterface
	bookRepo  bookRepo.RepositoryInterface
	txManager database.Transactor
}

func NewAuthorService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface, tx database.Transactor) ServiceInterface {
	return &authorService{
		repo:      repo,
		bookRepo:  books,
		txManager: tx,
	}
}

// ═══════════════════════════════════════════════════════════
// READ
// ═══════════════════════════════════════════════════════════

func (s *authorService) GetAuthor(ctx context.Context, id int64) (model.AuthorView, error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (model.AuthorView, error) {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return model.AuthorView{}, err
		}
		return s.withCount(ctx, a)
	})
}

func (s *authorService) ListAuthors(ctx context.Context, sort model.AuthorSort, page paging.Request) (paging.Page[model.AuthorView], error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[model.AuthorView], error) {
		return s.repo.List(ctx, sort, page)
	})
}

func (s *authorService) FindBooks(ctx context.Context, id int64, page paging.Request) (paging.Page[bookModel.Book], error) {
	return database.ReadOnlyResult(ctx, s.txManager, func(ctx context.Context) (paging.Page[bookModel.Book], error) {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return paging.Page[bookModel.Book]{}, err
		}
		return s.bookRepo.ListByAuthor(ctx, id, page)
	})
}

// ═══════════════════════════════════════════════════════════
// WRITE
// ═══════════════════════════════════════════════════════════

func (s *authorService) AddAuthor(ctx context.Context, req model.CreateAuthorRequest) (int64, error) {
	a, err := model.NewAuthor(req.FirstName, req.LastName)
	if err != nil {
		return 0, err
	}

	created, err := database.WithTransactionResult(ctx, s.txManager, func(ctx context.Context) (model.Author, error) {
		return s.repo.Create(ctx, a)
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("author_id", created.ID()).
		Msg("Author created")
	return created.ID(), nil
}

// PatchAuthor reads, patches and writes in one transaction. Nothing is
// written unless the patched author passes validation.
func (s *authorService) PatchAuthor(ctx context.Context, id int64, document []byte) (model.AuthorView, error) {
	return database.WithTransactionResult(ctx, s.txManager, func(ctx context.Context) (model.AuthorView, error) {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return model.AuthorView{}, err
		}

		updated, err := model.ApplyPatch(current, document)
		if err != nil {
			return model.AuthorView{}, err
		}

		if err := s.repo.Update(ctx, updated); err != nil {
			return model.AuthorView{}, err
		}
		return s.withCount(ctx, updated)
	})
}

func (s *authorService) withCount(ctx context.Context, a model.Author) (model.AuthorView, error) {
	count, err := s.repo.CountBooks(ctx, a.ID())
	if err != nil {
		return model.AuthorView{}, err
	}
	return model.AuthorView{Author: a, NumOfBooksWritten: count}, nil
}
