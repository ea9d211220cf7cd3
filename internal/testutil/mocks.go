// Package testutil holds testify doubles shared by service and handler tests
package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	authorModel "catalog-backend/internal/domains/author/model"
	bookModel "catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
)

// ════════════════════════════════════════════════════════════════
// Transactor
// ════════════════════════════════════════════════════════════════

// Transactor runs fn inline and counts how units of work were opened
type Transactor struct {
	Writes int
	Reads  int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Writes++
	return fn(ctx)
}

func (t *Transactor) WithinReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Reads++
	return fn(ctx)
}

// ════════════════════════════════════════════════════════════════
// Repositories
// ════════════════════════════════════════════════════════════════

type AuthorRepository struct {
	mock.Mock
}

func (m *AuthorRepository) Create(ctx context.Context, a authorModel.Author) (authorModel.Author, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(authorModel.Author), args.Error(1)
}

func (m *AuthorRepository) GetByID(ctx context.Context, id int64) (authorModel.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(authorModel.Author), args.Error(1)
}

func (m *AuthorRepository) FindByName(ctx context.Context, firstName, lastName string) (authorModel.Author, error) {
	args := m.Called(ctx, firstName, lastName)
	return args.Get(0).(authorModel.Author), args.Error(1)
}

func (m *AuthorRepository) Update(ctx context.Context, a authorModel.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AuthorRepository) CountBooks(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AuthorRepository) List(ctx context.Context, sort authorModel.AuthorSort, page paging.Request) (paging.Page[authorModel.AuthorView], error) {
	args := m.Called(ctx, sort, page)
	return args.Get(0).(paging.Page[authorModel.AuthorView]), args.Error(1)
}

func (m *AuthorRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) Create(ctx context.Context, b bookModel.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookRepository) GetByIsbn(ctx context.Context, isbn int64) (bookModel.Book, error) {
	args := m.Called(ctx, isbn)
	return args.Get(0).(bookModel.Book), args.Error(1)
}

func (m *BookRepository) ExistsByIsbn(ctx context.Context, isbn int64) (bool, error) {
	args := m.Called(ctx, isbn)
	return args.Bool(0), args.Error(1)
}

func (m *BookRepository) ListAll(ctx context.Context, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookRepository) ListByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, title, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookRepository) ListByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, genre, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookRepository) ListByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, authorID, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookRepository) FindAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error) {
	args := m.Called(ctx, isbn, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authorModel.AuthorView), args.Error(1)
}

func (m *BookRepository) FindRecentIsbns(ctx context.Context, since time.Time) ([]int64, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *BookRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ════════════════════════════════════════════════════════════════
// Services
// ════════════════════════════════════════════════════════════════

type AuthorService struct {
	mock.Mock
}

func (m *AuthorService) GetAuthor(ctx context.Context, id int64) (authorModel.AuthorView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(authorModel.AuthorView), args.Error(1)
}

func (m *AuthorService) AddAuthor(ctx context.Context, req authorModel.CreateAuthorRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AuthorService) PatchAuthor(ctx context.Context, id int64, document []byte) (authorModel.AuthorView, error) {
	args := m.Called(ctx, id, document)
	return args.Get(0).(authorModel.AuthorView), args.Error(1)
}

func (m *AuthorService) ListAuthors(ctx context.Context, sort authorModel.AuthorSort, page paging.Request) (paging.Page[authorModel.AuthorView], error) {
	args := m.Called(ctx, sort, page)
	return args.Get(0).(paging.Page[authorModel.AuthorView]), args.Error(1)
}

func (m *AuthorService) FindBooks(ctx context.Context, id int64, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, id, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

type BookService struct {
	mock.Mock
}

func (m *BookService) PublishBook(ctx context.Context, req bookModel.CreateBookRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookService) FindByIsbn(ctx context.Context, isbn int64) (bookModel.Book, error) {
	args := m.Called(ctx, isbn)
	return args.Get(0).(bookModel.Book), args.Error(1)
}

func (m *BookService) FindByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, title, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookService) FindByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, genre, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookService) FindByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, authorID, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookService) FindAll(ctx context.Context, page paging.Request) (paging.Page[bookModel.Book], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(paging.Page[bookModel.Book]), args.Error(1)
}

func (m *BookService) FindBookAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error) {
	args := m.Called(ctx, isbn, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authorModel.AuthorView), args.Error(1)
}

func (m *BookService) RecentIsbns(ctx context.Context, window time.Duration) ([]int64, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
