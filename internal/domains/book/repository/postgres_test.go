package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "catalog-backend/internal/domains/author/model"
	authorRepo "catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/infrastructure/database/dbtest"
	"catalog-backend/internal/shared/paging"
)

type fixture struct {
	books   RepositoryInterface
	authors authorRepo.RepositoryInterface
}

func setup(t *testing.T) fixture {
	pool := dbtest.Open(t, "book_repository_test")
	f := fixture{
		books:   NewPostgresRepository(pool),
		authors: authorRepo.NewPostgresRepository(pool),
	}
	ctx := context.Background()
	require.NoError(t, f.books.DeleteAll(ctx))
	require.NoError(t, f.authors.DeleteAll(ctx))
	return f
}

func (f fixture) author(t *testing.T, first, last string) authorModel.Author {
	t.Helper()
	a, err := authorModel.NewAuthor(first, last)
	require.NoError(t, err)
	created, err := f.authors.Create(context.Background(), a)
	require.NoError(t, err)
	return created
}

func (f fixture) book(t *testing.T, isbn int64, title, genre string, authors ...authorModel.Author) model.Book {
	t.Helper()
	b, err := model.NewBook(isbn, title, genre, authors)
	require.NoError(t, err)
	require.NoError(t, f.books.Create(context.Background(), b))
	// keeps created_at strictly increasing between inserts
	time.Sleep(2 * time.Millisecond)
	return b
}

var firstPage = paging.Request{Page: 0, Size: 20}

func isbnsOf(books []model.Book) []int64 {
	out := make([]int64, len(books))
	for i, b := range books {
		out[i] = b.Isbn()
	}
	return out
}

func TestPostgresRepository_CreateAndGetByIsbn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	marko := f.author(t, "Marko", "Marulic")
	ivan := f.author(t, "Ivan", "Ivanko")
	created := f.book(t, 9799100903038, "Judita", "Epic", ivan, marko)

	found, err := f.books.GetByIsbn(ctx, 9799100903038)
	require.NoError(t, err)
	assert.True(t, created.Equal(found))
	assert.Equal(t, "Judita", found.Title())
	assert.Equal(t, "Epic", found.Genre())
	assert.True(t, created.CreatedAt().Equal(found.CreatedAt()))

	authors := found.Authors()
	require.Len(t, authors, 2)
	assert.Equal(t, ivan.ID(), authors[0].ID())
	assert.Equal(t, marko.ID(), authors[1].ID())

	_, err = f.books.GetByIsbn(ctx, 9796775874984)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	exists, err := f.books.ExistsByIsbn(ctx, 9799100903038)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostgresRepository_CreateDuplicateIsbn(t *testing.T) {
	f := setup(t)

	marko := f.author(t, "Marko", "Marulic")
	f.book(t, 9799100903038, "Judita", "Epic", marko)

	again, err := model.NewBook(9799100903038, "Other", "Drama", []authorModel.Author{marko})
	require.NoError(t, err)
	assert.ErrorIs(t, f.books.Create(context.Background(), again), model.ErrDuplicateIsbn)
}

func TestPostgresRepository_CreateUnknownAuthorWritesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ghost := authorModel.RestoreAuthor(4242, "Ghost", "Writer", time.Now().UTC())
	b, err := model.NewBook(9799100903038, "Nowhere", "Mystery", []authorModel.Author{ghost})
	require.NoError(t, err)

	assert.ErrorIs(t, f.books.Create(ctx, b), authorModel.ErrAuthorNotFound)

	exists, err := f.books.ExistsByIsbn(ctx, 9799100903038)
	require.NoError(t, err)
	assert.False(t, exists, "book row must be rolled back")
}

func TestPostgresRepository_Listings(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	marko := f.author(t, "Marko", "Marulic")
	ivan := f.author(t, "Ivan", "Ivanko")
	f.book(t, 9799100903038, "Judita", "Epic", marko)
	f.book(t, 9796775874984, "Davidijada", "epic", marko, ivan)
	f.book(t, 9798583295777, "Judita", "Drama", ivan)

	all, err := f.books.ListAll(ctx, firstPage)
	require.NoError(t, err)
	assert.Equal(t, []int64{9798583295777, 9796775874984, 9799100903038}, isbnsOf(all.Items))
	assert.Equal(t, int64(3), all.TotalElements)

	byTitle, err := f.books.ListByTitle(ctx, "Judita", firstPage)
	require.NoError(t, err)
	assert.Equal(t, []int64{9798583295777, 9799100903038}, isbnsOf(byTitle.Items))

	byGenre, err := f.books.ListByGenre(ctx, "EPIC", firstPage)
	require.NoError(t, err)
	assert.Equal(t, []int64{9796775874984, 9799100903038}, isbnsOf(byGenre.Items))

	noGenre, err := f.books.ListByGenre(ctx, "Poetry", firstPage)
	require.NoError(t, err)
	assert.Empty(t, noGenre.Items)
	assert.Zero(t, noGenre.TotalElements)

	byAuthor, err := f.books.ListByAuthor(ctx, marko.ID(), firstPage)
	require.NoError(t, err)
	assert.Equal(t, []int64{9796775874984, 9799100903038}, isbnsOf(byAuthor.Items))
	assert.Equal(t, int64(2), byAuthor.TotalElements)

	paged, err := f.books.ListAll(ctx, paging.Request{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{9799100903038}, isbnsOf(paged.Items))
	assert.Equal(t, 2, paged.TotalPages)
	assert.Len(t, paged.Items[0].Authors(), 1)
}

func TestPostgresRepository_FindAuthors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	marko := f.author(t, "Marko", "Marulic")
	time.Sleep(2 * time.Millisecond)
	ivan := f.author(t, "Ivan", "Ivanko")
	f.book(t, 9799100903038, "Judita", "Epic", marko, ivan)
	f.book(t, 9796775874984, "Davidijada", "Epic", marko)

	byCreated, err := f.books.FindAuthors(ctx, 9799100903038, authorModel.SortByCreatedAt)
	require.NoError(t, err)
	require.Len(t, byCreated, 2)
	assert.Equal(t, ivan.ID(), byCreated[0].Author.ID())
	assert.Equal(t, marko.ID(), byCreated[1].Author.ID())

	byCount, err := f.books.FindAuthors(ctx, 9799100903038, authorModel.SortByNumOfBooks)
	require.NoError(t, err)
	require.Len(t, byCount, 2)
	assert.Equal(t, marko.ID(), byCount[0].Author.ID())
	assert.Equal(t, int64(2), byCount[0].NumOfBooksWritten)
	assert.Equal(t, int64(1), byCount[1].NumOfBooksWritten)
}

func TestPostgresRepository_FindRecentIsbns(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	marko := f.author(t, "Marko", "Marulic")
	before := time.Now().UTC().Add(-time.Second)
	f.book(t, 9799100903038, "Judita", "Epic", marko)
	f.book(t, 9796775874984, "Davidijada", "Epic", marko)

	recent, err := f.books.FindRecentIsbns(ctx, before)
	require.NoError(t, err)
	assert.Equal(t, []int64{9796775874984, 9799100903038}, recent)

	none, err := f.books.FindRecentIsbns(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostgresRepository_DeleteAll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	marko := f.author(t, "Marko", "Marulic")
	f.book(t, 9799100903038, "Judita", "Epic", marko)

	require.NoError(t, f.books.DeleteAll(ctx))

	_, err := f.books.GetByIsbn(ctx, 9799100903038)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	all, err := f.books.ListAll(ctx, firstPage)
	require.NoError(t, err)
	assert.Zero(t, all.TotalElements)

	count, err := f.authors.CountBooks(ctx, marko.ID())
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = f.authors.GetByID(ctx, marko.ID())
	assert.NoError(t, err, "authors survive a book purge")
}
