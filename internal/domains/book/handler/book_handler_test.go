package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authorModel "catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/internal/testutil"
)

var (
	created     = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	marko       = authorModel.RestoreAuthor(1, "Marko", "Marulic", created)
	defaultPage = paging.Request{Page: 0, Size: paging.DefaultSize}
)

func setupRouter(svc *testutil.BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	books := r.Group("/api/v1/books")
	books.POST("", h.Publish)
	books.GET("", h.List)
	books.GET("/isbn/:isbn", h.GetByIsbn)
	books.GET("/isbn/:isbn/authors", h.Authors)
	books.GET("/title/:title", h.ByTitle)
	books.GET("/genre/:genre", h.ByGenre)
	return r
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	e, ok := decode(t, w)["error"].(map[string]any)
	require.True(t, ok)
	return e["code"].(string)
}

func judita() model.Book {
	return model.RestoreBook(9799100903038, "Judita", "Epic Poetry", created, []authorModel.Author{marko})
}

func TestPublish(t *testing.T) {
	body := `{"isbn":9799100903038,"title":"Judita","genre":"Epic","authors":[{"firstName":"Marko","lastName":"Marulic"}]}`
	want := model.CreateBookRequest{
		Isbn:    9799100903038,
		Title:   "Judita",
		Genre:   "Epic",
		Authors: []model.AuthorName{{FirstName: "Marko", LastName: "Marulic"}},
	}

	t.Run("created", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("PublishBook", mock.Anything, want).Return(int64(9799100903038), nil)

		w := perform(setupRouter(svc), http.MethodPost, "/api/v1/books", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/books/isbn/9799100903038", w.Header().Get("Location"))
	})

	t.Run("unknown author", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("PublishBook", mock.Anything, want).Return(int64(0), authorModel.ErrAuthorNameNotFound)

		w := perform(setupRouter(svc), http.MethodPost, "/api/v1/books", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "AUTHOR_NAME_NOT_FOUND", errorCode(t, w))
	})

	t.Run("bad isbn", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("PublishBook", mock.Anything, mock.Anything).Return(int64(0), model.ErrIsbnCheckDigit)

		w := perform(setupRouter(svc), http.MethodPost, "/api/v1/books", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ISBN_CHECK_DIGIT", errorCode(t, w))
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("PublishBook", mock.Anything, mock.Anything).Return(int64(0), model.ErrDuplicateIsbn)

		w := perform(setupRouter(svc), http.MethodPost, "/api/v1/books", body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("isbn as string", func(t *testing.T) {
		svc := new(testutil.BookService)
		w := perform(setupRouter(svc), http.MethodPost, "/api/v1/books", `{"isbn":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "PublishBook", mock.Anything, mock.Anything)
	})
}

func TestGetByIsbn(t *testing.T) {
	svc := new(testutil.BookService)
	svc.On("FindByIsbn", mock.Anything, int64(9799100903038)).Return(judita(), nil)
	svc.On("FindByIsbn", mock.Anything, int64(9796775874984)).Return(model.Book{}, model.ErrBookNotFound)
	r := setupRouter(svc)

	w := perform(r, http.MethodGet, "/api/v1/books/isbn/9799100903038", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Judita", body["title"])
	assert.Equal(t, "2024-06-01T08:30:00", body["createdAt"])

	links := body["_links"].(map[string]any)
	assert.Equal(t, "/api/v1/books/isbn/9799100903038", links["self"].(map[string]any)["href"])
	assert.Equal(t, "/api/v1/books/isbn/9799100903038/authors", links["authors"].(map[string]any)["href"])
	assert.Equal(t, "/api/v1/books/genre/Epic%20Poetry", links["genre"].(map[string]any)["href"])
	assert.Equal(t, "/api/v1/books/title/Judita", links["title"].(map[string]any)["href"])

	w = perform(r, http.MethodGet, "/api/v1/books/isbn/9796775874984", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", errorCode(t, w))
}

func TestAuthors(t *testing.T) {
	t.Run("sorted by count", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("FindBookAuthors", mock.Anything, int64(9799100903038), authorModel.SortByNumOfBooks).
			Return([]authorModel.AuthorView{{Author: marko, NumOfBooksWritten: 4}}, nil)

		w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books/isbn/9799100903038/authors?sortType=numOfBooks", "")
		require.Equal(t, http.StatusOK, w.Code)
		authors := decode(t, w)["_embedded"].(map[string]any)["authors"].([]any)
		require.Len(t, authors, 1)
		assert.Equal(t, float64(4), authors[0].(map[string]any)["numOfBooksWritten"])
	})

	t.Run("invalid sort type", func(t *testing.T) {
		svc := new(testutil.BookService)
		w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books/isbn/9799100903038/authors?sortType=name", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "FindBookAuthors", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestByTitle(t *testing.T) {
	t.Run("trims", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("FindByTitle", mock.Anything, "Judita Two", defaultPage).
			Return(paging.NewPage([]model.Book{judita()}, 1, defaultPage), nil)

		w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books/title/%20Judita%20Two%20", "")
		require.Equal(t, http.StatusOK, w.Code)
		books := decode(t, w)["_embedded"].(map[string]any)["books"].([]any)
		assert.Len(t, books, 1)
	})

	t.Run("no match", func(t *testing.T) {
		svc := new(testutil.BookService)
		svc.On("FindByTitle", mock.Anything, "Missing", defaultPage).
			Return(paging.Page[model.Book]{}, model.ErrBookTitleNotFound)

		w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books/title/Missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "BOOK_TITLE_NOT_FOUND", errorCode(t, w))
	})
}

func TestByGenre_EmptyPage(t *testing.T) {
	svc := new(testutil.BookService)
	svc.On("FindByGenre", mock.Anything, "Poetry", defaultPage).
		Return(paging.NewPage[model.Book](nil, 0, defaultPage), nil)

	w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books/genre/Poetry", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["_embedded"].(map[string]any)["books"].([]any))
	assert.Equal(t, float64(0), body["page"].(map[string]any)["totalElements"])
}

func TestList(t *testing.T) {
	svc := new(testutil.BookService)
	req := paging.Request{Page: 2, Size: 10}
	svc.On("FindAll", mock.Anything, req).Return(paging.NewPage([]model.Book{judita()}, 21, req), nil)

	w := perform(setupRouter(svc), http.MethodGet, "/api/v1/books?page=2&size=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(3), body["page"].(map[string]any)["totalPages"])
	assert.Equal(t, "/api/v1/books?page=2&size=10", body["_links"].(map[string]any)["self"].(map[string]any)["href"])
}
