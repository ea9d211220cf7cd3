package model

import (
	"net/url"
	"strconv"

	authorModel "catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/response"
)

// AuthorName identifies an existing author by exact first and last name
type AuthorName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateBookRequest is the payload for publishing a book
type CreateBookRequest struct {
	Isbn    int64        `json:"isbn"`
	Title   string       `json:"title"`
	Genre   string       `json:"genre"`
	Authors []AuthorName `json:"authors"`
}

type BookResponse struct {
	Isbn      int64          `json:"isbn"`
	Title     string         `json:"title"`
	Genre     string         `json:"genre"`
	CreatedAt string         `json:"createdAt"`
	Authors   []AuthorName   `json:"authors"`
	Links     response.Links `json:"_links"`
}

func BookPath(isbn int64) string {
	return response.BasePath + "/books/isbn/" + strconv.FormatInt(isbn, 10)
}

func (b Book) ToResponse() BookResponse {
	self := BookPath(b.isbn)
	names := make([]AuthorName, len(b.authors))
	for i, a := range b.authors {
		names[i] = AuthorName{FirstName: a.FirstName(), LastName: a.LastName()}
	}
	return BookResponse{
		Isbn:      b.isbn,
		Title:     b.title,
		Genre:     b.genre,
		CreatedAt: b.createdAt.Format(authorModel.TimeLayout),
		Authors:   names,
		Links: response.NewLinks(
			"self", self,
			"authors", self+"/authors",
			"genre", response.BasePath+"/books/genre/"+url.PathEscape(b.genre),
			"title", response.BasePath+"/books/title/"+url.PathEscape(b.title),
		),
	}
}
