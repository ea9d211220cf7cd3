package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	authorModel "catalog-backend/internal/domains/author/model"
)

// Book is an immutable catalog entry identified by its ISBN
type Book struct {
	isbn      int64
	title     string
	genre     string
	authors   []authorModel.Author
	createdAt time.Time
}

// NewBook validates the ISBN, the text fields and the author list.
// Every author must already be stored.
func NewBook(isbn int64, title, genre string, authors []authorModel.Author) (Book, error) {
	if err := ValidateIsbn(isbn); err != nil {
		return Book{}, err
	}

	fields := struct {
		Title string
		Genre string
	}{title, genre}
	err := validation.ValidateStruct(&fields,
		validation.Field(&fields.Title, validation.Required.Error("must not be blank"), authorModel.NotBlank),
		validation.Field(&fields.Genre, validation.Required.Error("must not be blank"), authorModel.NotBlank),
	)
	if err != nil {
		return Book{}, authorModel.ErrBlankField.WithCause(err)
	}

	if len(authors) == 0 {
		return Book{}, ErrEmptyAuthorList
	}
	unique := make([]authorModel.Author, 0, len(authors))
	for _, a := range authors {
		if !a.Identity().IsPersisted() {
			return Book{}, authorModel.ErrAuthorNotFound.WithCause(errors.New("book author is not stored"))
		}
		if !containsAuthor(unique, a) {
			unique = append(unique, a)
		}
	}

	return Book{
		isbn:      isbn,
		title:     title,
		genre:     genre,
		authors:   unique,
		createdAt: time.Now().UTC().Truncate(time.Microsecond),
	}, nil
}

func containsAuthor(authors []authorModel.Author, a authorModel.Author) bool {
	for _, existing := range authors {
		if existing.Equal(a) {
			return true
		}
	}
	return false
}

// RestoreBook rebuilds a stored book without re-validating it
func RestoreBook(isbn int64, title, genre string, createdAt time.Time, authors []authorModel.Author) Book {
	return Book{
		isbn:      isbn,
		title:     title,
		genre:     genre,
		authors:   authors,
		createdAt: createdAt,
	}
}

func (b Book) Isbn() int64 {
	return b.isbn
}

func (b Book) Title() string {
	return b.title
}

func (b Book) Genre() string {
	return b.genre
}

func (b Book) CreatedAt() time.Time {
	return b.createdAt
}

// Authors returns a copy of the author list in its stored order
func (b Book) Authors() []authorModel.Author {
	return append([]authorModel.Author(nil), b.authors...)
}

// Equal compares books by ISBN
func (b Book) Equal(other Book) bool {
	return b.isbn == other.isbn
}
