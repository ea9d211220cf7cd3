package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "catalog-backend/internal/domains/author/model"
)

func TestNewBook(t *testing.T) {
	marko := authorModel.RestoreAuthor(1, "Marko", "Marulic", time.Now().UTC())
	unsaved, err := authorModel.NewAuthor("Ivan", "Ivanko")
	require.NoError(t, err)

	tests := []struct {
		name    string
		isbn    int64
		title   string
		genre   string
		authors []authorModel.Author
		want    error
	}{
		{"valid", 9799100903038, "Judita", "Epic", []authorModel.Author{marko}, nil},
		{"bad isbn", 9799100903039, "Judita", "Epic", []authorModel.Author{marko}, ErrIsbnCheckDigit},
		{"blank title", 9799100903038, " ", "Epic", []authorModel.Author{marko}, authorModel.ErrBlankField},
		{"empty genre", 9799100903038, "Judita", "", []authorModel.Author{marko}, authorModel.ErrBlankField},
		{"no authors", 9799100903038, "Judita", "Epic", nil, ErrEmptyAuthorList},
		{"unsaved author", 9799100903038, "Judita", "Epic", []authorModel.Author{unsaved}, authorModel.ErrAuthorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBook(tt.isbn, tt.title, tt.genre, tt.authors)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isbn, b.Isbn())
			assert.Equal(t, tt.title, b.Title())
			assert.Equal(t, tt.genre, b.Genre())
			assert.Len(t, b.Authors(), 1)
			assert.False(t, b.CreatedAt().IsZero())
		})
	}
}

func TestNewBook_DropsRepeatedAuthors(t *testing.T) {
	created := time.Now().UTC()
	marko := authorModel.RestoreAuthor(1, "Marko", "Marulic", created)
	ivan := authorModel.RestoreAuthor(2, "Ivan", "Ivanko", created)

	b, err := NewBook(9799100903038, "Judita", "Epic", []authorModel.Author{ivan, marko, ivan})
	require.NoError(t, err)

	authors := b.Authors()
	require.Len(t, authors, 2)
	assert.Equal(t, int64(2), authors[0].ID())
	assert.Equal(t, int64(1), authors[1].ID())
}

func TestBook_EqualByIsbn(t *testing.T) {
	created := time.Now().UTC()
	a := RestoreBook(9799100903038, "One", "Epic", created, nil)
	b := RestoreBook(9799100903038, "Two", "Drama", created.Add(time.Hour), nil)
	c := RestoreBook(9796775874984, "One", "Epic", created, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
