package model

import (
	"strconv"

	"catalog-backend/internal/shared/response"
)

// TimeLayout is how resources render createdAt
const TimeLayout = "2006-01-02T15:04:05"

// CreateAuthorRequest is the payload for adding an author
type CreateAuthorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthorResponse struct {
	ID                int64          `json:"id"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	CreatedAt         string         `json:"createdAt"`
	NumOfBooksWritten int64          `json:"numOfBooksWritten"`
	Links             response.Links `json:"_links"`
}

func AuthorPath(id int64) string {
	return response.BasePath + "/authors/" + strconv.FormatInt(id, 10)
}

func (v AuthorView) ToResponse() AuthorResponse {
	self := AuthorPath(v.Author.ID())
	return AuthorResponse{
		ID:                v.Author.ID(),
		FirstName:         v.Author.FirstName(),
		LastName:          v.Author.LastName(),
		CreatedAt:         v.Author.CreatedAt().Format(TimeLayout),
		NumOfBooksWritten: v.NumOfBooksWritten,
		Links:             response.NewLinks("self", self, "books", self+"/books"),
	}
}
