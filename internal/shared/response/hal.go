package response

import (
	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/paging"
)

// BasePath prefixes every link the API renders
const BasePath = "/api/v1"

const halContentType = "application/hal+json"

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

func NewLinks(pairs ...string) Links {
	links := make(Links, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		links[pairs[i]] = Link{Href: pairs[i+1]}
	}
	return links
}

type PageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// PagedModel is a HAL collection with page metadata
type PagedModel struct {
	Embedded map[string]any `json:"_embedded"`
	Page     PageMetadata   `json:"page"`
	Links    Links          `json:"_links"`
}

// CollectionModel is a HAL collection without paging
type CollectionModel struct {
	Embedded map[string]any `json:"_embedded"`
	Links    Links          `json:"_links"`
}

func NewPagedModel[T, R any](name string, p paging.Page[T], self string, render func(T) R) PagedModel {
	items := paging.Map(p, render).Items
	return PagedModel{
		Embedded: map[string]any{name: items},
		Page: PageMetadata{
			Size:          p.Size,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
			Number:        p.Number,
		},
		Links: NewLinks("self", self),
	}
}

func NewCollectionModel[T, R any](name string, items []T, self string, render func(T) R) CollectionModel {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = render(item)
	}
	return CollectionModel{
		Embedded: map[string]any{name: out},
		Links:    NewLinks("self", self),
	}
}

// HAL writes body as application/hal+json
func HAL(c *gin.Context, statusCode int, body any) {
	c.Header("Content-Type", halContentType)
	c.JSON(statusCode, body)
}

// SelfLink is the path and query of the current request
func SelfLink(c *gin.Context) string {
	return c.Request.URL.RequestURI()
}
