package paging

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared/apperr"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

var ErrInvalidPage = apperr.New(apperr.KindValidation, "INVALID_PAGE", "Invalid page request")

// Request describes a zero-based page of an ordered result set
type Request struct {
	Page int
	Size int
}

func NewRequest(page, size int) (Request, error) {
	r := Request{Page: page, Size: size}
	if err := r.Validate(); err != nil {
		return Request{}, ErrInvalidPage.WithCause(err)
	}
	return r, nil
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Min(0).Error("page must not be negative")),
		validation.Field(&r.Size,
			validation.Required.Error("size must be positive"),
			validation.Min(1).Error("size must be positive"),
			validation.Max(MaxSize).Error("size must not exceed 100"),
		),
	)
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

func (r Request) Limit() int {
	return r.Size
}

// Page is one slice of a result set plus the metadata needed to walk it
type Page[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	Number        int
	Size          int
}

func NewPage[T any](items []T, total int64, req Request) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:         items,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        req.Page,
		Size:          req.Size,
	}
}

// Map converts the items of a page, keeping its metadata
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[U]{
		Items:         out,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Number:        p.Number,
		Size:          p.Size,
	}
}
