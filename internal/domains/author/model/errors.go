package model

import "catalog-backend/internal/shared/apperr"

var (
	// Validation Errors
	ErrBlankField = apperr.New(apperr.KindValidation, "BLANK_FIELD", "Required field must not be blank")

	// Lookup Errors
	ErrAuthorNotFound     = apperr.New(apperr.KindNotFound, "AUTHOR_NOT_FOUND", "Author with given id doesn't exist")
	ErrAuthorNameNotFound = apperr.New(apperr.KindNotFound, "AUTHOR_NAME_NOT_FOUND", "Author with given name doesn't exist")

	// Request Errors
	ErrMalformedPatch  = apperr.New(apperr.KindMalformedPatch, "MALFORMED_PATCH", "Given author patch has wrong data")
	ErrInvalidSortType = apperr.New(apperr.KindInvalidSortType, "INVALID_SORT_TYPE", "Wrong author sort type in request")
)
