package model

import "catalog-backend/internal/shared/apperr"

var (
	// ISBN Errors
	ErrIsbnLength      = apperr.New(apperr.KindValidation, "ISBN_LENGTH", "Book ISBN length must be 13 digits")
	ErrIsbnPrefix      = apperr.New(apperr.KindValidation, "ISBN_PREFIX", "Book ISBN EAN Prefix is wrong")
	ErrIsbnCheckDigit  = apperr.New(apperr.KindValidation, "ISBN_CHECK_DIGIT", "Book ISBN check digit is wrong")
	ErrEmptyAuthorList = apperr.New(apperr.KindValidation, "EMPTY_AUTHOR_LIST", "Book must have at least one author")

	// Lookup Errors
	ErrBookNotFound      = apperr.New(apperr.KindNotFound, "BOOK_NOT_FOUND", "No book with given isbn found")
	ErrBookTitleNotFound = apperr.New(apperr.KindNotFound, "BOOK_TITLE_NOT_FOUND", "No book found with given title")

	// Business Rule Errors
	ErrDuplicateIsbn = apperr.New(apperr.KindConflict, "DUPLICATE_ISBN", "Book with given isbn already exists")
)
