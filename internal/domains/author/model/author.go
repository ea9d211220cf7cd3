package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Identity tells whether an author has been stored yet.
// The zero value is Unsaved.
type Identity struct {
	id int64
}

func Unsaved() Identity {
	return Identity{}
}

func Persisted(id int64) Identity {
	return Identity{id: id}
}

// Value returns the storage id and whether the author is persisted
func (i Identity) Value() (int64, bool) {
	return i.id, i.id > 0
}

func (i Identity) IsPersisted() bool {
	return i.id > 0
}

// Author is an immutable catalog author.
// Changes produce a new value through NewAuthor, RestoreAuthor or ApplyPatch.
type Author struct {
	identity  Identity
	firstName string
	lastName  string
	createdAt time.Time
}

// NotBlank rejects strings made of whitespace only.
// Empty strings are left to validation.Required.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NewAuthor builds an unsaved author, stamping its creation time
func NewAuthor(firstName, lastName string) (Author, error) {
	if err := validateNames(firstName, lastName); err != nil {
		return Author{}, err
	}
	return Author{
		identity:  Unsaved(),
		firstName: firstName,
		lastName:  lastName,
		createdAt: time.Now().UTC().Truncate(time.Microsecond),
	}, nil
}

// RestoreAuthor rebuilds a stored author. Storage rows are trusted.
func RestoreAuthor(id int64, firstName, lastName string, createdAt time.Time) Author {
	return Author{
		identity:  Persisted(id),
		firstName: firstName,
		lastName:  lastName,
		createdAt: createdAt,
	}
}

func validateNames(firstName, lastName string) error {
	names := struct {
		FirstName string
		LastName  string
	}{firstName, lastName}

	err := validation.ValidateStruct(&names,
		validation.Field(&names.FirstName, validation.Required.Error("must not be blank"), NotBlank),
		validation.Field(&names.LastName, validation.Required.Error("must not be blank"), NotBlank),
	)
	if err != nil {
		return ErrBlankField.WithCause(err)
	}
	return nil
}

func (a Author) Identity() Identity {
	return a.identity
}

// ID returns the storage id, or 0 for an unsaved author
func (a Author) ID() int64 {
	id, _ := a.identity.Value()
	return id
}

func (a Author) FirstName() string {
	return a.firstName
}

func (a Author) LastName() string {
	return a.lastName
}

func (a Author) CreatedAt() time.Time {
	return a.createdAt
}

// Equal compares identities only. Unsaved authors equal nothing.
func (a Author) Equal(other Author) bool {
	id, ok := a.identity.Value()
	if !ok {
		return false
	}
	otherID, ok := other.identity.Value()
	return ok && id == otherID
}

// AuthorView is an author plus its derived book count
type AuthorView struct {
	Author            Author
	NumOfBooksWritten int64
}
