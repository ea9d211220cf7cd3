package model

// AuthorSort is the closed set of orderings for author listings
type AuthorSort int

const (
	SortByCreatedAt AuthorSort = iota
	SortByNumOfBooks
)

const numOfBooksParam = "numOfBooks"

// ParseAuthorSort accepts "" (newest first) and "numOfBooks" (most books first)
func ParseAuthorSort(raw string) (AuthorSort, error) {
	switch raw {
	case "":
		return SortByCreatedAt, nil
	case numOfBooksParam:
		return SortByNumOfBooks, nil
	default:
		return 0, ErrInvalidSortType
	}
}

func (s AuthorSort) String() string {
	if s == SortByNumOfBooks {
		return numOfBooksParam
	}
	return ""
}
