package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// patchDocument is the tree a patch operates on
type patchDocument struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
}

var immutablePaths = []string{"/id", "/createdAt"}

// ApplyPatch applies an RFC 6902 document to a stored author.
// The result is either a fully applied and re-validated author or
// ErrMalformedPatch; current is never modified.
func ApplyPatch(current Author, document []byte) (Author, error) {
	if !current.identity.IsPersisted() {
		return Author{}, ErrMalformedPatch.WithCause(errors.New("author is not persisted"))
	}

	patch, err := jsonpatch.DecodePatch(document)
	if err != nil {
		return Author{}, ErrMalformedPatch.WithCause(err)
	}
	if err := checkImmutablePaths(patch); err != nil {
		return Author{}, ErrMalformedPatch.WithCause(err)
	}

	original, err := json.Marshal(patchDocument{
		ID:        current.ID(),
		FirstName: current.firstName,
		LastName:  current.lastName,
		CreatedAt: current.createdAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return Author{}, fmt.Errorf("failed to encode author: %w", err)
	}

	patched, err := patch.Apply(original)
	if err != nil {
		return Author{}, ErrMalformedPatch.WithCause(err)
	}

	var doc patchDocument
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Author{}, ErrMalformedPatch.WithCause(err)
	}

	if err := validateNames(doc.FirstName, doc.LastName); err != nil {
		return Author{}, ErrMalformedPatch.WithCause(err)
	}

	return Author{
		identity:  current.identity,
		firstName: doc.FirstName,
		lastName:  doc.LastName,
		createdAt: current.createdAt,
	}, nil
}

func checkImmutablePaths(patch jsonpatch.Patch) error {
	for i, op := range patch {
		path, err := op.Path()
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		if touchesIdentity(path) {
			return fmt.Errorf("operation %d: path %q is read-only", i, path)
		}

		kind := op.Kind()
		if kind == "move" || kind == "copy" {
			from, err := op.From()
			if err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
			if touchesIdentity(from) {
				return fmt.Errorf("operation %d: path %q is read-only", i, from)
			}
		}
	}
	return nil
}

// touchesIdentity reports whether path is the document root or lies under
// an immutable field
func touchesIdentity(path string) bool {
	if path == "" {
		return true
	}
	for _, p := range immutablePaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
