package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAuthor() Author {
	return RestoreAuthor(3, "Goran", "Goranic", time.Date(2023, 11, 5, 8, 30, 0, 0, time.UTC))
}

func TestApplyPatch_ReplaceFirstName(t *testing.T) {
	current := storedAuthor()

	updated, err := ApplyPatch(current, []byte(`[{"op":"replace","path":"/firstName","value":"Duro"}]`))
	require.NoError(t, err)

	assert.Equal(t, "Duro", updated.FirstName())
	assert.Equal(t, current.LastName(), updated.LastName())
	assert.Equal(t, current.ID(), updated.ID())
	assert.Equal(t, current.CreatedAt(), updated.CreatedAt())
	assert.Equal(t, "Goran", current.FirstName(), "input must stay untouched")
}

func TestApplyPatch_OperationsApplyInOrder(t *testing.T) {
	doc := `[
		{"op":"replace","path":"/firstName","value":"A"},
		{"op":"replace","path":"/lastName","value":"B"},
		{"op":"replace","path":"/firstName","value":"C"}
	]`

	updated, err := ApplyPatch(storedAuthor(), []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "C", updated.FirstName())
	assert.Equal(t, "B", updated.LastName())
}

func TestApplyPatch_EmptyDocumentKeepsAuthor(t *testing.T) {
	current := storedAuthor()

	updated, err := ApplyPatch(current, []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, current, updated)
}

func TestApplyPatch_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `replace firstName`},
		{"not an array", `{"op":"replace","path":"/firstName","value":"X"}`},
		{"unknown path", `[{"op":"replace","path":"/middleName","value":"X"}]`},
		{"add unknown field", `[{"op":"add","path":"/middleName","value":"X"}]`},
		{"unknown op", `[{"op":"rename","path":"/firstName","value":"X"}]`},
		{"missing path", `[{"op":"replace","value":"X"}]`},
		{"blank value", `[{"op":"replace","path":"/firstName","value":"  "}]`},
		{"null value", `[{"op":"replace","path":"/lastName","value":null}]`},
		{"wrong type", `[{"op":"replace","path":"/firstName","value":42}]`},
		{"remove required", `[{"op":"remove","path":"/lastName"}]`},
		{"replace id", `[{"op":"replace","path":"/id","value":99}]`},
		{"replace createdAt", `[{"op":"replace","path":"/createdAt","value":"2020-01-01T00:00:00Z"}]`},
		{"move id", `[{"op":"move","from":"/id","path":"/firstName"}]`},
		{"copy createdAt", `[{"op":"copy","from":"/createdAt","path":"/firstName"}]`},
		{"copy id", `[{"op":"copy","from":"/id","path":"/lastName"}]`},
		{"replace root", `[{"op":"replace","path":"","value":{}}]`},
		{"failed test op", `[{"op":"test","path":"/firstName","value":"Nobody"}]`},
		{"valid then invalid", `[{"op":"replace","path":"/firstName","value":"Duro"},{"op":"replace","path":"/nope","value":"X"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyPatch(storedAuthor(), []byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPatch)
		})
	}
}

func TestApplyPatch_UnsavedAuthor(t *testing.T) {
	a, err := NewAuthor("Marko", "Marulic")
	require.NoError(t, err)

	_, err = ApplyPatch(a, []byte(`[{"op":"replace","path":"/firstName","value":"Duro"}]`))
	assert.ErrorIs(t, err, ErrMalformedPatch)
}
