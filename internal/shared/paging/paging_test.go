package paging

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		size    int
		wantErr bool
	}{
		{"first page", 0, 20, false},
		{"later page", 3, 5, false},
		{"max size", 0, MaxSize, false},
		{"negative page", -1, 20, true},
		{"zero size", 0, 0, true},
		{"negative size", 0, -4, true},
		{"too large", 0, MaxSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequest(tt.page, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequest_Offset(t *testing.T) {
	r, err := NewRequest(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, r.Offset())
	assert.Equal(t, 10, r.Limit())
}

func TestNewPage_Metadata(t *testing.T) {
	req := Request{Page: 1, Size: 2}

	p := NewPage([]int{3, 4}, 5, req)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 2, p.Size)

	empty := NewPage[int](nil, 0, req)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestMap(t *testing.T) {
	p := NewPage([]int{1, 2}, 2, Request{Page: 0, Size: 20})

	mapped := Map(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, mapped.Items)
	assert.Equal(t, p.TotalElements, mapped.TotalElements)
	assert.Equal(t, p.TotalPages, mapped.TotalPages)
}
