package services

import (
	"fmt"
	"testing"

	"go-bookstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStock(t *testing.T) {
	tests := []struct {
		name    string
		current string
		ordered int
		want    string
		invalid bool
	}{
		{name: "exact decrement", current: "10", ordered: 3, want: "7"},
		{name: "decrement to zero", current: "4", ordered: 4, want: "0"},
		{name: "over-decrement clamps at zero", current: "2", ordered: 5, want: "0"},
		{name: "whitespace tolerated", current: " 8 ", ordered: 1, want: "7"},
		{name: "already out of stock", current: "0", ordered: 1, invalid: true},
		{name: "negative stock treated as exhausted", current: "-2", ordered: 1, invalid: true},
		{name: "unparseable stock", current: "many", ordered: 1, invalid: true},
		{name: "empty stock", current: "", ordered: 1, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextStock(tt.current, tt.ordered)
			if tt.invalid {
				require.Error(t, err)
				assert.True(t, IsInvalidState(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByTitle(t *testing.T) {
	var products []models.Product
	for i := 0; i < 15; i++ {
		products = append(products, models.Product{Title: fmt.Sprintf("Go Notebook %d", i)})
	}
	products = append(products, models.Product{Title: "Cooking for Two"})

	t.Run("case-insensitive substring", func(t *testing.T) {
		matched := filterByTitle(products, "COOKING")
		require.Len(t, matched, 1)
		assert.Equal(t, "Cooking for Two", matched[0].Title)
	})

	t.Run("capped at ten results", func(t *testing.T) {
		matched := filterByTitle(products, "notebook")
		assert.Len(t, matched, searchResultCap)
	})

	t.Run("no match is empty, not nil panic", func(t *testing.T) {
		matched := filterByTitle(products, "zzz")
		assert.Empty(t, matched)
	})
}

func TestErrorTaxonomy(t *testing.T) {
	nf := &NotFoundError{Entity: "product", ID: "abc"}
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsNotFound(&InvalidStateError{Reason: "x"}))
	assert.Contains(t, nf.Error(), "product abc")

	se := &StoreError{Op: "find", Err: assert.AnError}
	assert.ErrorIs(t, se, assert.AnError)
	assert.False(t, IsValidation(se))
	assert.True(t, IsValidation(&ValidationError{Message: "bad"}))
}
