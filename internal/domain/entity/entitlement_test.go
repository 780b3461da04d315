package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitlementsFromOrders_FlattensAndDeduplicates(t *testing.T) {
	orders := []*Order{
		{ID: 1, ProductIDs: []int64{7, 9}},
		nil,
		{ID: 2, ProductIDs: []int64{9, 3}},
		{ID: 3},
	}

	set := EntitlementsFromOrders(orders)

	assert.Equal(t, []int64{3, 7, 9}, set.IDs())
	assert.True(t, set.Has(7))
	assert.False(t, set.Has(4))
}

func TestEntitlementsFromOrders_NoOrders(t *testing.T) {
	set := EntitlementsFromOrders(nil)

	assert.Empty(t, set.IDs())
}

func TestGroupFavoritesByGenre_DefaultsBlankGenre(t *testing.T) {
	entries := []FavoriteEntry{
		{FavoriteID: 1, Product: Product{ID: 1, Genre: "Terror"}},
		{FavoriteID: 2, Product: Product{ID: 2, Genre: "  "}},
		{FavoriteID: 3, Product: Product{ID: 3, Genre: "Terror"}},
	}

	groups := GroupFavoritesByGenre(entries, "Outros")

	assert.Len(t, groups, 2)
	assert.Len(t, groups["Terror"], 2)
	assert.Equal(t, int64(1), groups["Terror"][0].FavoriteID)
	assert.Equal(t, int64(2), groups["Outros"][0].Product.ID)
}

func TestProductFilter_KeyIgnoresCaseAndSpaces(t *testing.T) {
	a := ProductFilter{SearchTerm: " Lovecraft "}
	b := ProductFilter{SearchTerm: "lovecraft"}

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, ProductFilter{Genre: " "}.IsEmpty())
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		raw   string
		want  string
		valid bool
	}{
		{"  Ana.Souza ", "ana.souza", true},
		{"leitor_01", "leitor_01", true},
		{"ab", "ab", false},
		{"com espaço", "com espaço", false},
		{"abcdefghijklmnopqrstuvwxyz01234", "abcdefghijklmnopqrstuvwxyz01234", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeUsername(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}
