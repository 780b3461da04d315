// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a digital book offered in the catalog.
type Product struct {
	ID              int64
	Title           string
	Author          string
	Description     string
	Genre           string
	Language        string
	PageCount       int
	PublicationYear int
	Price           decimal.Decimal // BRL, two decimal places
	CoverURL        string
	ContentURL      string // PDF delivered to owners only
	CreatedAt       time.Time
}

// GenreOr returns the product genre, or fallback when it is blank.
func (p *Product) GenreOr(fallback string) string {
	if strings.TrimSpace(p.Genre) == "" {
		return fallback
	}

	return p.Genre
}

// ProductFilter narrows a catalog listing. Empty fields do not filter.
type ProductFilter struct {
	Genre      string
	SearchTerm string // case-insensitive substring on title or author
}

// Normalize trims surrounding whitespace from every field.
func (f ProductFilter) Normalize() ProductFilter {
	return ProductFilter{
		Genre:      strings.TrimSpace(f.Genre),
		SearchTerm: strings.TrimSpace(f.SearchTerm),
	}
}

// IsEmpty reports whether the filter matches the whole catalog.
func (f ProductFilter) IsEmpty() bool {
	n := f.Normalize()

	return n.Genre == "" && n.SearchTerm == ""
}

// Key identifies equivalent filters, search terms compare case-insensitively.
func (f ProductFilter) Key() string {
	n := f.Normalize()

	return n.Genre + "\x00" + strings.ToLower(n.SearchTerm)
}
