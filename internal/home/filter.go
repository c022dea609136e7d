package home

import (
	"slices"
	"unicode"

	"github.com/trendify-core/client/internal/model"
)

// Filter returns the products whose name contains query, ignoring case, in
// their original order. An empty query returns a copy of products.
func Filter(products []model.Product, query string) []model.Product {
	if query == "" {
		return slices.Clone(products)
	}
	needle := []rune(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, needle) {
			out = append(out, p)
		}
	}
	return out
}

// containsFold reports whether needle occurs in s when each rune is compared
// under simple case folding, so final sigma matches capital sigma.
func containsFold(s string, needle []rune) bool {
	hay := []rune(s)
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j, r := range needle {
			if !runeEqualFold(hay[i+j], r) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
