// Package query holds the read-side helpers shared by every list operation:
// keyword matching and 1-based pagination over an ordered slice.
package query

import (
	"strings"

	"go-erp-admin/internal/model"
)

// Match reports whether keyword is a case-sensitive substring of any field.
// An empty keyword matches everything.
func Match(keyword string, fields ...string) bool {
	if keyword == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(f, keyword) {
			return true
		}
	}
	return false
}

// Filter keeps the items accepted by keep, in their original order
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Paginate returns items[(page-1)*size : (page-1)*size+size] clipped to the
// slice. A non-positive page or size returns every item.
func Paginate[T any](items []T, page, size int) []T {
	if page <= 0 || size <= 0 {
		return items
	}
	// Compare page numbers before multiplying so huge values cannot overflow
	if len(items) == 0 || page-1 > (len(items)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end]
}

// Page filters items by params.Keyword against the fields returned by
// fields, then paginates. Total is the filtered count.
func Page[T any](items []T, params model.ListParams, fields func(T) []string) model.PageResult[T] {
	filtered := items
	if params.Keyword != "" {
		filtered = Filter(items, func(item T) bool {
			return Match(params.Keyword, fields(item)...)
		})
	}
	list := Paginate(filtered, params.Page, params.Size)
	if list == nil {
		list = []T{}
	}
	return model.PageResult[T]{List: list, Total: len(filtered)}
}
