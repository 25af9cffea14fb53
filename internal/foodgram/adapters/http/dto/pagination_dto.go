package dto

import (
	"net/url"
	"strconv"
)

// PageResponse - страница списка в формате {count, next, previous, results}.
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPageResponse строит страницу и абсолютные ссылки на соседние страницы.
// base - адрес запроса без строки запроса, query - исходные параметры.
func NewPageResponse[T any](results []T, total, page, limit int, base string, query url.Values) PageResponse[T] {
	resp := PageResponse[T]{Count: total, Results: results}
	if resp.Results == nil {
		resp.Results = []T{}
	}

	if limit > 0 && page*limit < total {
		next := pageLink(base, query, page+1)
		resp.Next = &next
	}
	if page > 1 {
		prev := pageLink(base, query, page-1)
		resp.Previous = &prev
	}
	return resp
}

func pageLink(base string, query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	if encoded := q.Encode(); encoded != "" {
		return base + "?" + encoded
	}
	return base
}
