package entities

import "math"

// PageRequest - номер страницы (с 1) и ее размер.
type PageRequest struct {
	Page  int
	Limit int
}

// Valid сообщает, что номер страницы положителен, а смещение помещается в int64.
func (p PageRequest) Valid() bool {
	if p.Page < 1 || p.Limit < 1 {
		return false
	}
	return int64(p.Page-1) <= math.MaxInt64/int64(p.Limit)
}

// Offset возвращает смещение первой записи страницы.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Page - страница результатов и общее число записей.
type Page[T any] struct {
	Items []T
	Total int
}
