package response

import "hotel-manager/pkg/utils"

type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginatedResponse[T any](items []T, page, perPage int, total int64) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}
}
