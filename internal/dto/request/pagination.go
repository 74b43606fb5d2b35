package request

import "hotel-manager/pkg/utils"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"gte=1"`
	PerPage int `json:"per_page" validate:"gte=1,lte=100"`
}

func (r *PaginatedRequest) Limit() int {
	if r.PerPage < 1 {
		return 10
	}
	return r.PerPage
}

func (r *PaginatedRequest) Offset() int {
	return utils.CalculateOffset(r.Page, r.Limit())
}
