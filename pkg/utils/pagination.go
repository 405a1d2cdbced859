package utils

// PaginationParams is the page/limit pair of a list request. Limit 0 means
// the whole result set is returned on a single page.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta is the "meta" block of a list envelope. Limit is echoed as
// requested, so 0 still reads as unlimited.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// GetPaginationParams clamps page to 1 and limit to 0 at the low end.
func GetPaginationParams(page, limit int) PaginationParams {
	return PaginationParams{Page: max(page, 1), Limit: max(limit, 0)}
}

// Unlimited reports whether every row fits on one page.
func (p PaginationParams) Unlimited() bool {
	return p.Limit <= 0
}

// CalculateOffset is the number of rows skipped before the requested page.
func (p PaginationParams) CalculateOffset() int {
	if p.Unlimited() || p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta describes the page p within totalCount rows. An unlimited
// request always reports a single page.
func CalculateMeta(totalCount int64, p PaginationParams) PaginationMeta {
	if p.Unlimited() {
		return PaginationMeta{Page: 1, Limit: 0, TotalCount: totalCount, TotalPages: 1}
	}
	limit := int64(p.Limit)
	return PaginationMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: int((totalCount + limit - 1) / limit),
	}
}
