package models

// PagedResult is the envelope returned by every list operation.
type PagedResult struct {
	Data  any `json:"data"`
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
}

// PageCount returns ceil(total/limit), 0 when limit is not positive.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NewPagedResult wraps a page of rows with its pagination metadata.
func NewPagedResult(data any, total, page, limit int) PagedResult {
	return PagedResult{
		Data:  data,
		Total: total,
		Pages: PageCount(total, limit),
		Page:  page,
	}
}
