// internal/pkg/pagination/pagination.go
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds clamped paging inputs.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps raw paging values. Zero or negative page falls back to 1,
// limit falls back to 20 and is capped at 100.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit), zero when there are no rows.
func (p Params) TotalPages(total int64) int64 {
	if total == 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}
