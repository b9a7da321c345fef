package api

import (
	"net/url"
	"strconv"
)

// ListParams is the canonical pagination contract for every list
// endpoint: page/limit with optional sort/order and filters. The
// previous _start/_end style is translated into this one, not preserved.
type ListParams struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Filter map[string]string
}

// Query renders the params as URL query values.
func (p ListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	for k, v := range p.Filter {
		q.Set(k, v)
	}
	return q
}
