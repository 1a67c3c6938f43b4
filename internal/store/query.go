package store

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Query accumulates a single table operation. Filters are conjunctive.
type Query struct {
	client  *Client
	table   string
	selects string
	filters url.Values
	order   string
	limit   int
	offset  int
	single  bool
}

// Select sets the column projection, including embedded-resource syntax such
// as "*,profiles(username,avatar_url)". Defaults to "*".
func (q *Query) Select(columns string) *Query {
	q.selects = columns
	return q
}

// Eq adds an equality filter on column.
func (q *Query) Eq(column string, value string) *Query {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Set(column, "eq."+value)
	return q
}

// Order sets the result ordering, e.g. Order("created_at", true) for newest
// first.
func (q *Query) Order(column string, desc bool) *Query {
	dir := ".asc"
	if desc {
		dir = ".desc"
	}
	q.order = column + dir
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// Single switches the read to object mode: exactly one row is expected, and
// zero rows yield ErrNotFound.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Execute runs the query as a read. dest is a pointer to a slice, or to a
// struct when Single was set.
func (q *Query) Execute(ctx context.Context, dest any) error {
	headers := map[string]string{}
	if q.single {
		headers["Accept"] = "application/vnd.pgrst.object+json"
	}
	return q.client.do(ctx, http.MethodGet, q.url(), headers, nil, dest)
}

// Insert posts body as a new row. dest, when non-nil, receives the created
// representation and must be a pointer to a slice.
func (q *Query) Insert(ctx context.Context, body any, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return q.client.do(ctx, http.MethodPost, q.url(), headers, body, dest)
}

// Update patches all rows matched by the filters. dest must be a pointer to a
// slice; it receives the updated representations.
func (q *Query) Update(ctx context.Context, body any, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return q.client.do(ctx, http.MethodPatch, q.url(), headers, body, dest)
}

// Delete removes all rows matched by the filters.
func (q *Query) Delete(ctx context.Context) error {
	return q.client.do(ctx, http.MethodDelete, q.url(), nil, nil, nil)
}

func (q *Query) url() string {
	params := url.Values{}
	for column, values := range q.filters {
		for _, v := range values {
			params.Add(column, v)
		}
	}
	if q.selects != "" {
		params.Set("select", q.selects)
	}
	if q.order != "" {
		params.Set("order", q.order)
	}
	if q.limit > 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		params.Set("offset", strconv.Itoa(q.offset))
	}

	u := q.client.baseURL + "/rest/v1/" + q.table
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
