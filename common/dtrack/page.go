//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package dtrack

import (
	"net/url"
	"strconv"

	"github.com/UnifyEM/DTConsole/common/schema"
)

// ListOptions narrows a list request. The zero value requests the server default.
type ListOptions struct {
	PageNumber int
	PageSize   int
	SearchText string
}

func (o *ListOptions) values() url.Values {
	if o == nil {
		return nil
	}
	v := url.Values{}
	if o.PageNumber > 0 {
		v.Set(schema.QueryPageNumber, strconv.Itoa(o.PageNumber))
	}
	if o.PageSize > 0 {
		v.Set(schema.QueryPageSize, strconv.Itoa(o.PageSize))
	}
	if o.SearchText != "" {
		v.Set(schema.QuerySearchText, o.SearchText)
	}
	return v
}

// Page is one list response. TotalCount comes from the X-Total-Count header
// and falls back to len(Items) when the server omits it.
type Page[T any] struct {
	Items      []T `json:"items" yaml:"items"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
}

func newPage[T any](items []T, resp *response) Page[T] {
	p := Page[T]{Items: items, TotalCount: len(items)}
	if resp == nil {
		return p
	}
	if n, err := strconv.Atoi(resp.header.Get(schema.HeaderTotalCount)); err == nil && n >= 0 {
		p.TotalCount = n
	}
	return p
}
