//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnifyEM/DTConsole/common/dtrack"
)

type NVPairs struct {
	Pairs map[string]string
}

// NewNVPairs parses a list of strings for key=value pairs and returns them in a map.
// Keys are lower-cased and arguments without "=" are ignored.
func NewNVPairs(args []string) *NVPairs {
	r := NVPairs{
		Pairs: make(map[string]string),
	}

	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) == 2 {
			r.Pairs[strings.ToLower(strings.TrimSpace(parts[0]))] = parts[1]
		}
	}

	return &r
}

// ToMap is a helper function to convert NVPairs to a map[string]string
func (p *NVPairs) ToMap() map[string]string {
	return p.Pairs
}

// listArgs is the validated form of the name=value pairs accepted by list commands
type listArgs struct {
	Page   int    `validate:"gte=0"`
	Size   int    `validate:"gte=0,lte=1000"`
	Search string `validate:"max=255"`
}

// ListOptions converts page, size and search pairs into dtrack.ListOptions.
// The API names pagenumber, pagesize and searchtext are accepted as well.
func (p *NVPairs) ListOptions() (*dtrack.ListOptions, error) {
	var a listArgs
	for k, v := range p.Pairs {
		switch k {
		case "page", "pagenumber":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", k)
			}
			a.Page = n
		case "size", "pagesize":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", k)
			}
			a.Size = n
		case "search", "searchtext":
			a.Search = v
		default:
			return nil, fmt.Errorf("unknown option %q (use page, size or search)", k)
		}
	}

	if err := Validate(a); err != nil {
		return nil, err
	}
	return &dtrack.ListOptions{PageNumber: a.Page, PageSize: a.Size, SearchText: a.Search}, nil
}
