/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/UnifyEM/DTConsole/common"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// maxErrorBody bounds how much of a response body is quoted in an error message
const maxErrorBody = 200

// StatusError reports a response whose status is not the operation's success status
type StatusError struct {
	Operation string
	Method    string
	Path      string
	Code      int
	Body      []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s failed with HTTP status %d", e.Method, e.Path, e.Code)
	if detail := strings.TrimSpace(string(e.Body)); detail != "" {
		msg += ": " + common.Truncate(detail, maxErrorBody+3)
	}
	return msg
}

// Is lets callers test with errors.Is(err, ErrNotFound) and friends
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrUnexpectedStatus:
		return true
	}
	return false
}

// StatusCode extracts the HTTP status from err, or 0 if err is not a StatusError
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// expectation is the success rule of one operation. With no codes listed any
// 2xx is a success, which is how the version and current-user calls behave.
type expectation struct {
	codes []int
}

func expect(codes ...int) expectation {
	return expectation{codes: codes}
}

func anySuccess() expectation {
	return expectation{}
}

func (e expectation) ok(code int) bool {
	if len(e.codes) == 0 {
		return code >= 200 && code < 300
	}
	return slices.Contains(e.codes, code)
}
