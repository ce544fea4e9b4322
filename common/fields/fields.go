/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package fields carries structured name/value pairs alongside log messages.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnifyEM/DTConsole/common/interfaces"
)

type Fields struct {
	Fields []Field
}

type Field struct {
	K string
	V any
}

// Name returns the key of the field to implement the NVPair interface
func (f Field) Name() string {
	return f.K
}

// Value returns the value of the field to implement the NVPair interface
func (f Field) Value() any {
	return f.V
}

func NewFields(fields ...Field) *Fields {
	return &Fields{Fields: fields}
}

func NewField(key string, value any) Field {
	return Field{K: key, V: value}
}

// AppendKV adds a single pair and returns the receiver so calls can be chained
func (f *Fields) AppendKV(key string, value any) *Fields {
	f.Fields = append(f.Fields, Field{K: key, V: value})
	return f
}

// ToText renders the fields as key=value separated by single spaces.
// Values containing whitespace or quotes are quoted.
func (f *Fields) ToText() string {
	if f == nil || len(f.Fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		v := fmt.Sprintf("%v", field.V)
		if v == "" || strings.ContainsAny(v, " \t\r\n\"") {
			v = strconv.Quote(v)
		}
		parts = append(parts, field.K+"="+v)
	}
	return strings.Join(parts, " ")
}

// ToPairs implements interfaces.Fields
func (f *Fields) ToPairs() []interfaces.NVPair {
	if f == nil {
		return nil
	}
	pairs := make([]interfaces.NVPair, len(f.Fields))
	for i, field := range f.Fields {
		pairs[i] = field
	}
	return pairs
}
