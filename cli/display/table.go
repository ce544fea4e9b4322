/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/UnifyEM/DTConsole/common"
)

// maxCell bounds the width of a table cell
const maxCell = 60

// Table writes v as a text table. A slice becomes one row per element, a
// struct becomes one row per field and a list page adds a count line.
// Fields tagged table:"-" are left out.
func Table(w io.Writer, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	switch {
	case isPage(rv):
		items := rv.FieldByName("Items")
		rows(tw, items)
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%d of %d\n", items.Len(), rv.FieldByName("TotalCount").Int())
		return err

	case rv.Kind() == reflect.Slice:
		rows(tw, rv)

	case rv.Kind() == reflect.Struct:
		title := cases.Title(language.English, cases.NoLower)
		for _, f := range columns(rv.Type()) {
			_, _ = fmt.Fprintf(tw, "%s:\t%s\n", title.String(words(f.Name)), cell(rv.FieldByIndex(f.Index)))
		}

	default:
		_, _ = fmt.Fprintln(tw, cell(rv))
	}
	return tw.Flush()
}

// isPage matches dtrack.Page for any item type
func isPage(rv reflect.Value) bool {
	if rv.Kind() != reflect.Struct {
		return false
	}
	items, ok := rv.Type().FieldByName("Items")
	if !ok || items.Type.Kind() != reflect.Slice {
		return false
	}
	total, ok := rv.Type().FieldByName("TotalCount")
	return ok && total.Type.Kind() == reflect.Int
}

func rows(tw io.Writer, slice reflect.Value) {
	elem := slice.Type().Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	if elem.Kind() != reflect.Struct {
		for i := 0; i < slice.Len(); i++ {
			_, _ = fmt.Fprintln(tw, cell(slice.Index(i)))
		}
		return
	}

	cols := columns(elem)
	upper := cases.Upper(language.English)
	header := make([]string, 0, len(cols))
	for _, f := range cols {
		header = append(header, upper.String(words(f.Name)))
	}
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := 0; i < slice.Len(); i++ {
		item := reflect.Indirect(slice.Index(i))
		line := make([]string, 0, len(cols))
		for _, f := range cols {
			if !item.IsValid() {
				line = append(line, "")
				continue
			}
			line = append(line, cell(item.FieldByIndex(f.Index)))
		}
		_, _ = fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
}

func columns(t reflect.Type) []reflect.StructField {
	var cols []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("table") == "-" {
			continue
		}
		cols = append(cols, f)
	}
	return cols
}

// cell formats one value. Nested objects show their identifier or name and
// lists are joined with commas.
func cell(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Invalid:
		return ""
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return cell(v.Elem())
	case reflect.String:
		return common.Truncate(common.SingleLine(v.String()), maxCell)
	case reflect.Bool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, cell(v.Index(i)))
		}
		return common.Truncate(strings.Join(parts, ", "), maxCell)
	case reflect.Struct:
		for _, name := range []string{"LicenseID", "Name", "Username"} {
			if f := v.FieldByName(name); f.IsValid() && f.Kind() == reflect.String && f.String() != "" {
				return f.String()
			}
		}
	}
	return fmt.Sprint(v.Interface())
}

// words splits a Go field name into words: LicenseID becomes "License ID"
func words(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prevLower := unicode.IsLower(r[i-1])
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if prevLower || (unicode.IsUpper(r[i-1]) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}
