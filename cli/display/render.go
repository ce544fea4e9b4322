/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package display renders API results as JSON, YAML or a text table
package display

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/UnifyEM/DTConsole/cli/settings"
	"github.com/UnifyEM/DTConsole/common/dtrack"
)

// Render writes v to w in the given format
func Render(w io.Writer, format string, v any) error {
	switch format {
	case settings.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case settings.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error marshalling to YAML: %w", err)
		}
		return enc.Close()

	case settings.OutputTable, "":
		return Table(w, v)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Result runs fn and renders its payload on success. A failure is returned
// unrendered so the caller decides how to report it.
func Result[T any](ctx context.Context, w io.Writer, format string, fn func(context.Context) (T, error)) error {
	var result error
	dtrack.Do(ctx, fn, dtrack.Callbacks[T]{
		OnSuccess: func(v T) { result = Render(w, format, v) },
		OnFailure: func(err error) { result = err },
	})
	return result
}
