/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"

	"github.com/UnifyEM/DTConsole/common"
)

// ErrorWrapper is a simple wrapper for CLI error handling.
// If there is an error, it prints it on a single line to w.
func ErrorWrapper(w io.Writer, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(w, "Error: %s\n", common.SingleLine(err.Error()))
	}
}
