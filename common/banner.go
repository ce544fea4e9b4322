//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package common

import (
	"fmt"
	"io"
)

func Banner(w io.Writer, program, version string, build int) {
	_, _ = fmt.Fprintf(w, "%s version %s (build %d)\n", program, version, build)
	_, _ = fmt.Fprintf(w, "Copyright 2025-2026 Tenebris Technologies Inc.\n")
	_, _ = fmt.Fprintf(w, "\nLicense:\n")
	_, _ = fmt.Fprintf(w, "  This software is licenced under the Apache License, Version 2.0.\n")
	_, _ = fmt.Fprintf(w, "  A copy of the license can be found in the LICENSE file.\n")
	_, _ = fmt.Fprintf(w, "\nDependency-Track:\n")
	_, _ = fmt.Fprintf(w, "  This program is a client for the OWASP Dependency-Track REST API and\n")
	_, _ = fmt.Fprintf(w, "  is not affiliated with the Dependency-Track project.\n")
	_, _ = fmt.Fprintf(w, "\n")
}
