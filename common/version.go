//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package common

const (
	Version = "0.3.0"
	Build   = 12
)
