/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"

	"github.com/UnifyEM/DTConsole/common"
)

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "DTCLI"
	Description     = "Dependency-Track console CLI"
	LongDescription = "Command line console for administering a Dependency-Track server"
	Copyright       = "Copyright (c) 2025-2026 Tenebris Technologies Inc."
)

// ProgName returns the name this binary was invoked as, without any path
func ProgName() string {
	return filepath.Base(os.Args[0])
}
