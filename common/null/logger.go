//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package null provides a logger that discards everything. The dtrack client
// falls back to it when no logger is supplied.
package null

import (
	"github.com/UnifyEM/DTConsole/common/interfaces"
)

var _ interfaces.Logger = (*LoggerNull)(nil)

type LoggerNull struct{}

func Logger() interfaces.Logger {
	return &LoggerNull{}
}

func (n *LoggerNull) Debug(_ uint32, _ string, _ interfaces.Fields) {}
func (n *LoggerNull) Info(_ uint32, _ string, _ interfaces.Fields) {}
func (n *LoggerNull) Warning(_ uint32, _ string, _ interfaces.Fields) {}
func (n *LoggerNull) Error(_ uint32, _ string, _ interfaces.Fields) {}
func (n *LoggerNull) Debugf(_ uint32, _ string, _ ...any) {}
func (n *LoggerNull) Infof(_ uint32, _ string, _ ...any) {}
func (n *LoggerNull) Warningf(_ uint32, _ string, _ ...any) {}
func (n *LoggerNull) Errorf(_ uint32, _ string, _ ...any) {}
func (n *LoggerNull) Close() {}
