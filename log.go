// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "go.uber.org/zap"

// SetLogger installs l as the manager's trace sink: each GC pass is
// logged through it; rehash and overflow events are not logged. Passing
// nil restores silence,
// per the external interface's "Logging: a settable output stream ...
// unset = silent" contract.
func (m *Manager) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	m.log = l
}

// UnsetLogger silences the manager's trace output.
func (m *Manager) UnsetLogger() {
	m.log = zap.NewNop()
}
