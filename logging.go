// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"github.com/joeycumines/logiface"
)

// componentLogger derives a sub-logger tagged with the originating
// component, e.g. "redraw", "dispatch", "bridge". Safe on a nil logger,
// in which case all log calls become no-ops.
func componentLogger(logger *logiface.Logger[logiface.Event], component string) *logiface.Logger[logiface.Event] {
	return logger.Clone().
		Str(`component`, component).
		Logger()
}
