// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package loophost provides a portable, in-process implementation of
// [github.com/joeycumines/go-surfacebridge.Host], backed by a simple
// single-consumer event loop instead of a browser.
//
// It exists for two reasons: running bridge-based applications headless
// (tests, CI, server-side rendering experiments), and exercising the
// bridge's scheduling semantics deterministically. Deferred callbacks
// and frame callbacks are queued and only run when the owner pumps the
// loop, either step by step via [Host.Drain] and [Host.StepFrame], or
// continuously via [Host.Run].
//
// Like its browser counterpart, the host resolves asynchronous requests
// (pointer lock, fullscreen) on a later loop turn, never synchronously
// from the requesting call.
package loophost
