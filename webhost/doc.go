// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package webhost implements
// [github.com/joeycumines/go-surfacebridge.Host] on top of the browser
// DOM, for programs compiled to js/wasm.
//
// Surfaces are canvas elements resolved by element ID. Frame callbacks
// map to requestAnimationFrame, deferred callbacks to zero-delay
// setTimeout, and subscriptions to addEventListener with the
// corresponding removeEventListener plus js.Func release on cancel.
package webhost
