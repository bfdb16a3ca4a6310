// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"github.com/joeycumines/logiface"
)

// attachOptions holds configuration options for Attach.
type attachOptions struct {
	logger   *logiface.Logger[logiface.Event]
	tabIndex int
}

// --- Attach Options ---

// AttachOption configures a Bridge instance.
type AttachOption interface {
	applyAttach(*attachOptions) error
}

// attachOptionImpl implements AttachOption.
type attachOptionImpl struct {
	applyAttachFunc func(*attachOptions) error
}

func (a *attachOptionImpl) applyAttach(opts *attachOptions) error {
	return a.applyAttachFunc(opts)
}

// WithLogger sets the structured logger used by the bridge and its
// components. A nil logger disables logging entirely (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) AttachOption {
	return &attachOptionImpl{func(opts *attachOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithTabIndex sets the tab index assigned to the surface during
// attachment, making it focusable so it can receive key events.
// Defaults to 0.
func WithTabIndex(tabIndex int) AttachOption {
	return &attachOptionImpl{func(opts *attachOptions) error {
		opts.tabIndex = tabIndex
		return nil
	}}
}

// resolveAttachOptions applies AttachOption instances to attachOptions.
func resolveAttachOptions(opts []AttachOption) (*attachOptions, error) {
	cfg := &attachOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyAttach(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
