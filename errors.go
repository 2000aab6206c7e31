// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package cachekit

import "github.com/cockroachdb/errors"

var (
	// ErrLockTimeout is reported by the blocking decorator when a
	// key's lock could not be acquired within the configured timeout.
	ErrLockTimeout = errors.New("lock acquisition timed out")

	// ErrLockInterrupted is reported by the blocking decorator when
	// lock acquisition was cancelled by the caller's context.
	ErrLockInterrupted = errors.New("lock acquisition interrupted")
)
