// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen is returned by Start when the callback address cannot be
	// bound, usually because another process holds the port.
	ErrListen = errors.New("error binding callback address")

	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("server already started")
)
