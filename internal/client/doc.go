// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the login handoff surface, the session bootstrapper and the
// terminal UI into a single process lifecycle: resume or sign in, run the
// workflows, and start over after a logout or a rejected credential.
package client
