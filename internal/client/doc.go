// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the autosave coordinator, connectivity monitoring, and process
// lifecycle handling into a single form-editing session.
package client
