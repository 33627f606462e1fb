// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the demo client application runtime.
//
// It walks through every server endpoint with the configured credentials,
// including requests that are expected to be rejected, and logs each answer.
package client
