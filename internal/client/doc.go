// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It obtains a vault (from the local cache or the remote service), asks for
// the master password until the vault opens or the attempts run out, and
// then either lists the accounts or copies one password to the clipboard for
// a limited time.
package client
