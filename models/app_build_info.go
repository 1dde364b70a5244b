// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the linker-injected build metadata of the client
// binary. Empty values are reported as "N/A".
type AppBuildInfo struct {
	BuildVersion string
	BuildDate    string
	BuildCommit  string
}

// Normalize replaces empty fields with "N/A".
func (b AppBuildInfo) Normalize() AppBuildInfo {
	if b.BuildVersion == "" {
		b.BuildVersion = "N/A"
	}
	if b.BuildDate == "" {
		b.BuildDate = "N/A"
	}
	if b.BuildCommit == "" {
		b.BuildCommit = "N/A"
	}
	return b
}
