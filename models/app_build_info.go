// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnset = "N/A"

// AppBuildInfo is the version metadata injected into the binaries with
// -ldflags "-X main.buildVersion=...". Unset values read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orUnset(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orUnset(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orUnset(a.buildCommit)
}

// String renders the three values as printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}
