// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/dumpman/models"
)

const appName = "dumpman"

// renderTitle prefixes a page title with the program name and version.
func renderTitle(info models.AppBuildInfo, page string) string {
	return appName + " " + info.BuildVersion() + " · " + page
}
