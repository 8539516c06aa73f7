// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// User-facing lines printed on stdout. Log output goes to stderr through the
// logger and never uses these.
const (
	// MsgSummary introduces the loaded dump: file count and id range.
	MsgSummary = "» %d files (%s)\n"

	// MsgAvailableOps lists the map operation types that may be entered.
	MsgAvailableOps = "» Available ops: %s\n"

	// MsgProcessing is printed once before the first group is written.
	MsgProcessing = "Processing all operations... (this will take a while)\n"

	// MsgDone is printed after a successful run together with the output
	// directory.
	MsgDone = "Done! %s\n"

	// MsgPlanLine describes one planned group in dry-run mode.
	MsgPlanLine = "%s: %d..%d (%d files)\n"

	// MsgDryRunSummary closes a dry run. Nothing under the output directory
	// has been touched at this point.
	MsgDryRunSummary = "[DRY RUN] %d groups, %d files, %s would be written to %s\n"
)
