// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the dumpman run: it loads the camera dump, checks
// the output directory, collects the groups from a prompter, and executes or
// simulates the resulting plan.
//
// It wires the services together into a single process lifecycle and owns the
// user-facing lines printed on stdout.
package app
