// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It maps subcommands onto [adapter.ServerAdapter] calls, keeps the access
// token between invocations in a token file and prints results in a plain
// tabular form.
package client
