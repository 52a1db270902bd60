// Package config loads, merges and validates resume-keeper configuration.
//
// Sources, in priority order (the first source that sets a field wins):
//  1. Environment variables, after an optional .env file is loaded
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] is used by the server, [GetClientConfig] by the CLI.
package config
