// Package config provides configuration loading, merging, and validation
// facilities for the doc-query client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Gaps left by every source are filled with defaults. The main entry point is
// [GetClientConfig]; [GetStructuredConfig] exposes the raw merged view.
package config
