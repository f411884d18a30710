// Package config provides configuration loading, merging, and validation
// facilities for the admin CLI and the fake API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables, with a .env file loaded first
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the CLI and
// [GetFakeAPIConfig] for the development server.
package config
