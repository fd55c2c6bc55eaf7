// Package version records the analyzer release string.
package version

// Version is the q-drift release reported by the version command and the
// HTTP API.
const Version = "0.3.0"
