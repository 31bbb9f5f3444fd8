//go:build linux || darwin

package testutil

var tempEnvKeys = []string{"TMPDIR"}

const tempFallback = "/tmp"
