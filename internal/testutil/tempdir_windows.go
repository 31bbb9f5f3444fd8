//go:build windows

package testutil

var tempEnvKeys = []string{"TEMP", "TMP"}

const tempFallback = `C:\Temp`
