// Package testutil holds shared helpers for the package test suites.
package testutil

import "os"

// BaseTempDir resolves the system scratch directory from the platform's
// conventional environment variables, falling back to a fixed location when
// none is set. Tests that need a path outside t.TempDir (cross-device copy
// probes, shared lock files) root it here.
func BaseTempDir() string {
	for _, key := range tempEnvKeys {
		if dir := os.Getenv(key); dir != "" {
			return dir
		}
	}

	return tempFallback
}
