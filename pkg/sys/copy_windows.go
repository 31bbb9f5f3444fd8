//go:build windows

package sys

// copyAccelerated has no Windows implementation; every copy runs the
// explicit positional loop. (ReFS block cloning needs DeviceIoControl
// plumbing that no consumer has asked for.)
func copyAccelerated(string, string, Permissions) (bool, error) {
	return false, nil
}
