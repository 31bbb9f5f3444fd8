//go:build linux

package sys

import "golang.org/x/sys/unix"

const maxPathLen = unix.PathMax
