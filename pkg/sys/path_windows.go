//go:build windows

package sys

import "golang.org/x/sys/windows"

const maxPathLen = windows.MAX_PATH
