//go:build darwin

package sys

// MAXPATHLEN from sys/param.h; x/sys/unix does not export it on darwin.
const maxPathLen = 1024
