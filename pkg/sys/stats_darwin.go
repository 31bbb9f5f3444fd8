//go:build darwin

package sys

import "golang.org/x/sys/unix"

func statFields(st *unix.Stat_t) (mode uint32, atim, mtim, ctim unix.Timespec) {
	return uint32(st.Mode), st.Atim, st.Mtim, st.Ctim
}
