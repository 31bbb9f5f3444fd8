//go:build linux

package sys

import "golang.org/x/sys/unix"

func statFields(st *unix.Stat_t) (mode uint32, atim, mtim, ctim unix.Timespec) {
	return st.Mode, st.Atim, st.Mtim, st.Ctim
}
