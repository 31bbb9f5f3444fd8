//go:build linux || darwin

package sys_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_NativeError_Maps_Errnos_To_Semantic_Sentinels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		errno  unix.Errno
		wantIs error
	}{
		{"ENOENT", unix.ENOENT, sys.ErrNotFound},
		{"ENOTDIR", unix.ENOTDIR, sys.ErrNotFound},
		{"EACCES", unix.EACCES, sys.ErrPermission},
		{"EPERM", unix.EPERM, sys.ErrPermission},
		{"EEXIST", unix.EEXIST, sys.ErrExists},
		{"EISDIR", unix.EISDIR, sys.ErrIsDirectory},
		{"EMFILE", unix.EMFILE, sys.ErrTooManyOpenFiles},
		{"EINVAL", unix.EINVAL, sys.ErrInvalid},
		{"ENOSYS", unix.ENOSYS, sys.ErrUnsupported},
		{"EAGAIN", unix.EAGAIN, sys.ErrWouldBlock},
		{"EPIPE", unix.EPIPE, sys.ErrBrokenPipe},
		{"EINTR", unix.EINTR, sys.ErrInterrupted},
		{"ENOSPC", unix.ENOSPC, sys.ErrNoSpace},
		{"ENOMEM", unix.ENOMEM, sys.ErrResourceLimit},
		{"EBADF", unix.EBADF, sys.ErrBadDescriptor},
		{"ENAMETOOLONG", unix.ENAMETOOLONG, sys.ErrTooLong},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := sys.NativeError("op", tc.errno)
			require.ErrorIs(t, err, tc.wantIs)
		})
	}
}

func Test_NativeError_Maps_Unlisted_Errno_To_ErrUnknown(t *testing.T) {
	t.Parallel()

	err := sys.NativeError("op", unix.EPROTO)
	require.ErrorIs(t, err, sys.ErrUnknown)
}
