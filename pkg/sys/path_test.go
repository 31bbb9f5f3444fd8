package sys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_WithPath_Returns_ErrEmbeddedNull_When_Path_Contains_Null(t *testing.T) {
	t.Parallel()

	err := sys.WithPath("dir/fi\x00le", func(sys.Path) error {
		t.Fatal("body must not run for an invalid path")

		return nil
	})

	require.ErrorIs(t, err, sys.ErrEmbeddedNull)
}

func Test_WithPath_Returns_ErrTooLong_When_Path_Exceeds_Platform_Maximum(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 1<<16)

	err := sys.WithPath(long, func(sys.Path) error {
		t.Fatal("body must not run for an invalid path")

		return nil
	})

	require.ErrorIs(t, err, sys.ErrTooLong)
}

func Test_WithPath_Provides_Null_Terminated_Bytes(t *testing.T) {
	t.Parallel()

	err := sys.WithPath("some/file.txt", func(p sys.Path) error {
		raw := p.NullTerminated()

		require.Equal(t, "some/file.txt", p.String())
		require.Equal(t, byte(0), raw[len(raw)-1])
		require.Equal(t, "some/file.txt", string(raw[:len(raw)-1]))

		return nil
	})

	require.NoError(t, err)
}

func Test_WithPath_Propagates_Body_Error(t *testing.T) {
	t.Parallel()

	sentinel := sys.ErrNotFound

	err := sys.WithPath("x", func(sys.Path) error {
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
}
