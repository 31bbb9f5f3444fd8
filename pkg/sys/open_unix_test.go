//go:build linux || darwin

package sys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Open_Returns_ErrIsDirectory_When_Writing_A_Directory(t *testing.T) {
	t.Parallel()

	_, err := sys.Open(t.TempDir(), sys.WriteOnly, sys.OpenOptions{}, 0)

	require.ErrorIs(t, err, sys.ErrIsDirectory)
}

func Test_Open_NonBlocking_Succeeds_On_Regular_File(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/nb.txt"
	mustCreate(t, path, []byte("x"))

	fd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{NonBlocking: true}, 0)
	require.NoError(t, err)
	require.NoError(t, fd.Close())
}
