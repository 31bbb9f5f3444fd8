package sys_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Open_Creates_File_When_Create_Set(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "created.txt")

	fd, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{Create: true}, 0o644)
	require.NoError(t, err)
	require.NoError(t, fd.Close())

	st, err := sys.StatPath(path)
	require.NoError(t, err)
	require.Equal(t, sys.TypeRegular, st.Type)
	require.Equal(t, int64(0), st.Size)
}

func Test_Open_Returns_ErrNotFound_When_Path_Missing(t *testing.T) {
	t.Parallel()

	_, err := sys.Open(filepath.Join(t.TempDir(), "missing"), sys.ReadOnly, sys.OpenOptions{}, 0)

	require.ErrorIs(t, err, sys.ErrNotFound)
}

func Test_Open_Returns_ErrExists_When_Exclusive_Create_Hits_Existing_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "taken.txt")
	mustCreate(t, path, []byte("occupied"))

	_, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{Create: true, Exclusive: true}, 0o644)

	require.ErrorIs(t, err, sys.ErrExists)
}

func Test_Open_Truncates_Existing_File_When_Truncate_Set(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "full.txt")
	mustCreate(t, path, []byte("previous content"))

	fd, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{Truncate: true}, 0)
	require.NoError(t, err)

	st, err := sys.Stat(fd)
	require.NoError(t, err)
	require.Equal(t, int64(0), st.Size)

	require.NoError(t, fd.Close())
}

func Test_Open_Returns_ErrInvalid_When_Exclusive_Without_Create(t *testing.T) {
	t.Parallel()

	_, err := sys.Open(filepath.Join(t.TempDir(), "f"), sys.WriteOnly, sys.OpenOptions{Exclusive: true}, 0)

	require.ErrorIs(t, err, sys.ErrInvalid)
}

func Test_Open_Returns_ErrInvalid_When_Truncate_On_ReadOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ro.txt")
	mustCreate(t, path, []byte("data"))

	_, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{Truncate: true}, 0)

	require.ErrorIs(t, err, sys.ErrInvalid)
}

func Test_Unlink_Removes_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone.txt")
	mustCreate(t, path, []byte("x"))

	require.NoError(t, sys.Unlink(path))

	_, err := sys.StatPath(path)
	require.ErrorIs(t, err, sys.ErrNotFound)
}

func Test_Unlink_Returns_ErrNotFound_When_Path_Missing(t *testing.T) {
	t.Parallel()

	err := sys.Unlink(filepath.Join(t.TempDir(), "missing"))

	require.ErrorIs(t, err, sys.ErrNotFound)
}

// mustCreate writes a file through the package under test so the tests stay
// on one code path.
func mustCreate(t *testing.T, path string, data []byte) {
	t.Helper()

	fd, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{Create: true, Truncate: true}, 0o644)
	require.NoError(t, err)

	written := 0
	for written < len(data) {
		n, err := fd.Pwrite(data[written:], int64(written))
		require.NoError(t, err)

		written += n
	}

	require.NoError(t, fd.Close())
}
