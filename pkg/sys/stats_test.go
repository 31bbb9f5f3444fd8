package sys_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Stat_Reports_Regular_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plain.txt")
	mustCreate(t, path, []byte("twelve bytes"))

	fd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	st, err := sys.Stat(fd)
	require.NoError(t, err)

	require.Equal(t, sys.TypeRegular, st.Type)
	require.Equal(t, int64(12), st.Size)
	require.WithinDuration(t, time.Now(), st.ModTime, time.Minute)
	require.WithinDuration(t, time.Now(), st.AccessTime, time.Minute)
	require.WithinDuration(t, time.Now(), st.ChangeTime, time.Minute)
}

func Test_StatPath_Reports_Directory(t *testing.T) {
	t.Parallel()

	st, err := sys.StatPath(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, sys.TypeDirectory, st.Type)
}

func Test_StatPath_Returns_ErrNotFound_When_Missing(t *testing.T) {
	t.Parallel()

	_, err := sys.StatPath(filepath.Join(t.TempDir(), "missing"))

	require.ErrorIs(t, err, sys.ErrNotFound)
}

func Test_Stats_Are_A_Snapshot_Not_A_View(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "growing.txt")
	mustCreate(t, path, []byte("aa"))

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	before, err := sys.Stat(fd)
	require.NoError(t, err)

	_, err = fd.Pwrite([]byte("bbbb"), 2)
	require.NoError(t, err)

	require.Equal(t, int64(2), before.Size)

	after, err := sys.Stat(fd)
	require.NoError(t, err)
	require.Equal(t, int64(6), after.Size)
}
