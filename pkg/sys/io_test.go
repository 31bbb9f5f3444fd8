package sys_test

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/internal/testutil"
	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Write_Then_Read_Round_Trips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hello.txt")

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{Create: true}, 0o644)
	require.NoError(t, err)

	payload := []byte("Hello, kernel!")

	n, err := fd.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)

	_, err = fd.Seek(0, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, len(payload))

	n, err = fd.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	testutil.RequireBytesEqual(t, payload, buf[:n])

	st, err := sys.Stat(fd)
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), st.Size)

	require.NoError(t, fd.Close())
	require.NoError(t, sys.Unlink(path))

	_, err = sys.StatPath(path)
	require.ErrorIs(t, err, sys.ErrNotFound)
}

func Test_Read_Returns_Zero_At_End_Of_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	mustCreate(t, path, nil)

	fd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	n, err := fd.Read(make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func Test_Pread_Reads_At_Offset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "offsets.txt")
	mustCreate(t, path, []byte("0123456789"))

	fd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	buf := make([]byte, 4)

	n, err := fd.Pread(buf, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "3456", string(buf))
}

func Test_Pwrite_Extends_File_When_Offset_Past_End(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sparse.txt")
	mustCreate(t, path, []byte("ab"))

	fd, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)

	n, err := fd.Pwrite([]byte("zz"), 10)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	st, err := sys.Stat(fd)
	require.NoError(t, err)
	require.Equal(t, int64(12), st.Size)

	require.NoError(t, fd.Close())
}

func Test_Concurrent_Positional_Writers_Do_Not_Interfere(t *testing.T) {
	t.Parallel()

	const (
		writers   = 8
		chunkSize = 512
	)

	path := filepath.Join(t.TempDir(), "parallel.bin")

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{Create: true}, 0o644)
	require.NoError(t, err)
	defer fd.Close()

	var wg sync.WaitGroup

	for i := 0; i < writers; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			chunk := make([]byte, chunkSize)
			for j := range chunk {
				chunk[j] = byte(i)
			}

			off := int64(i * chunkSize)
			written := 0

			for written < len(chunk) {
				n, err := fd.Pwrite(chunk[written:], off+int64(written))
				if err != nil {
					t.Errorf("writer %d: %v", i, err)

					return
				}

				written += n
			}
		}()
	}

	wg.Wait()

	for i := 0; i < writers; i++ {
		buf := make([]byte, chunkSize)

		n, err := fd.Pread(buf, int64(i*chunkSize))
		require.NoError(t, err)
		require.Equal(t, chunkSize, n)

		for j, b := range buf {
			if b != byte(i) {
				t.Fatalf("region %d byte %d = %d, want %d", i, j, b, i)
			}
		}
	}
}

func Test_Truncate_Shrinks_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shrink.txt")
	mustCreate(t, path, []byte("0123456789"))

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, fd.Truncate(4))

	st, err := sys.Stat(fd)
	require.NoError(t, err)
	require.Equal(t, int64(4), st.Size)

	buf := make([]byte, 10)

	n, err := fd.Pread(buf, 0)
	require.NoError(t, err)
	require.Equal(t, "0123", string(buf[:n]))
}

func Test_Append_Positions_Writes_At_End(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.txt")
	mustCreate(t, path, []byte("first\n"))

	fd, err := sys.Open(path, sys.WriteOnly, sys.OpenOptions{Append: true}, 0)
	require.NoError(t, err)

	_, err = fd.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, fd.Close())

	rd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer rd.Close()

	buf := make([]byte, 64)

	n, err := rd.Pread(buf, 0)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(buf[:n]))
}

func Test_Sync_And_Datasync_Succeed_On_Regular_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "durable.txt")
	mustCreate(t, path, []byte("x"))

	fd, err := sys.Open(path, sys.ReadWrite, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, fd.Sync())
	require.NoError(t, fd.Datasync())
}

func Test_Seek_Reports_New_Offset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seek.txt")
	mustCreate(t, path, []byte("0123456789"))

	fd, err := sys.Open(path, sys.ReadOnly, sys.OpenOptions{}, 0)
	require.NoError(t, err)
	defer fd.Close()

	for _, tc := range []struct {
		offset int64
		whence int
		want   int64
	}{
		{4, io.SeekStart, 4},
		{2, io.SeekCurrent, 6},
		{-1, io.SeekEnd, 9},
	} {
		pos, err := fd.Seek(tc.offset, tc.whence)
		require.NoError(t, err, fmt.Sprintf("whence %d", tc.whence))
		require.Equal(t, tc.want, pos)
	}
}
