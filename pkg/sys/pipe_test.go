package sys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_Pipe_Transfers_Bytes_In_Order(t *testing.T) {
	t.Parallel()

	r, w, err := sys.Pipe()
	require.NoError(t, err)

	defer r.Close()

	payload := []byte("through the kernel")

	n, err := w.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.NoError(t, w.Close())

	buf := make([]byte, 64)
	got := make([]byte, 0, len(payload))

	for {
		n, err := r.Read(buf)
		require.NoError(t, err)

		if n == 0 {
			break
		}

		got = append(got, buf[:n]...)
	}

	require.Equal(t, payload, got)
}

func Test_Pipe_Read_Returns_Zero_When_Writer_Closed(t *testing.T) {
	t.Parallel()

	r, w, err := sys.Pipe()
	require.NoError(t, err)

	defer r.Close()

	require.NoError(t, w.Close())

	n, err := r.Read(make([]byte, 8))
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
