package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Run_Prints_Usage_Without_Arguments(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	code := run(nil, nil, &out, &errOut)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Usage: sk")
	require.Contains(t, out.String(), "stat")
}

func Test_Run_Fails_On_Unknown_Command(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	code := run([]string{"frobnicate"}, nil, &out, &errOut)

	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "unknown command")
}

func Test_Run_Stat_Prints_Metadata(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "target.txt")

	var out, errOut strings.Builder

	code := run([]string{"write", path}, strings.NewReader("payload"), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "wrote 7 bytes")

	out.Reset()

	code = run([]string{"stat", path}, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "type:  regular")
	require.Contains(t, out.String(), "size:  7")
}

func Test_Run_Copy_Duplicates_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")

	var out, errOut strings.Builder

	code := run([]string{"write", src}, strings.NewReader("duplicated"), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	out.Reset()

	code = run([]string{"copy", src, dst}, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "copied 10 bytes")
}
