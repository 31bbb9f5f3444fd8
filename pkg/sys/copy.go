package sys

// Copy duplicates the file at src into dst, creating or truncating dst with
// the given permissions. Where the platform and filesystem support it, the
// copy is kernel-accelerated (reflink/copy-on-write clone, or an in-kernel
// byte copy); otherwise an explicit positional read/write loop runs. The
// fallback is invisible to callers - no [ErrUnsupported] escapes when the
// loop can serve - and byte-for-byte duplication is guaranteed either way.
//
// Errors: [ErrNotFound], [ErrPermission], [ErrIsDirectory], [ErrNoSpace],
// [ErrEmbeddedNull], [ErrTooLong], [ErrInterrupted], [ErrUnknown].
func Copy(src, dst string, perm Permissions) error {
	done, err := copyAccelerated(src, dst, perm)
	if err != nil {
		return err
	}

	if done {
		return nil
	}

	return copyLoop(src, dst, perm)
}

const copyChunk = 1 << 20

// copyLoop is the portable fallback: positional reads from src, full-length
// positional writes to dst. The internal write loop runs to completion -
// policy-free short writes are for callers of the transfer API, not for a
// whole-file duplication primitive.
func copyLoop(src, dst string, perm Permissions) error {
	in, err := Open(src, ReadOnly, OpenOptions{}, 0)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := Open(dst, WriteOnly, OpenOptions{Create: true, Truncate: true}, perm)
	if err != nil {
		return err
	}

	buf := make([]byte, copyChunk)

	var off int64

	for {
		n, err := in.Pread(buf, off)
		if err != nil {
			_ = out.Close()

			return err
		}

		if n == 0 {
			break
		}

		written := 0

		for written < n {
			w, err := out.Pwrite(buf[written:n], off+int64(written))
			if err != nil {
				_ = out.Close()

				return err
			}

			written += w
		}

		off += int64(n)
	}

	return out.Close()
}
