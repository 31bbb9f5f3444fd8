//go:build unix

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// retryIntr issues fn, transparently reissuing it on EINTR per the policy.
// Any terminal failure is classified into the taxonomy under op.
func retryIntr(policy RetryPolicy, op string, fn func() error) error {
	var err error

	for i, attempts := 0, policy.attempts(); i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, unix.EINTR) {
			return wrapErr(op, err)
		}
	}

	return wrapErr(op, err)
}
