//go:build windows

package sys

// retryIntr issues fn once; Windows has no EINTR-style interruption, so the
// policy's retry knobs are inert here. Failures are classified under op.
func retryIntr(_ RetryPolicy, op string, fn func() error) error {
	return wrapErr(op, fn())
}
