package sys

// RetryPolicy controls transparent interruption handling.
//
// Signals (SIGWINCH, SIGCHLD, timers) can interrupt any blocking syscall
// with EINTR; the call did not fail, it just needs to be reissued. Retrying
// is the default. The retry count is capped so a pathological signal storm
// cannot spin forever; the cap should never be hit in practice.
//
// The policy is explicit configuration, not hidden module state: operations
// that honor it either take it from [DefaultRetry] (package functions and FD
// methods) or carry their own copy ([Handle.Retry]), keeping behavior
// reproducible under test.
type RetryPolicy struct {
	// RetryInterrupts reissues calls that fail with EINTR. When false,
	// interruption surfaces as [ErrInterrupted].
	RetryInterrupts bool

	// MaxAttempts caps the total number of issue attempts. Values <= 0
	// mean a single attempt.
	MaxAttempts int
}

// DefaultRetry is the policy used by package-level functions and FD methods.
var DefaultRetry = RetryPolicy{
	RetryInterrupts: true,
	MaxAttempts:     10000,
}

func (p RetryPolicy) attempts() int {
	if !p.RetryInterrupts || p.MaxAttempts <= 0 {
		return 1
	}

	return p.MaxAttempts
}
