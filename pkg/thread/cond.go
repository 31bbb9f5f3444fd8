// Package thread provides a mutex and a condition variable with a timed,
// non-lossy wait.
//
// The condition variable differs from sync.Cond in two ways that matter for
// coordination across goroutines that cannot both be running yet: Wait takes
// a timeout and reports whether it was woken or timed out, and a signal or
// broadcast issued while no one is waiting is not discarded - it latches one
// pending wakeup that the next Wait consumes immediately.
package thread

import (
	"time"
)

// Cond is a condition variable bound to one [Mutex].
//
// The usual predicate loop applies: callers hold the mutex, check the
// predicate, and Wait in a loop until it holds. Signal and Broadcast may be
// called with or without the mutex held, but publishing the predicate change
// under the mutex is what makes the wakeup reliable.
type Cond struct {
	m *Mutex

	q       Mutex
	waiters []chan struct{}
	pending bool
}

// NewCond returns a condition variable bound to m.
func NewCond(m *Mutex) *Cond {
	return &Cond{m: m}
}

// Wait atomically releases the bound mutex and blocks until woken by
// [Cond.Signal] or [Cond.Broadcast], or until timeout elapses. The mutex is
// reacquired before Wait returns. The return value reports whether the wait
// was woken (true) or timed out (false); timing out is a normal outcome, not
// an error.
//
// A negative timeout waits forever. A zero timeout polls: it consumes a
// pending wakeup if one is latched and otherwise returns false without
// releasing the mutex.
func (c *Cond) Wait(timeout time.Duration) bool {
	c.q.Lock()

	if c.pending {
		c.pending = false
		c.q.Unlock()

		return true
	}

	if timeout == 0 {
		c.q.Unlock()

		return false
	}

	ch := make(chan struct{})
	c.waiters = append(c.waiters, ch)
	c.q.Unlock()

	c.m.Unlock()

	signaled := c.block(ch, timeout)

	c.m.Lock()

	return signaled
}

func (c *Cond) block(ch chan struct{}, timeout time.Duration) bool {
	if timeout < 0 {
		<-ch

		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		return true
	case <-timer.C:
		// The timer firing does not win the race by itself: a signal may
		// have already popped this waiter. Still enqueued means a genuine
		// timeout; already popped means the wakeup is ours to consume.
		c.q.Lock()
		defer c.q.Unlock()

		return !c.removeWaiter(ch)
	}
}

// removeWaiter takes ch out of the queue and reports whether it was still
// enqueued. Callers must hold c.q.
func (c *Cond) removeWaiter(ch chan struct{}) bool {
	for i, w := range c.waiters {
		if w == ch {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)

			return true
		}
	}

	return false
}

// Signal wakes one waiter. With no waiter present it latches a single
// pending wakeup for the next Wait; repeated signals do not accumulate
// beyond one.
func (c *Cond) Signal() {
	c.q.Lock()
	defer c.q.Unlock()

	if len(c.waiters) == 0 {
		c.pending = true

		return
	}

	ch := c.waiters[0]
	c.waiters = c.waiters[1:]
	close(ch)
}

// Broadcast wakes every waiter. With no waiter present it latches a single
// pending wakeup, same as [Cond.Signal].
func (c *Cond) Broadcast() {
	c.q.Lock()
	defer c.q.Unlock()

	if len(c.waiters) == 0 {
		c.pending = true

		return
	}

	for _, ch := range c.waiters {
		close(ch)
	}

	c.waiters = nil
}
