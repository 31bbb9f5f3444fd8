package thread_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/thread"
)

func Test_TryLock_Fails_When_Held_And_Succeeds_After_Unlock(t *testing.T) {
	t.Parallel()

	var mu thread.Mutex

	mu.Lock()
	require.False(t, mu.TryLock())

	mu.Unlock()
	require.True(t, mu.TryLock())

	mu.Unlock()
}
