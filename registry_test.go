package emergency

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassInitOneShot(t *testing.T) {
	resetClassInit()
	t.Cleanup(resetClassInit)

	require.NoError(t, ClassInit())
	require.ErrorIs(t, ClassInit(), ErrReinitialized)
	require.ErrorIs(t, ClassInit(), ErrReinitialized)
}

func TestClassInitConcurrentSingleWinner(t *testing.T) {
	resetClassInit()
	t.Cleanup(resetClassInit)

	const callers = 32

	var wg sync.WaitGroup
	var successes atomic.Int32

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if ClassInit() == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	// At most one caller may observe success in any execution; with the gate
	// freshly reset, exactly one does.
	require.Equal(t, int32(1), successes.Load())
}
