package pshared

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexZeroValueUnlocked(t *testing.T) {
	var m Mutex
	require.True(t, m.TryLock())
	m.Unlock()
}

func TestMutexExcludesConcurrentAccess(t *testing.T) {
	var m Mutex
	var counter int64
	var wg sync.WaitGroup

	const goroutines = 32
	const iterations = 200

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(goroutines*iterations), counter)
}

func TestMutexTryLockFailsWhileHeld(t *testing.T) {
	var m Mutex
	m.Lock()
	require.False(t, m.TryLock())
	m.Unlock()
	require.True(t, m.TryLock())
	m.Unlock()
}

func TestMutexWakesWaiters(t *testing.T) {
	var m Mutex
	m.Lock()

	var acquired int32
	done := make(chan struct{})
	go func() {
		m.Lock()
		atomic.StoreInt32(&acquired, 1)
		m.Unlock()
		close(done)
	}()

	require.Equal(t, int32(0), atomic.LoadInt32(&acquired))
	m.Unlock()
	<-done
	require.Equal(t, int32(1), atomic.LoadInt32(&acquired))
}
