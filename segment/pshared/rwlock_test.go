package pshared

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRWMutexMultipleReaders(t *testing.T) {
	var rw RWMutex
	var active int32
	var maxSeen int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rw.RLock()
			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}
			atomic.AddInt32(&active, -1)
			rw.RUnlock()
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(t, atomic.LoadInt32(&maxSeen), int32(1))
}

func TestRWMutexWriterExcludesReaders(t *testing.T) {
	var rw RWMutex
	rw.Lock()

	done := make(chan struct{})
	go func() {
		rw.RLock()
		rw.RUnlock()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("reader acquired lock while writer held it")
	case <-time.After(20 * time.Millisecond):
	}

	rw.Unlock()
	<-done
}
