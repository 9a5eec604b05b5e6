package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_BroadcastDropsSlowClientUnderConcurrentReads(t *testing.T) {
	h := NewHub()
	go h.Run()

	fast := NewClient(h)
	h.Register(fast)

	slow := NewClient(h)
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("backlog")
	}
	h.Register(slow)

	assert.Eventually(t, func() bool { return h.ClientCount() == 2 },
		time.Second, 10*time.Millisecond)

	// Hammer the counter while the broadcast drops the slow client; the
	// race detector flags the drop if it happens without the write lock.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h.ClientCount()
			}
		}()
	}

	h.Broadcast([]byte("hello"))
	wg.Wait()

	assert.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 10*time.Millisecond, "slow client dropped, fast client kept")
	assert.Equal(t, []byte("hello"), <-fast.Send())
}
