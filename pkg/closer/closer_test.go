package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFOOrder(t *testing.T) {
	c := NewCloser(0)

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		c.Add(func(_ context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0)

	closeErr := errors.New("connection reset")
	c.Add(func(_ context.Context) error { return nil })
	c.Add(func(_ context.Context) error { return closeErr })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), closeErr.Error())
}

func TestCloser_CloseIsIdempotent(t *testing.T) {
	c := NewCloser(0)

	calls := 0
	c.Add(func(_ context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_ForcedCloseOnCancelledContext(t *testing.T) {
	c := NewCloser(50 * time.Millisecond)

	slowErr := errors.New("slow resource")
	c.Add(func(ctx context.Context) error {
		<-ctx.Done()
		return slowErr
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	// и graceful-, и принудительный путь доносят ошибку ресурса
	assert.Contains(t, err.Error(), slowErr.Error())
}

func TestCloser_ConcurrentAdd(t *testing.T) {
	c := NewCloser(0)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		closed int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(func(_ context.Context) error {
				mu.Lock()
				closed++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 8, closed)
}
