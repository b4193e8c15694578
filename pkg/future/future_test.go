package future

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adibhanna/resultgo/pkg/result"
)

func TestGoSuccess(t *testing.T) {
	f := Go(func() (int, error) {
		return 42, nil
	})

	res := f.Wait()
	require.True(t, res.IsOk())
	require.Equal(t, 42, res.Unwrap())
}

func TestGoError(t *testing.T) {
	wantErr := fmt.Errorf("bad")

	f := Go(func() (int, error) {
		return 0, wantErr
	})

	res := f.Wait()
	require.True(t, res.IsErr())
	require.Equal(t, wantErr, res.UnwrapErr())
}

func TestGoPanic(t *testing.T) {
	f := Go(func() (int, error) {
		panic("boom")
	})

	res := f.Wait()
	require.True(t, res.IsErr())

	var panicErr *result.PanicError
	require.ErrorAs(t, res.UnwrapErr(), &panicErr)
	require.Equal(t, "boom", panicErr.Value)
}

func TestWaitIsIdempotent(t *testing.T) {
	f := Go(func() (int, error) {
		return 7, nil
	})

	first := f.Wait()
	second := f.Wait()
	require.Equal(t, first, second)
	require.Equal(t, 7, second.Unwrap())
}

func TestAwaitSettled(t *testing.T) {
	f := Go(func() (string, error) {
		return "done", nil
	})

	res := f.Await(context.Background())
	require.True(t, res.IsOk())
	require.Equal(t, "done", res.Unwrap())
}

func TestAwaitContextCancelled(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 42, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.Await(ctx)
	require.True(t, res.IsErr())
	require.ErrorIs(t, res.UnwrapErr(), context.Canceled)

	// The computation was not cancelled; a later Wait still settles.
	close(release)
	require.Equal(t, 42, f.Wait().Unwrap())
}

func TestDoneSelect(t *testing.T) {
	f := Go(func() (int, error) {
		return 1, nil
	})

	select {
	case <-f.Done():
		require.Equal(t, 1, f.Wait().Unwrap())
	case <-time.After(5 * time.Second):
		t.Fatal("future did not settle")
	}
}

func TestConcurrentWaiters(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 9, nil
	})

	results := make(chan result.Result[int], 4)
	for i := 0; i < 4; i++ {
		go func() {
			results <- f.Wait()
		}()
	}

	close(release)
	for i := 0; i < 4; i++ {
		res := <-results
		require.Equal(t, 9, res.Unwrap())
	}
}
