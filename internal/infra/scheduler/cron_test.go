//go:build unit

package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_InvalidSpec(t *testing.T) {
	s := New(time.UTC, time.Second)

	err := s.Register("archival", "not a cron spec", func(context.Context) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "archival")
}

func TestScheduler_RunsJob(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	s := New(tokyo, 5*time.Second)

	var runs atomic.Int32
	hasDeadline := make(chan bool, 1)
	require.NoError(t, s.Register("tick", "@every 1s", func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			_, ok := ctx.Deadline()
			hasDeadline <- ok
		}
		return nil
	}))

	s.Start()
	defer func() { _ = s.Stop(context.Background()) }()

	select {
	case ok := <-hasDeadline:
		assert.True(t, ok, "jobs run under the configured timeout")
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(1))
}

func TestScheduler_StopCancelsRunningJob(t *testing.T) {
	s := New(time.UTC, 0)

	started := make(chan struct{}, 1)
	cancelled := make(chan struct{})
	require.NoError(t, s.Register("slow", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case <-cancelled:
	default:
		t.Fatal("running job was not cancelled")
	}
}

func TestScheduler_StopHonoursDeadline(t *testing.T) {
	s := New(time.UTC, 0)
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	require.NoError(t, s.Register("stuck", "@every 1s", func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}))
	s.Start()
	defer close(release)

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
}
