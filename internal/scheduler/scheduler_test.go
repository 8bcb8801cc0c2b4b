package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRejectsBadSpec(t *testing.T) {
	s := New()
	assert.Error(t, s.Add("bad", "*/5 * * * *x", func(context.Context) error { return nil }))
	// five fields is a minute-resolution spec and is not accepted
	assert.Error(t, s.Add("five", "*/5 * * * *", func(context.Context) error { return nil }))
	assert.NoError(t, s.Add("ok", "0 */5 * * * *", func(context.Context) error { return nil }))
}

func TestRunSurvivesErrors(t *testing.T) {
	s := New()
	var calls int32
	job := func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("db down")
	}
	s.run("failing", job)
	s.run("failing", job)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestJobRunsOnTick(t *testing.T) {
	s := New()
	ran := make(chan struct{}, 1)
	require.NoError(t, s.Add("tick", "* * * * * *", func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))
	s.Start()
	defer s.Stop(context.Background())

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestStopCancelsJobContext(t *testing.T) {
	s := New()
	s.Stop(context.Background())
	assert.Error(t, s.ctx.Err())
}
