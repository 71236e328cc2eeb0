// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_DefaultSize(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), NewPool(0).Size())
	assert.Equal(t, runtime.GOMAXPROCS(0), NewPool(-3).Size())
	assert.Equal(t, 4, NewPool(4).Size())
}

func TestPool_Do_ReturnsJobError(t *testing.T) {
	p := NewPool(1)
	errBoom := errors.New("boom")

	err := p.Do(context.Background(), func() error { return errBoom })

	assert.ErrorIs(t, err, errBoom)
}

func TestPool_Do_BoundsConcurrency(t *testing.T) {
	const size = 2
	p := NewPool(size)

	var (
		running atomic.Int32
		peak    atomic.Int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_Do_CancelledWhileWaiting(t *testing.T) {
	p := NewPool(1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := p.Do(ctx, func() error {
		called = true
		return nil
	})
	close(release)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
