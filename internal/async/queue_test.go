package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	fail      map[uuid.UUID]error
	ctxErrs   []error
	blockFor  time.Duration // wait this long (or until ctx) before returning
}

func (s *stubProcessor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	if s.blockFor > 0 {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.ctxErrs = append(s.ctxErrs, ctx.Err())
			s.mu.Unlock()
			return uuid.Nil, ctx.Err()
		case <-time.After(s.blockFor):
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.fail[fileID]; ok {
		return uuid.Nil, err
	}
	s.processed = append(s.processed, fileID)
	return uuid.New(), nil
}

func (s *stubProcessor) processedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.processed)
}

func TestProcessorQueueDrainsOnShutdown(t *testing.T) {
	proc := &stubProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 5, proc.processedCount())
}

func TestProcessorQueueContinuesAfterFailure(t *testing.T) {
	bad, good := uuid.New(), uuid.New()
	proc := &stubProcessor{fail: map[uuid.UUID]error{bad: errors.New("no usable text")}}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: bad}))
	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: good}))
	q.Shutdown(context.Background())

	require.Equal(t, 1, proc.processedCount())
	assert.Equal(t, good, proc.processed[0])
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &stubProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	assert.Equal(t, 0, proc.processedCount())
}

func TestProcessorQueueShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(&stubProcessor{}, testLogger(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic on the closed channel
}

func TestProcessorQueueAppliesProcessTimeout(t *testing.T) {
	proc := &stubProcessor{blockFor: time.Hour}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1), WithProcessTimeout(20*time.Millisecond))

	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	q.Shutdown(context.Background())

	require.Len(t, proc.ctxErrs, 1)
	assert.ErrorIs(t, proc.ctxErrs[0], context.DeadlineExceeded)
}
