package enquiry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sungraze_backend/internal/model"
)

// recordingSink stores every payload and fails when err is set.
type recordingSink struct {
	mu       sync.Mutex
	payloads []model.EnquiryPayload
	err      error
}

func (s *recordingSink) Deliver(_ context.Context, p model.EnquiryPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

// gateSink blocks each delivery until release is closed.
type gateSink struct {
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newGateSink() *gateSink {
	return &gateSink{entered: make(chan struct{}, 8), release: make(chan struct{})}
}

func (s *gateSink) Deliver(ctx context.Context, _ model.EnquiryPayload) error {
	s.calls.Add(1)
	s.entered <- struct{}{}
	<-s.release
	return ctx.Err()
}

func TestNewFormPrefill(t *testing.T) {
	f := NewForm(&recordingSink{}, "Kaveri Farms")
	snap := f.Snapshot()

	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, "I'm interested in Kaveri Farms. Please share more details.", snap.Values.Message)
	assert.Empty(t, snap.Values.Name)
	assert.Nil(t, snap.Errors)
	assert.NotEmpty(t, snap.ID)

	blank := NewForm(&recordingSink{}, "")
	assert.Empty(t, blank.Snapshot().Values.Message)
	assert.NotEqual(t, f.ID(), blank.ID())
}

func TestSubmitInvalidKeepsValues(t *testing.T) {
	sink := &recordingSink{}
	f := NewForm(sink, "")

	in := validInput()
	in.Name = "A"
	_, err := f.Submit(context.Background(), in)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Name must be at least 2 characters", verrs[FieldName])

	snap := f.Snapshot()
	assert.Equal(t, StateEditingWithErrors, snap.State)
	assert.Equal(t, in, snap.Values)
	assert.Equal(t, ValidationErrors{FieldName: "Name must be at least 2 characters"}, snap.Errors)
	assert.Zero(t, sink.count())
}

func TestSubmitValid(t *testing.T) {
	sink := &recordingSink{}
	f := NewForm(sink, "Chola Farms")

	payload, err := f.Submit(context.Background(), validInput())
	require.NoError(t, err)

	require.Equal(t, 1, sink.count())
	assert.Equal(t, payload, sink.payloads[0])
	assert.Equal(t, "Jane Doe", payload.Name)
	assert.Equal(t, "Chola Farms", payload.ProjectName)
	assert.NotEmpty(t, payload.Reference)
	assert.False(t, payload.SubmittedAt.IsZero())

	snap := f.Snapshot()
	assert.Equal(t, StateSubmitted, snap.State)
	assert.Equal(t, payload.Reference, snap.Reference)
	assert.Nil(t, snap.Errors)
}

func TestSubmitAfterErrorsRecovers(t *testing.T) {
	sink := &recordingSink{}
	f := NewForm(sink, "")

	bad := validInput()
	bad.Email = "nope"
	_, err := f.Submit(context.Background(), bad)
	require.Error(t, err)

	_, err = f.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, f.State())
	assert.Equal(t, 1, sink.count())
}

func TestSubmitWhileSubmittingIsNoop(t *testing.T) {
	sink := newGateSink()
	f := NewForm(sink, "")

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), validInput())
		done <- err
	}()
	<-sink.entered

	assert.Equal(t, StateSubmitting, f.State())
	snap := f.Snapshot() // not blocked by the in-flight delivery
	assert.Equal(t, StateSubmitting, snap.State)

	other := validInput()
	other.Name = "Someone Else"
	_, err := f.Submit(context.Background(), other)
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.ErrorIs(t, f.Reset(), ErrSubmissionInProgress)
	assert.Equal(t, "Jane Doe", f.Snapshot().Values.Name)

	close(sink.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), sink.calls.Load())
	assert.Equal(t, StateSubmitted, f.State())
}

func TestSubmitIgnoresCallerCancellation(t *testing.T) {
	sink := newGateSink()
	f := NewForm(sink, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(ctx, validInput())
		done <- err
	}()
	<-sink.entered
	cancel()
	close(sink.release)

	require.NoError(t, <-done)
	assert.Equal(t, StateSubmitted, f.State())
}

func TestConcurrentSubmitsDeliverOnce(t *testing.T) {
	sink := newGateSink()
	f := NewForm(sink, "")

	var wg sync.WaitGroup
	var inProgress atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Submit(context.Background(), validInput()); errors.Is(err, ErrSubmissionInProgress) {
				inProgress.Add(1)
			}
		}()
	}

	<-sink.entered
	// let every other goroutine hit the gate before releasing
	require.Eventually(t, func() bool { return inProgress.Load() == 9 }, time.Second, time.Millisecond)
	close(sink.release)
	wg.Wait()

	assert.Equal(t, int32(1), sink.calls.Load())
}

func TestSubmitSinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("smtp down")}
	f := NewForm(sink, "Lakshmi Enclave")

	in := validInput()
	_, err := f.Submit(context.Background(), in)
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorContains(t, err, "smtp down")

	snap := f.Snapshot()
	assert.Equal(t, StateEditingWithErrors, snap.State)
	assert.Equal(t, ValidationErrors{FieldForm: SubmitFailedMessage}, snap.Errors)
	assert.Equal(t, in, snap.Values)

	// a retry by the user goes through once the sink recovers
	sink.mu.Lock()
	sink.err = nil
	sink.mu.Unlock()
	_, err = f.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, sink.count())
}

func TestSubmitAfterSubmitted(t *testing.T) {
	sink := &recordingSink{}
	f := NewForm(sink, "")

	_, err := f.Submit(context.Background(), validInput())
	require.NoError(t, err)

	_, err = f.Submit(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, sink.count())
}

func TestResetRestoresPrefill(t *testing.T) {
	sink := &recordingSink{}
	f := NewForm(sink, "Sunrise Meadows")

	_, err := f.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.NoError(t, f.Reset())

	snap := f.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, PrefillMessage("Sunrise Meadows"), snap.Values.Message)
	assert.Empty(t, snap.Values.Email)
	assert.Empty(t, snap.Reference)

	_, err = f.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 2, sink.count())
}

func TestSnapshotIsACopy(t *testing.T) {
	f := NewForm(&recordingSink{}, "")
	_, _ = f.Submit(context.Background(), model.EnquiryInput{})

	snap := f.Snapshot()
	snap.Errors[FieldName] = "changed"
	assert.Equal(t, "Name must be at least 2 characters", f.Snapshot().Errors[FieldName])
}
