package enquiry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenGetRemove(t *testing.T) {
	r := NewRegistry(&recordingSink{})

	f := r.Open("Kaveri Farms")
	got, ok := r.Get(f.ID())
	require.True(t, ok)
	assert.Same(t, f, got)
	assert.Equal(t, PrefillMessage("Kaveri Farms"), got.Snapshot().Values.Message)
	assert.Equal(t, 1, r.Len())

	r.Remove(f.ID())
	_, ok = r.Get(f.ID())
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestRegistryFormsShareSink(t *testing.T) {
	sink := &recordingSink{}
	r := NewRegistry(sink)

	a, b := r.Open(""), r.Open("")
	_, err := a.Submit(context.Background(), validInput())
	require.NoError(t, err)
	_, err = b.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 2, sink.count())
}

func TestRegistrySweep(t *testing.T) {
	sink := newGateSink()
	r := NewRegistry(sink)

	idle := r.Open("")
	busy := r.Open("")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = busy.Submit(context.Background(), validInput())
	}()
	<-sink.entered

	assert.Zero(t, r.Sweep(time.Hour))
	assert.Equal(t, 1, r.SweepBefore(time.Now().Add(time.Minute)))

	_, ok := r.Get(idle.ID())
	assert.False(t, ok)
	_, ok = r.Get(busy.ID())
	assert.True(t, ok, "in-flight forms survive a sweep")

	close(sink.release)
	<-done
	assert.Equal(t, 1, r.SweepBefore(time.Now().Add(time.Minute)))
}
