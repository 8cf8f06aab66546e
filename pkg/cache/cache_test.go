package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data     map[string][]byte
	tags     map[string][]string
	getErr   error
	setErr   error
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, tags: map[string][]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration, tags ...string) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	for _, t := range tags {
		f.tags[t] = append(f.tags[t], key)
	}
	return nil
}

func (f *fakeCache) InvalidateTags(_ context.Context, tags ...string) error {
	for _, t := range tags {
		for _, k := range f.tags[t] {
			delete(f.data, k)
		}
		delete(f.tags, t)
	}
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func counting(calls *int, payload string) ComputeFn {
	return func(context.Context) ([]byte, error) {
		*calls++
		return []byte(payload), nil
	}
}

func TestGetOrCompute_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c := newFakeCache()
	calls := 0

	first, err := GetOrCompute(ctx, c, "k", time.Minute, []string{"tag"}, counting(&calls, "v1"))
	require.NoError(t, err)
	second, err := GetOrCompute(ctx, c, "k", time.Minute, []string{"tag"}, counting(&calls, "v2"))
	require.NoError(t, err)

	assert.Equal(t, []byte("v1"), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"k"}, c.tags["tag"])
}

func TestGetOrCompute_RecomputesAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	c := newFakeCache()
	calls := 0

	_, err := GetOrCompute(ctx, c, "k", time.Minute, []string{"tag"}, counting(&calls, "old"))
	require.NoError(t, err)
	require.NoError(t, c.InvalidateTags(ctx, "tag"))

	data, err := GetOrCompute(ctx, c, "k", time.Minute, []string{"tag"}, counting(&calls, "new"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ReadErrorFallsThrough(t *testing.T) {
	c := newFakeCache()
	c.getErr = errors.New("connection refused")
	calls := 0

	data, err := GetOrCompute(context.Background(), c, "k", time.Minute, nil, counting(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_WriteErrorStillReturnsValue(t *testing.T) {
	c := newFakeCache()
	c.setErr = errors.New("read only replica")
	calls := 0

	data, err := GetOrCompute(context.Background(), c, "k", time.Minute, nil, counting(&calls, "v"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
	assert.Equal(t, 1, c.setCalls)
}

func TestGetOrCompute_ComputeErrorIsNotCached(t *testing.T) {
	c := newFakeCache()
	boom := errors.New("db down")

	_, err := GetOrCompute(context.Background(), c, "k", time.Minute, nil, func(context.Context) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.setCalls)
}
