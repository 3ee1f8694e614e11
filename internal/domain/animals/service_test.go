package animals

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"animal-encyclopedia/internal/metrics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test source / cache
// -------------------------

type fakeSource struct {
	configured bool
	// responses se consume en orden; la última se repite.
	responses [][]Animal
	errAt     int // intento (1-based) que falla; 0 = nunca
	err       error

	calls []string
}

func (f *fakeSource) IsConfigured() bool { return f.configured }

func (f *fakeSource) ByName(ctx context.Context, name string) ([]Animal, error) {
	f.calls = append(f.calls, name)
	n := len(f.calls)
	if f.errAt != 0 && n == f.errAt {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return []Animal{}, nil
	}
	i := min(n-1, len(f.responses)-1)
	return f.responses[i], nil
}

type mapCache struct {
	m    map[string][]Animal
	sets int
}

func (c *mapCache) Get(ctx context.Context, key string) ([]Animal, bool, error) {
	v, ok := c.m[key]
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, items []Animal) error {
	c.sets++
	c.m[key] = items
	return nil
}

type staticCatalog struct {
	items []Animal
	err   error
}

func (c staticCatalog) List(ctx context.Context) ([]Animal, error) { return c.items, c.err }

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func names(items []Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func remote(n int) []Animal {
	out := make([]Animal, 0, n)
	for i := range n {
		out = append(out, Animal{Name: string(rune('A'+i)) + "-remote"})
	}
	return out
}

// -------------------------
// Sampling
// -------------------------

func TestSample_DistinctFromList(t *testing.T) {
	rng := seeded()
	all := names(SampleAnimals)

	for count := 0; count <= len(SampleAnimals); count++ {
		got := Sample(rng, SampleAnimals, count)
		require.Len(t, got, count)

		seen := map[string]bool{}
		for _, a := range got {
			assert.Contains(t, all, a.Name)
			assert.False(t, seen[a.Name], "duplicate %s", a.Name)
			seen[a.Name] = true
		}
	}
}

func TestSample_CountAboveListReturnsAllOnce(t *testing.T) {
	got := Sample(seeded(), SampleAnimals, 20)

	diff := cmp.Diff(names(SampleAnimals), names(got), cmpopts.SortSlices(func(a, b string) bool { return a < b }))
	if diff != "" {
		t.Fatalf("expected every sample exactly once (-want +got):\n%s", diff)
	}
}

func TestSample_NonPositiveCount(t *testing.T) {
	assert.Empty(t, Sample(seeded(), SampleAnimals, 0))
	assert.Empty(t, Sample(seeded(), SampleAnimals, -3))
	assert.NotNil(t, Sample(seeded(), SampleAnimals, -3))
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	before := names(SampleAnimals)
	_ = Sample(seeded(), SampleAnimals, 5)
	assert.Equal(t, before, names(SampleAnimals))
}

func TestRandomLetter(t *testing.T) {
	rng := seeded()
	for range 200 {
		l := RandomLetter(rng)
		require.Len(t, l, 1)
		assert.True(t, l[0] >= 'a' && l[0] <= 'z', "letter %q", l)
	}
}

// -------------------------
// FetchRandom (con fallback)
// -------------------------

func TestFetchRandom_NotConfigured_UsesSamples(t *testing.T) {
	src := &fakeSource{configured: false}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, OriginFallback, res.Origin)
	assert.Equal(t, ReasonNotConfigured, res.Reason)
	assert.Len(t, res.Animals, 5)
	assert.Empty(t, src.calls, "no upstream call without credential")
}

func TestFetchRandom_AllEmpty_FallsBackAfterFiveAttempts(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{{}}}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, src.calls, DefaultMaxAttempts)
	assert.Equal(t, OriginFallback, res.Origin)
	assert.Equal(t, ReasonEmptyResults, res.Reason)
	assert.Equal(t, DefaultMaxAttempts, res.Attempts)
	assert.Len(t, res.Animals, 3)
}

func TestFetchRandom_StopsAtFirstNonEmpty_AndTruncates(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{{}, remote(10)}}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)

	assert.Len(t, src.calls, 2)
	assert.Equal(t, OriginRemote, res.Origin)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, names(remote(5)), names(res.Animals))
}

func TestFetchRandom_FewerRemoteThanCount(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{remote(2)}}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, OriginRemote, res.Origin)
	assert.Len(t, res.Animals, 2)
}

func TestFetchRandom_UpstreamError_FallsBack(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{{}}, errAt: 2, err: errors.New("API error: 500")}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 4)
	require.NoError(t, err)

	assert.Len(t, src.calls, 2, "error aborts the retry loop")
	assert.Equal(t, OriginFallback, res.Origin)
	assert.Equal(t, ReasonUpstreamError, res.Reason)
	assert.Len(t, res.Animals, 4)
}

func TestFetchRandom_UsesCatalog(t *testing.T) {
	custom := []Animal{{Name: "Axolotl"}, {Name: "Okapi"}}
	svc := NewService(nil, staticCatalog{items: custom}, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Axolotl", "Okapi"}, names(res.Animals))
}

func TestFetchRandom_CatalogErrorPropagates(t *testing.T) {
	svc := NewService(nil, staticCatalog{err: errors.New("db down")}, Options{Rand: seeded()})

	_, err := svc.FetchRandom(context.Background(), 5)
	require.Error(t, err)
}

func TestFetchRandom_ZeroCount(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{remote(3)}}
	svc := NewService(src, nil, Options{Rand: seeded()})

	res, err := svc.FetchRandom(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, res.Animals)
}

func TestFetchRandom_CacheHitSkipsUpstream(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{remote(3)}}
	cache := &mapCache{m: map[string][]Animal{}}
	svc := NewService(src, nil, Options{Rand: seeded(), Cache: cache})

	_, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, src.calls, 1)
	require.Equal(t, 1, cache.sets)

	// todas las letras cacheadas => sin llamadas nuevas
	for c := 'a'; c <= 'z'; c++ {
		cache.m[string(c)] = remote(1)
	}
	res, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, src.calls, 1)
	assert.Equal(t, OriginRemote, res.Origin)
}

func TestFetchRandom_CacheHitNotCountedAsUpstream(t *testing.T) {
	cache := &mapCache{m: map[string][]Animal{}}
	for c := 'a'; c <= 'z'; c++ {
		cache.m[string(c)] = remote(1)
	}
	src := &fakeSource{configured: true, responses: [][]Animal{remote(3)}}
	svc := NewService(src, nil, Options{Rand: seeded(), Cache: cache})

	upstreamOK := metrics.UpstreamRequests.WithLabelValues("ok")
	before := testutil.ToFloat64(upstreamOK)

	res, err := svc.FetchRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, OriginRemote, res.Origin)
	assert.Empty(t, src.calls)
	assert.Equal(t, before, testutil.ToFloat64(upstreamOK))

	// una llamada real sí se cuenta
	uncached := NewService(src, nil, Options{Rand: seeded()})
	_, err = uncached.FetchRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(upstreamOK))
}

// -------------------------
// FetchRandomStrict (sin fallback)
// -------------------------

func TestFetchRandomStrict_LastEmptyReturnsEmpty(t *testing.T) {
	src := &fakeSource{configured: false, responses: [][]Animal{{}}}
	svc := NewService(src, nil, Options{Rand: seeded()})

	got, err := svc.FetchRandomStrict(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Len(t, src.calls, DefaultMaxAttempts, "no credential check, no sampling")
}

func TestFetchRandomStrict_PropagatesError(t *testing.T) {
	boom := errors.New("API error: 503")
	src := &fakeSource{configured: true, errAt: 1, err: boom}
	svc := NewService(src, nil, Options{Rand: seeded()})

	_, err := svc.FetchRandomStrict(context.Background(), 5)
	require.ErrorIs(t, err, boom)
	assert.Len(t, src.calls, 1)
}

func TestFetchRandomStrict_TruncatesRemote(t *testing.T) {
	src := &fakeSource{configured: true, responses: [][]Animal{remote(9)}}
	svc := NewService(src, nil, Options{Rand: seeded(), MaxAttempts: 2})

	got, err := svc.FetchRandomStrict(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestFetchRandomStrict_NoSource(t *testing.T) {
	svc := NewService(nil, nil, Options{})
	_, err := svc.FetchRandomStrict(context.Background(), 5)
	require.ErrorIs(t, err, ErrNoSource)
}
