package postgres

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator_SortsInIssueOrderWithinMillisecond(t *testing.T) {
	frozen := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	gen := newULIDGeneratorWithClock(func() time.Time { return frozen })

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = gen.Generate()
	}

	assert.True(t, sort.StringsAreSorted(ids), "ids issued in one millisecond must sort in issue order")

	parsed, err := ulid.Parse(ids[0])
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(frozen), parsed.Time())
}

func TestULIDGenerator_ConcurrentUnique(t *testing.T) {
	gen := NewULIDGenerator()

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 400)
}
