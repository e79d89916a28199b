package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_Pop_returns_locations_in_push_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	uris := []string{"/c.html", "/a.html", "/b.html", "/d.html"}
	for _, uri := range uris {
		f.Push(spider.NewLocation(uri))
	}

	for _, want := range uris {
		peeked, ok := f.Peek()
		require.True(t, ok)

		popped, ok := f.Pop()
		require.True(t, ok)

		assert.Equal(t, want, peeked.URI, "peek should return the next location")
		assert.Equal(t, peeked, popped, "pop should return the peeked location")
	}

	_, ok := f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_PushAll_preserves_input_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(spider.NewLocation("/seed.html"))
	f.PushAll(spider.Locations("/1.html", "/2.html", "/3.html")...)

	var got []string
	for !f.Empty() {
		loc, _ := f.Pop()
		got = append(got, loc.URI)
	}

	assert.Equal(t, []string{"/seed.html", "/1.html", "/2.html", "/3.html"}, got)
}

func TestFrontier_Peek(t *testing.T) {
	t.Parallel()

	t.Run("is stable across repeated calls", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(spider.Locations("/a.html", "/b.html")...)

		first, ok := f.Peek()
		require.True(t, ok)
		second, ok := f.Peek()
		require.True(t, ok)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, f.Len(), "peek should not consume")
	})

	t.Run("returns false on empty frontier", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		loc, ok := f.Peek()
		assert.False(t, ok)
		assert.True(t, loc.IsZero())
	})

	t.Run("sees the first push into an empty frontier", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push(spider.NewLocation("/a.html"))
		f.Push(spider.NewLocation("/b.html"))

		loc, ok := f.Peek()
		require.True(t, ok)
		assert.Equal(t, "/a.html", loc.URI)
	})
}

func TestFrontier_Pop_single_location_empties_frontier(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(spider.NewLocation("/a.html"))

	loc, ok := f.Pop()

	require.True(t, ok)
	assert.Equal(t, "/a.html", loc.URI)
	assert.Equal(t, 0, f.Len())
	assert.True(t, f.Empty())
}

func TestFrontier_Len_counts_held_head(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push(spider.NewLocation("/a.html"))
	assert.Equal(t, 1, f.Len())

	f.Push(spider.NewLocation("/b.html"))
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())

	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_allows_repeated_pushes(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push(spider.NewLocation("/a.html"))
	f.Push(spider.NewLocation("/a.html"))

	assert.Equal(t, 2, f.Len(), "frontier does not deduplicate")
}

func TestFrontier_String(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(spider.Locations("/a.html", "/b.html")...)

	assert.Equal(t, "Size: 2\nNext: /a.html", f.String())
	assert.Equal(t, "Size: 0\nNext: <none>", crawl.NewFrontier().String())
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Push(spider.NewLocation(fmt.Sprintf("/%d/%d.html", id, j)))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*numOpsPerGoroutine, f.Len())

	popped := 0
	for !f.Empty() {
		_, ok := f.Pop()
		require.True(t, ok)
		popped++
	}
	assert.Equal(t, numGoroutines*numOpsPerGoroutine, popped)
}
