package toc_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/toc"
)

func sampleEntries() []toc.HeadingEntry {
	return []toc.HeadingEntry{
		toc.NewEntry(0, 1, "Overview"),
		toc.NewEntry(10, 2, "Enumeration"),
		toc.NewEntry(20, 2, "Privilege Escalation"),
	}
}

func TestTrackerUpdate(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)

	active, changed := tracker.Update([]toc.HeadingRect{
		{ID: "heading-0", Rect: toc.Rect{Top: -300, Bottom: -200}},
		{ID: "heading-10", Rect: toc.Rect{Top: 80, Bottom: 130}},
		{ID: "heading-20", Rect: toc.Rect{Top: 400, Bottom: 450}},
	})
	assert.Equal(t, "heading-10", active)
	assert.True(t, changed)

	entry, ok := tracker.Active()
	require.True(t, ok)
	assert.Equal(t, "Enumeration", entry.Text)

	_, changed = tracker.Update([]toc.HeadingRect{{ID: "heading-10", Rect: toc.Rect{Top: 90, Bottom: 110}}})
	assert.False(t, changed)
}

func TestTrackerLastMatchWins(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)
	active, _ := tracker.Update([]toc.HeadingRect{
		{ID: "heading-0", Rect: toc.Rect{Top: 0, Bottom: 200}},
		{ID: "heading-10", Rect: toc.Rect{Top: 50, Bottom: 150}},
	})
	assert.Equal(t, "heading-10", active)
}

func TestTrackerClearsWhenNothingInView(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)
	tracker.Update([]toc.HeadingRect{{ID: "heading-0", Rect: toc.Rect{Top: 0, Bottom: 200}}})

	active, changed := tracker.Update([]toc.HeadingRect{{ID: "heading-0", Rect: toc.Rect{Top: 300, Bottom: 400}}})
	assert.Empty(t, active)
	assert.True(t, changed)

	_, ok := tracker.Active()
	assert.False(t, ok)
}

func TestTrackerIgnoresUnknownIDs(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)
	active, _ := tracker.Update([]toc.HeadingRect{{ID: "heading-99", Rect: toc.Rect{Top: 0, Bottom: 200}}})
	assert.Empty(t, active)
}

func TestTrackerResetAndSelect(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)
	tracker.Update([]toc.HeadingRect{{ID: "heading-0", Rect: toc.Rect{Top: 0, Bottom: 200}}})

	entry, ok := tracker.Select("heading-20")
	require.True(t, ok)
	assert.Equal(t, 20, entry.LineIndex)

	tracker.Reset([]toc.HeadingEntry{toc.NewEntry(3, 1, "Other")})
	_, ok = tracker.Active()
	assert.False(t, ok)

	_, ok = tracker.Select("heading-20")
	assert.False(t, ok)
	assert.Len(t, tracker.Entries(), 1)
}

func TestTrackerConcurrentUpdates(t *testing.T) {
	t.Parallel()

	tracker := toc.NewTracker(sampleEntries(), 100)
	rects := []toc.HeadingRect{{ID: "heading-10", Rect: toc.Rect{Top: 0, Bottom: 200}}}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(rects)
			tracker.Active()
		}()
	}
	wg.Wait()

	entry, ok := tracker.Active()
	require.True(t, ok)
	assert.Equal(t, "heading-10", entry.ID)
}

func TestFrameCoalescer(t *testing.T) {
	t.Parallel()

	var coalescer toc.FrameCoalescer
	runs := 0

	assert.False(t, coalescer.Frame(), "no pending task")

	assert.True(t, coalescer.Request(func() { runs++ }))
	assert.False(t, coalescer.Request(func() { runs += 100 }), "second request is dropped")
	assert.True(t, coalescer.Pending())

	assert.True(t, coalescer.Frame())
	assert.Equal(t, 1, runs)
	assert.False(t, coalescer.Pending())

	assert.True(t, coalescer.Request(func() { runs++ }))
	coalescer.Frame()
	assert.Equal(t, 2, runs)
}

func TestLineLayout(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()
	layout := toc.LineLayout{LineHeight: 10, LineCount: 30}

	rects := layout.Rects(entries, 5)
	require.Len(t, rects, 3)
	assert.Equal(t, toc.Rect{Top: -50, Bottom: 49}, rects[0].Rect)
	assert.Equal(t, toc.Rect{Top: 50, Bottom: 149}, rects[1].Rect)
	assert.Equal(t, toc.Rect{Top: 150, Bottom: 249}, rects[2].Rect)

	tracker := toc.NewTracker(entries, 100)
	active, _ := tracker.Update(rects)
	assert.Equal(t, "heading-10", active)
}

func TestTrackerOffset(t *testing.T) {
	t.Parallel()

	rects := []toc.HeadingRect{
		{ID: "heading-0", Rect: toc.Rect{Top: 0, Bottom: 9}},
		{ID: "heading-10", Rect: toc.Rect{Top: 10, Bottom: 150}},
	}

	tests := []struct {
		name   string
		offset float64
		want   string
	}{
		{"zero reads the top", 0, "heading-0"},
		{"negative uses default", -1, "heading-10"},
		{"explicit", 12, "heading-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			active, _ := toc.NewTracker(sampleEntries(), tt.offset).Update(rects)
			assert.Equal(t, tt.want, active)
		})
	}
}
