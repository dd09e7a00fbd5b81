package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/markup"
)

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	attrs := markup.ParseAttributes(`<X a="1" b-c="two words" a="3" empty="" />`)
	assert.Equal(t, markup.Attributes{"a": "1", "b-c": "two words", "empty": ""}, attrs)

	_, ok := attrs.Get("empty")
	assert.False(t, ok)
	_, ok = attrs.Get("missing")
	assert.False(t, ok)
	value, ok := attrs.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", value)
}

func TestInfoStatusHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs markup.Attributes
		want  markup.InfoStatus
		ok    bool
	}{
		{
			name:  "defaults to info",
			attrs: markup.Attributes{"title": "T", "message": "M"},
			want:  markup.InfoStatus{Title: "T", Message: "M", Type: markup.InfoStatusInfo},
			ok:    true,
		},
		{
			name:  "explicit type",
			attrs: markup.Attributes{"title": "T", "message": "M", "type": "warning"},
			want:  markup.InfoStatus{Title: "T", Message: "M", Type: markup.InfoStatusWarning},
			ok:    true,
		},
		{
			name:  "escaped newline",
			attrs: markup.Attributes{"title": "T", "message": `one\ntwo`},
			want:  markup.InfoStatus{Title: "T", Message: "one\ntwo", Type: markup.InfoStatusInfo},
			ok:    true,
		},
		{
			name:  "missing title",
			attrs: markup.Attributes{"message": "M"},
		},
		{
			name:  "empty message",
			attrs: markup.Attributes{"title": "T", "message": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			component, ok := markup.InfoStatusHandler{}.Build(tt.attrs)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, component)
				return
			}
			assert.Equal(t, tt.want, component)
			assert.Equal(t, markup.InfoStatusTag, component.ComponentTag())
		})
	}
}

type noteHandler struct{}

type note struct{ Body string }

func (note) ComponentTag() string { return "Note" }

func (noteHandler) Tag() string { return "Note" }

func (noteHandler) Build(attrs markup.Attributes) (markup.Component, bool) {
	body, ok := attrs.Get("body")
	return note{Body: body}, ok
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := markup.DefaultRegistry()
	registry.Register(noteHandler{})

	assert.Equal(t, []string{"InfoStatus", "Note"}, registry.Tags())

	handler, ok := registry.Lookup("Note")
	require.True(t, ok)
	assert.Equal(t, "Note", handler.Tag())

	_, ok = registry.Lookup("Missing")
	assert.False(t, ok)

	var nilRegistry *markup.Registry
	_, ok = nilRegistry.Lookup("InfoStatus")
	assert.False(t, ok)
	assert.Nil(t, nilRegistry.Tags())

	var zero markup.Registry
	zero.Register(noteHandler{})
	assert.Equal(t, []string{"Note"}, zero.Tags())
}
