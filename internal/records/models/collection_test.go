package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionReducers(t *testing.T) {
	base := []LegalNotice{
		{ID: "LN-001", Subject: "first", Replies: []Reply{{Text: "a"}}},
		{ID: "LN-002", Subject: "second"},
	}

	t.Run("insert appends without touching the input", func(t *testing.T) {
		out := Insert(base, LegalNotice{ID: "LN-003"})
		require.Len(t, out, 3)
		assert.Len(t, base, 2)
		assert.Equal(t, "LN-003", out[2].ID)
	})

	t.Run("replace keeps position", func(t *testing.T) {
		out, ok := Replace(base, LegalNotice{ID: "LN-001", Subject: "edited"})
		require.True(t, ok)
		assert.Equal(t, "edited", out[0].Subject)
		assert.Equal(t, "first", base[0].Subject)
	})

	t.Run("replace unknown id reports false", func(t *testing.T) {
		_, ok := Replace(base, LegalNotice{ID: "LN-404"})
		assert.False(t, ok)
	})

	t.Run("remove drops only the matching record", func(t *testing.T) {
		out, ok := Remove(base, "LN-001")
		require.True(t, ok)
		require.Len(t, out, 1)
		assert.Equal(t, "LN-002", out[0].ID)
		assert.Len(t, base, 2)
	})

	t.Run("find returns a copy that does not alias replies", func(t *testing.T) {
		found, ok := Find(base, "LN-001")
		require.True(t, ok)
		found.Replies[0].Text = "mutated"
		assert.Equal(t, "a", base[0].Replies[0].Text)
	})
}

func TestNoticeWithReplyPreservesOrder(t *testing.T) {
	n := LegalNotice{ID: "LN-001", Replies: []Reply{{Text: "first"}}}
	out := n.WithReply(Reply{Text: "second"})

	require.Len(t, out.Replies, 2)
	assert.Equal(t, "first", out.Replies[0].Text)
	assert.Equal(t, "second", out.Replies[1].Text)
	assert.Len(t, n.Replies, 1)
}

func TestParseDate(t *testing.T) {
	assert.True(t, ParseDate("2024-01-01").Valid())
	assert.True(t, ParseDate("2025-01-04T23:00:00Z").Valid())
	assert.False(t, ParseDate("").Valid())
	assert.False(t, ParseDate("   ").Valid())
	assert.False(t, ParseDate("01/02/2024").Valid())

	a, b := ParseDate("2024-01-01"), ParseDate("not a date")
	assert.False(t, a.Before(b))
	assert.False(t, a.After(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, "2024-01-01", a.String())
	assert.Equal(t, "2024-01-31", a.AddDays(30).String())

	stamped := ParseDate("2025-01-14T23:00:00Z")
	assert.Equal(t, NewDate(2025, time.January, 14), stamped)
	assert.Equal(t, "2025-01-14", stamped.String())
	assert.Equal(t, NewDate(2025, time.January, 14), ParseDate("2025-01-14T02:00:00+05:30"))
}
