package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("joins segments with single spaces", func(t *testing.T) {
		b := NewBuffer()
		b.Add(Text("SELECT")).Add(Text("*")).Add(Text("FROM")).Add(Text("Account"))
		assert.Equal(t, "SELECT * FROM Account", b.Build())
	})

	t.Run("drops empty literals", func(t *testing.T) {
		b := NewBuffer()
		b.Add(Text("WHERE")).Add(Text("")).Add(Text("handle = $handle"))
		assert.Equal(t, "WHERE handle = $handle", b.Build())
		assert.Equal(t, 2, b.Len())
	})

	t.Run("prefixed append pushes two segments", func(t *testing.T) {
		b := NewBuffer()
		b.AddPrefixed("CREATE", Text("Person:ee"))
		assert.Equal(t, "CREATE Person:ee", b.Build())
	})

	t.Run("join", func(t *testing.T) {
		t.Run("zero items is a no-op", func(t *testing.T) {
			b := NewBuffer()
			b.Join(",", "", nil, "")
			assert.Equal(t, "", b.Build())
		})

		t.Run("one item has no separator", func(t *testing.T) {
			b := NewBuffer()
			b.Join(",", "", []Segment{Text("ee:Person")}, "")
			assert.Equal(t, "ee:Person", b.Build())
		})

		t.Run("separator between every pair", func(t *testing.T) {
			b := NewBuffer()
			b.Join(",", "", []Segment{Text("1"), Text("2"), Text("3")}, "")
			assert.Equal(t, "1 , 2 , 3", b.Build())
		})

		t.Run("prefix and suffix wrap every item", func(t *testing.T) {
			b := NewBuffer()
			b.Join(",", "set", []Segment{Text("handle"), Text("id")}, "")
			assert.Equal(t, "set handle , set id", b.Build())
		})
	})

	t.Run("hold", func(t *testing.T) {
		t.Run("held strings resolve through their segment", func(t *testing.T) {
			b := NewBuffer()
			s := b.Hold(strings.Repeat("x", 3))
			b.Add(Text("SELECT")).Add(s)
			assert.Equal(t, "SELECT xxx", b.Build())
		})

		t.Run("held empty strings are kept", func(t *testing.T) {
			b := NewBuffer()
			b.Add(b.Hold(""))
			assert.Equal(t, 1, b.Len())
		})

		t.Run("indices are stable across further holds", func(t *testing.T) {
			b := NewBuffer()
			first := b.Hold("first")
			second := b.Hold("second")
			b.Add(second).Add(first)
			assert.Equal(t, "second first", b.Build())
		})
	})

	t.Run("param", func(t *testing.T) {
		t.Run("replaces every occurrence", func(t *testing.T) {
			b := NewBuffer()
			b.Add(Text("X")).Add(Text("X and X"))
			b.Param("X", "Y")
			out := b.Build()
			assert.Equal(t, "Y Y and Y", out)
			assert.NotContains(t, out, "X")
		})

		t.Run("last value registered for a key wins", func(t *testing.T) {
			b := NewBuffer()
			b.Add(Text("{{field}}"))
			b.Param("{{field}}", "id")
			b.Param("{{field}}", "handle")
			assert.Equal(t, "handle", b.Build())
		})

		t.Run("rescans after replacements that shrink the text", func(t *testing.T) {
			b := NewBuffer()
			b.Add(Text("abcabcabc"))
			b.Param("abc", "c")
			assert.Equal(t, "ccc", b.Build())
		})

		t.Run("rescans after replacements that grow the text", func(t *testing.T) {
			b := NewBuffer()
			b.Add(Text("a a"))
			b.Param("a", "bb")
			assert.Equal(t, "bb bb", b.Build())
		})
	})

	t.Run("merge", func(t *testing.T) {
		t.Run("inserts a comma before every segment after the first", func(t *testing.T) {
			b := NewBuffer()
			other := NewBuffer()
			other.Add(Text("foo")).Add(Text("bar"))
			b.Merge(other)
			assert.Equal(t, "foo , bar", b.Build())
		})

		t.Run("re-homes held segments", func(t *testing.T) {
			b := NewBuffer()
			b.Add(b.Hold("outer"))
			other := NewBuffer()
			other.Add(other.Hold("inner"))
			b.Merge(other)
			assert.Equal(t, "outer inner", b.Build())
		})

		t.Run("carries parameters over", func(t *testing.T) {
			b := NewBuffer()
			other := NewBuffer()
			other.Add(Text("{{v}}"))
			other.Param("{{v}}", "42")
			b.Merge(other)
			require.Equal(t, "42", b.Build())
		})
	})
}
