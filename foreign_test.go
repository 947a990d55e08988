package surgo_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surgo-dev/surgo"
)

type file struct {
	Name   string                     `json:"name"`
	Author surgo.Foreign[testAccount] `json:"author"`
}

func TestForeignMarshal(t *testing.T) {
	t.Run("key collapses to a plain string", func(t *testing.T) {
		f := surgo.ForeignKey[testAccount]("Account:John")
		out, err := json.Marshal(f)
		require.NoError(t, err)
		assert.JSONEq(t, `"Account:John"`, string(out))
	})

	t.Run("loaded records collapse to their key", func(t *testing.T) {
		acc := testAccount{Handle: "JohnTheUser"}
		acc.SetID("Account:John")
		out, err := json.Marshal(surgo.ForeignValue(acc))
		require.NoError(t, err)
		assert.JSONEq(t, `"Account:John"`, string(out))
	})

	t.Run("loaded record without an identifier fails", func(t *testing.T) {
		_, err := json.Marshal(surgo.ForeignValue(testAccount{Handle: "JohnTheUser"}))
		require.Error(t, err)
		assert.ErrorContains(t, err, "no assigned identifier")
	})

	t.Run("unloaded marshals to null", func(t *testing.T) {
		out, err := json.Marshal(file{Name: "filename"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "filename", "author": null}`, string(out))
	})
}

func TestForeignUnmarshal(t *testing.T) {
	t.Run("object input yields a loaded record", func(t *testing.T) {
		var f file
		err := json.Unmarshal([]byte(`{
			"name": "filename",
			"author": {"id": "Account:John", "handle": "JohnTheUser"}
		}`), &f)
		require.NoError(t, err)

		author, ok := f.Author.Value()
		require.True(t, ok)
		assert.Equal(t, "Account:John", author.ID)
		assert.Equal(t, "JohnTheUser", author.Handle)

		key, ok := f.Author.Key()
		require.True(t, ok)
		assert.Equal(t, "Account:John", key)
	})

	t.Run("string input yields a key", func(t *testing.T) {
		var f file
		err := json.Unmarshal([]byte(`{"name": "filename", "author": "Account:John"}`), &f)
		require.NoError(t, err)

		key, ok := f.Author.Key()
		require.True(t, ok)
		assert.Equal(t, "Account:John", key)
		_, ok = f.Author.Value()
		assert.False(t, ok)
	})

	t.Run("null input yields unloaded", func(t *testing.T) {
		var f file
		err := json.Unmarshal([]byte(`{"name": "filename", "author": null}`), &f)
		require.NoError(t, err)
		assert.True(t, f.Author.Unloaded())
	})

	t.Run("absent input yields unloaded", func(t *testing.T) {
		var f file
		err := json.Unmarshal([]byte(`{"name": "filename"}`), &f)
		require.NoError(t, err)
		assert.True(t, f.Author.Unloaded())
	})

	t.Run("mismatched shape surfaces a decode error", func(t *testing.T) {
		var f file
		err := json.Unmarshal([]byte(`{"name": "filename", "author": 42}`), &f)
		require.Error(t, err)
	})
}

func TestForeignRoundTrip(t *testing.T) {
	acc := testAccount{Handle: "JohnTheUser"}
	acc.SetID("Account:John")

	out, err := json.Marshal(surgo.ForeignValue(acc))
	require.NoError(t, err)

	var back surgo.Foreign[testAccount]
	require.NoError(t, json.Unmarshal(out, &back))

	key, ok := back.Key()
	require.True(t, ok)
	assert.Equal(t, "Account:John", key)
	_, ok = back.Value()
	assert.False(t, ok)
}

func TestForeignSlice(t *testing.T) {
	t.Run("keys collapse to a list of strings", func(t *testing.T) {
		f := surgo.ForeignKeys[project]("Project:a", "Project:b")
		out, err := json.Marshal(f)
		require.NoError(t, err)
		assert.JSONEq(t, `["Project:a", "Project:b"]`, string(out))
	})

	t.Run("loaded records collapse to their keys in order", func(t *testing.T) {
		a := project{Name: "a"}
		a.SetID("Project:a")
		b := project{Name: "b"}
		b.SetID("Project:b")
		out, err := json.Marshal(surgo.ForeignValues(a, b))
		require.NoError(t, err)
		assert.JSONEq(t, `["Project:a", "Project:b"]`, string(out))
	})

	t.Run("one record without an identifier fails the whole list", func(t *testing.T) {
		a := project{Name: "a"}
		a.SetID("Project:a")
		_, err := json.Marshal(surgo.ForeignValues(a, project{Name: "b"}))
		require.Error(t, err)
		assert.ErrorContains(t, err, "no assigned identifier")
	})

	t.Run("list of strings yields keys", func(t *testing.T) {
		var f surgo.ForeignSlice[project]
		require.NoError(t, json.Unmarshal([]byte(`["Project:a", "Project:b"]`), &f))
		keys, ok := f.Keys()
		require.True(t, ok)
		assert.Equal(t, []string{"Project:a", "Project:b"}, keys)
	})

	t.Run("list of objects yields loaded records", func(t *testing.T) {
		var f surgo.ForeignSlice[project]
		require.NoError(t, json.Unmarshal(
			[]byte(`[{"id": "Project:a", "name": "a"}, {"id": "Project:b", "name": "b"}]`),
			&f,
		))
		values, ok := f.Values()
		require.True(t, ok)
		require.Len(t, values, 2)
		assert.Equal(t, "a", values[0].Name)

		keys, ok := f.Keys()
		require.True(t, ok)
		assert.Equal(t, []string{"Project:a", "Project:b"}, keys)
	})

	t.Run("null yields unloaded", func(t *testing.T) {
		var f surgo.ForeignSlice[project]
		require.NoError(t, json.Unmarshal([]byte(`null`), &f))
		assert.True(t, f.Unloaded())
	})
}
