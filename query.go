package surgo

import "github.com/surgo-dev/surgo/internal"

// Segment is one atomic piece of query text, either literal or held by the
// query's internal storage. See [Query.Hold].
type Segment = internal.Segment

// Text wraps a literal string as a [Segment].
func Text(s string) Segment { return internal.Text(s) }

// Query assembles a SurrealQL query string incrementally. Methods append
// keyword-prefixed segments and return the same builder, so calls chain
// until [Query.Build] flattens the buffer into the final text.
//
// A Query has no shared state: two independent chains never interact, and a
// built query is plain text ready to hand to whatever executes it.
type Query struct {
	buf *internal.Buffer
}

// New returns an empty query builder.
func New() *Query {
	return &Query{buf: internal.NewBuffer()}
}

// Create starts a CREATE clause.
//
//	surgo.New().Create("Person:ee").Build() // "CREATE Person:ee"
func (q *Query) Create(node string) *Query {
	q.buf.AddPrefixed("CREATE", Text(node))
	return q
}

// Update starts an UPDATE clause.
func (q *Query) Update(node string) *Query {
	q.buf.AddPrefixed("UPDATE", Text(node))
	return q
}

// Select starts a SELECT clause.
func (q *Query) Select(node string) *Query {
	q.buf.AddPrefixed("SELECT", Text(node))
	return q
}

// SelectMany starts a SELECT clause over comma-joined nodes.
//
//	surgo.New().SelectMany("ee:Person", "o:Order").Build() // "SELECT ee:Person , o:Order"
func (q *Query) SelectMany(nodes ...string) *Query {
	q.buf.Add(Text("SELECT"))
	q.buf.Join(",", "", textSegments(nodes), "")
	return q
}

// From starts a FROM clause.
func (q *Query) From(node string) *Query {
	q.buf.AddPrefixed("FROM", Text(node))
	return q
}

// Also appends the given text with a comma in front of it.
func (q *Query) Also(text string) *Query {
	q.buf.AddPrefixed(",", Text(text))
	return q
}

// Where starts a WHERE clause.
func (q *Query) Where(condition string) *Query {
	q.buf.AddPrefixed("WHERE", Text(condition))
	return q
}

// AndWhere is an alias for [Query.Where].
func (q *Query) AndWhere(condition string) *Query {
	return q.Where(condition)
}

// And appends an AND condition.
func (q *Query) And(condition string) *Query {
	q.buf.AddPrefixed("AND", Text(condition))
	return q
}

// Set starts a SET clause.
func (q *Query) Set(update string) *Query {
	q.buf.AddPrefixed("SET", Text(update))
	return q
}

// SetMany starts a SET clause over comma-joined updates.
//
//	surgo.New().SetMany("handle = $1", "password = $2").Build()
//	// "SET handle = $1 , password = $2"
func (q *Query) SetMany(updates ...string) *Query {
	q.buf.Add(Text("SET"))
	q.buf.Join(",", "", textSegments(updates), "")
	return q
}

// SetSegments starts a SET clause over comma-joined segments. Unlike
// [Query.SetMany] it accepts held segments, which lets strings built in
// short-lived scopes feed the clause. See [Query.Hold].
func (q *Query) SetSegments(segments ...Segment) *Query {
	q.buf.Add(Text("SET"))
	q.buf.Join(",", "", segments, "")
	return q
}

// Fetch starts a FETCH clause.
func (q *Query) Fetch(field string) *Query {
	q.buf.AddPrefixed("FETCH", Text(field))
	return q
}

// FetchMany starts a FETCH clause over comma-joined fields.
func (q *Query) FetchMany(fields ...string) *Query {
	q.buf.Add(Text("FETCH"))
	q.buf.Join(",", "", textSegments(fields), "")
	return q
}

// Limit starts a LIMIT clause.
func (q *Query) Limit(limit string) *Query {
	q.buf.AddPrefixed("LIMIT", Text(limit))
	return q
}

// StartAt starts a START AT clause.
func (q *Query) StartAt(offset string) *Query {
	q.buf.AddPrefixed("START AT", Text(offset))
	return q
}

// Raw pushes raw text to the buffer. Empty text is a no-op.
func (q *Query) Raw(text string) *Query {
	q.buf.Add(Text(text))
	return q
}

// RawSegment pushes one segment to the buffer. Rather internal, public for
// special cases; prefer [Query.Raw] for plain text.
func (q *Query) RawSegment(s Segment) *Query {
	q.buf.Add(s)
	return q
}

// If applies then to the builder only when condition holds, otherwise the
// builder is returned untouched. Conditionals nest; a false outer condition
// short-circuits before any inner conditional runs.
//
//	surgo.New().
//		SelectMany("1", "2").
//		If(false, func(q *surgo.Query) *surgo.Query {
//			return q.SelectMany("3", "4")
//		}).
//		Build() // "SELECT 1 , 2"
func (q *Query) If(condition bool, then func(*Query) *Query) *Query {
	if !condition {
		return q
	}
	return then(q)
}

// Commas runs action against a fresh builder, then folds the resulting
// segments into this one with a comma inserted before every segment after
// the first.
//
//	surgo.New().Commas(func(q *surgo.Query) *surgo.Query {
//		return q.Raw("foo").Raw("bar")
//	}).Build() // "foo , bar"
func (q *Query) Commas(action func(*Query) *Query) *Query {
	other := action(New())
	q.buf.Merge(other.buf)
	return q
}

// Hold stores an owned string inside the query's buffer and returns a
// segment referencing it. Useful when the text is produced inside a scope
// that outlives nothing, yet must stay alive until [Query.Build].
func (q *Query) Hold(s string) Segment {
	return q.buf.Hold(s)
}

// Param registers a textual substitution: every occurrence of key in the
// built query is replaced by value. The substitution table persists until
// [Query.Build]; registering the same key twice keeps the last value.
//
// Do not use this for user-provided data, the input is not sanitized.
//
//	surgo.New().
//		Select("{{field}}").
//		From("Account").
//		Param("{{field}}", "id").
//		Build() // "SELECT id FROM Account"
func (q *Query) Param(key, value string) *Query {
	q.buf.Param(key, value)
	return q
}

// Build joins all segments with single spaces, applies every registered
// parameter exhaustively, and returns the final query text.
func (q *Query) Build() string {
	return q.buf.Build()
}

// SetFields appends a SET clause derived from the struct v: one
// `field = $field` update per exported field, named after the field's json
// tag (snake_cased Go name when untagged). The record identifier and fields
// tagged `json:"-"` are skipped.
func (q *Query) SetFields(v any) *Query {
	names := internal.FieldNames(v)
	updates := make([]string, len(names))
	for i, name := range names {
		updates[i] = name + " = $" + name
	}
	return q.SetMany(updates...)
}

// ObjectSetter is implemented by entity types that know how to append their
// own SET clause (or similar) to a query. Implementations work purely
// through the public Query API.
type ObjectSetter interface {
	SetObject(q *Query) *Query
}

// SetObject applies T's [ObjectSetter] implementation to the query.
//
//	surgo.SetObject[Account](surgo.New().Create("Account:john")).Build()
func SetObject[T ObjectSetter](q *Query) *Query {
	var v T
	return v.SetObject(q)
}

func textSegments(texts []string) []Segment {
	segments := make([]Segment, len(texts))
	for i, t := range texts {
		segments[i] = Text(t)
	}
	return segments
}
