package internal

import "strings"

// Segment is one atomic piece of query text. It either carries literal text
// or indexes into the owning buffer's held-string storage, so that literal
// segments never allocate while runtime-built strings stay alive for the
// duration of the build.
type Segment struct {
	text string
	ref  int
	held bool
}

// Text returns a literal segment.
func Text(s string) Segment {
	return Segment{text: s}
}

// Buffer accumulates segments in insertion order. Insertion order is the
// query's word order. Storage is append-only; once assigned, a held index
// stays valid until the buffer is built.
type Buffer struct {
	segments []Segment
	storage  []string
	params   map[string]string
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) resolve(s Segment) string {
	if s.held {
		return b.storage[s.ref]
	}
	return s.text
}

// Len reports the number of buffered segments.
func (b *Buffer) Len() int {
	return len(b.segments)
}

// Add pushes one segment. Empty literals are dropped so optional fragments
// never leave stray separators in the output.
func (b *Buffer) Add(s Segment) *Buffer {
	if !s.held && s.text == "" {
		return b
	}
	b.segments = append(b.segments, s)
	return b
}

// AddPrefixed pushes prefix then segment as two segments.
func (b *Buffer) AddPrefixed(prefix string, s Segment) *Buffer {
	return b.Add(Text(prefix)).Add(s)
}

func (b *Buffer) addWrapped(prefix string, s Segment, suffix string) *Buffer {
	return b.AddPrefixed(prefix, s).Add(Text(suffix))
}

// Join adds the given segments separated by separator, each wrapped in
// prefix and suffix. Zero or one segments degenerate to a single wrapped
// append with no separator.
func (b *Buffer) Join(separator, prefix string, segments []Segment, suffix string) *Buffer {
	n := len(segments)
	if n <= 1 {
		for _, s := range segments {
			b.addWrapped(prefix, s, suffix)
		}
		return b
	}
	for i := 0; i < n-1; i++ {
		b.addWrapped(prefix, segments[i], suffix)
		b.Add(Text(separator))
	}
	return b.addWrapped(prefix, segments[n-1], suffix)
}

// Hold stores an owned string in the buffer and returns a segment tied to
// the slot it just created. The returned segment is usable anywhere a
// segment is accepted, which lets short-lived scopes contribute text the
// buffer keeps alive.
func (b *Buffer) Hold(s string) Segment {
	i := len(b.storage)
	b.storage = append(b.storage, s)
	return Segment{ref: i, held: true}
}

// Param registers a textual substitution applied at Build time. Keys are
// unique; the last value registered for a key wins.
func (b *Buffer) Param(key, value string) *Buffer {
	if b.params == nil {
		b.params = make(map[string]string)
	}
	b.params[key] = value
	return b
}

// Merge folds another buffer's segments into this one, inserting a comma
// segment before every segment after the first. Held segments are re-homed
// into this buffer's storage; parameters carry over.
func (b *Buffer) Merge(other *Buffer) *Buffer {
	for i, s := range other.segments {
		if s.held {
			s = b.Hold(other.storage[s.ref])
		}
		if i > 0 {
			b.Add(Text(","))
		}
		b.Add(s)
	}
	for key, value := range other.params {
		b.Param(key, value)
	}
	return b
}

// Build joins all segments with single spaces, then substitutes every
// registered parameter. Each key is scanned from the start of the output
// again after every replacement, since replacement text can shrink or grow
// the string or itself contain a key that still needs substitution.
func (b *Buffer) Build() string {
	parts := make([]string, len(b.segments))
	for i, s := range b.segments {
		parts[i] = b.resolve(s)
	}
	out := strings.Join(parts, " ")
	for key, value := range b.params {
		for {
			i := strings.Index(out, key)
			if i < 0 {
				break
			}
			out = out[:i] + value + out[i+len(key):]
		}
	}
	return out
}
