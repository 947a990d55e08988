package surgo

import (
	"errors"

	"github.com/oklog/ulid/v2"
)

var defaultEntropySource = ulid.DefaultEntropy()

// ErrNoID is returned when a record's identifying key is requested before
// one was assigned.
var ErrNoID = errors.New("record has no assigned identifier")

// Record is a base type for persisted entities. Embedding it gives a struct
// the record-identifier field and the [Keyer] implementation that [Foreign]
// requires.
//
//	type Account struct {
//		surgo.Record
//		Handle string `json:"handle"`
//	}
type Record struct {
	ID string `json:"id,omitempty"`
}

// IntoKey returns the record's identifier, or [ErrNoID] when none was
// assigned.
func (r Record) IntoKey() (string, error) {
	if r.ID == "" {
		return "", ErrNoID
	}
	return r.ID, nil
}

// SetID assigns the record's identifier.
func (r *Record) SetID(id string) {
	r.ID = id
}

// GenerateID assigns a fresh `Table:ulid` identifier.
func (r *Record) GenerateID(table string) {
	r.ID = NewRecordID(table)
}

// NewRecordID returns a fresh record ID for the given table, e.g.
// `Account:01H455VB4213ET08ZQKSQC8A8G`. ULIDs sort lexicographically by
// creation time.
func NewRecordID(table string) string {
	return NamedLabel(ulid.MustNew(ulid.Now(), defaultEntropySource).String(), table)
}
