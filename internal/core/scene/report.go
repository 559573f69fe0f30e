package scene

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/narrowphase/internal/core/collision"
)

// PairKey hashes two body IDs into a key that does not depend on their order.
func PairKey(a, b uuid.UUID) uint64 {
	lo, hi := a, b
	if compareIDs(a, b) > 0 {
		lo, hi = b, a
	}

	var buf [32]byte
	copy(buf[:16], lo[:])
	copy(buf[16:], hi[:])
	return xxhash.Sum64(buf[:])
}

func compareIDs(a, b uuid.UUID) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Contact is the result for one pair. Penetration is set only when the
// bodies overlap and penetration was requested; its normal points from A
// toward B.
type Contact struct {
	Key         uint64
	A, B        uuid.UUID
	AName       string
	BName       string
	Intersects  bool
	Penetration *collision.Penetration
}

// Report holds one Contact per unordered pair, ordered by the document
// position of A then B.
type Report struct {
	Scene    string
	Contacts []Contact
	byKey    map[uint64]int
}

func newReport(name string, contacts []Contact) *Report {
	r := &Report{
		Scene:    name,
		Contacts: contacts,
		byKey:    make(map[uint64]int, len(contacts)),
	}
	for i, c := range contacts {
		r.byKey[c.Key] = i
	}
	return r
}

// Lookup finds the contact for a pair in either order.
func (r *Report) Lookup(a, b uuid.UUID) (Contact, bool) {
	i, ok := r.byKey[PairKey(a, b)]
	if !ok {
		return Contact{}, false
	}
	return r.Contacts[i], true
}

// Overlapping returns the intersecting contacts in report order.
func (r *Report) Overlapping() []Contact {
	var out []Contact
	for _, c := range r.Contacts {
		if c.Intersects {
			out = append(out, c)
		}
	}
	return out
}
