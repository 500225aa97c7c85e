package lib

import "sort"

// =============================================================================
// Fact values
// =============================================================================
// Ground: original_source/AI/src/lib.rs's FactValue enum (Bool/Int/Str).
// The Hex variant is a spec addition not present in the Rust source, needed
// because Unit:<id>:At facts in a rewrite could be carried as a first-class
// coordinate rather than round-tripped through strings; this repo keeps the
// "q,r" string convention for At facts and reserves FactHex (HexFact) for
// callers that want structured comparisons.

// FactKind tags which field of FactValue is populated.
type FactKind int

const (
	FactBool FactKind = iota
	FactInt
	FactStr
	FactHex
)

// FactValue is a tagged union of Bool, Int, Str, and Hex. Equality is
// structural and is used both directly (satisfies) and as part of the
// search-state fingerprint (see WorldState.Fingerprint).
type FactValue struct {
	Kind FactKind
	Bool bool
	Int  int32
	Str  string
	Hex  AxialCoord
}

func BoolFact(v bool) FactValue  { return FactValue{Kind: FactBool, Bool: v} }
func IntFact(v int32) FactValue  { return FactValue{Kind: FactInt, Int: v} }
func StrFact(v string) FactValue { return FactValue{Kind: FactStr, Str: v} }
func HexFact(v AxialCoord) FactValue {
	return FactValue{Kind: FactHex, Hex: v}
}

// Equal reports structural equality between two fact values.
func (f FactValue) Equal(other FactValue) bool {
	if f.Kind != other.Kind {
		return false
	}
	switch f.Kind {
	case FactBool:
		return f.Bool == other.Bool
	case FactInt:
		return f.Int == other.Int
	case FactStr:
		return f.Str == other.Str
	case FactHex:
		return f.Hex == other.Hex
	default:
		return false
	}
}

// FactPair is a (key, value) pair, used for preconditions, effects, and
// fingerprint entries.
type FactPair struct {
	Key   string
	Value FactValue
}

// =============================================================================
// World state
// =============================================================================

// WorldState is a mapping from fact key to FactValue. Insertion order is not
// observed by any operation.
type WorldState struct {
	facts map[string]FactValue
}

// NewWorldState returns an empty world state.
func NewWorldState() *WorldState {
	return &WorldState{facts: make(map[string]FactValue)}
}

// Clone returns a deep (in the sense of no shared map) copy of the state.
func (w *WorldState) Clone() *WorldState {
	cloned := make(map[string]FactValue, len(w.facts))
	for k, v := range w.facts {
		cloned[k] = v
	}
	return &WorldState{facts: cloned}
}

// Insert overwrites (or creates) the fact at key.
func (w *WorldState) Insert(key string, value FactValue) {
	w.facts[key] = value
}

// Get returns the fact at key, if present.
func (w *WorldState) Get(key string) (FactValue, bool) {
	v, ok := w.facts[key]
	return v, ok
}

// Satisfies reports whether get(key) == Some(value).
func (w *WorldState) Satisfies(key string, value FactValue) bool {
	v, ok := w.facts[key]
	return ok && v.Equal(value)
}

// ApplyEffects overwrites each (key, value) pair in order; later effects on
// the same key override earlier ones. Total: never fails, new keys are
// created as needed.
func (w *WorldState) ApplyEffects(effects []FactPair) {
	for _, e := range effects {
		w.facts[e.Key] = e.Value
	}
}

// Fingerprint returns a canonical string built from (key,value) pairs sorted
// by key, suitable as a closed-set / hash-set key in search. Stable under
// key-insertion order: two states with the same (key,value) set produce the
// same fingerprint.
func (w *WorldState) Fingerprint() string {
	keys := make([]string, 0, len(w.facts))
	for k := range w.facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b []byte
	for _, k := range keys {
		v := w.facts[k]
		b = append(b, k...)
		b = append(b, '=')
		switch v.Kind {
		case FactBool:
			if v.Bool {
				b = append(b, "B:1"...)
			} else {
				b = append(b, "B:0"...)
			}
		case FactInt:
			b = append(b, 'I', ':')
			b = appendInt(b, int(v.Int))
		case FactStr:
			b = append(b, "S:"...)
			b = append(b, v.Str...)
		case FactHex:
			b = append(b, "H:"...)
			b = append(b, CoordKeyFromAxial(v.Hex)...)
		}
		b = append(b, ';')
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	end := len(b) - 1
	for start < end {
		b[start], b[end] = b[end], b[start]
		start++
		end--
	}
	return b
}

// =============================================================================
// Goals
// =============================================================================

// Goal is a single (key, value) pair; satisfied when the world state
// satisfies it.
type Goal struct {
	Key   string
	Value FactValue
}

func (g Goal) SatisfiedBy(state *WorldState) bool {
	return state.Satisfies(g.Key, g.Value)
}
