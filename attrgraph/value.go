package attrgraph

// Well-known attribute names used by the algorithms.
const (
	// KeyWeight is the numeric edge (or vertex) weight.
	KeyWeight = "weight"

	// KeyCommunity is the community index assigned by community detection.
	KeyCommunity = "community"

	// KeyContained lists the original vertices folded into a contracted
	// vertex.
	KeyContained = "containedVertices"
)

// Kind discriminates the payload of a Value.
type Kind uint8

const (
	// KindInvalid is the zero Value.
	KindInvalid Kind = iota
	// KindFloat holds a float64.
	KindFloat
	// KindInt holds an int.
	KindInt
	// KindString holds a string.
	KindString
	// KindVertexSet holds a slice of vertex indices.
	KindVertexSet
)

// Value is a tagged union of the attribute types the library stores.
// Accessors return (payload, true) only when the kind matches, so a
// mismatched read is detected at the call site instead of panicking.
type Value struct {
	kind Kind
	f    float64
	n    int
	s    string
	vs   []int
}

// Float wraps a float64.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Int wraps an int.
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// VertexSet wraps a slice of vertex indices. The slice is stored as given;
// callers mutating it afterwards mutate the attribute.
func VertexSet(vs []int) Value { return Value{kind: KindVertexSet, vs: vs} }

// Kind returns the discriminator.
func (v Value) Kind() Kind { return v.kind }

// AsFloat returns the float payload, if any.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsInt returns the int payload, if any.
func (v Value) AsInt() (int, bool) { return v.n, v.kind == KindInt }

// AsString returns the string payload, if any.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsVertexSet returns the vertex-set payload, if any.
func (v Value) AsVertexSet() ([]int, bool) { return v.vs, v.kind == KindVertexSet }
