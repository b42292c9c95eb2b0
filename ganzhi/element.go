package ganzhi

// Element is one of the five elements (五行).
//
// The numeric order follows the generation cycle: each element generates
// the next one modulo five (Metal→Water→Wood→Fire→Earth→Metal) and
// controls the element two steps ahead (Metal→Wood, Water→Fire, ...).
type Element int

const (
	Metal Element = iota // 金
	Water                // 水
	Wood                 // 木
	Fire                 // 火
	Earth                // 土
)

// NumElements is the size of the five-element cycle.
const NumElements = 5

var elementNames = [NumElements]string{"metal", "water", "wood", "fire", "earth"}
var elementGlyphs = [NumElements]string{"金", "水", "木", "火", "土"}

// String returns a locale-neutral token ("metal", "water", ...).
func (e Element) String() string {
	if e < 0 || e >= NumElements {
		return "unknown"
	}
	return elementNames[e]
}

// Glyph returns the canonical Chinese character for the element.
func (e Element) Glyph() string {
	if e < 0 || e >= NumElements {
		return "?"
	}
	return elementGlyphs[e]
}

// Generates reports whether e generates other in the five-element cycle.
func (e Element) Generates(other Element) bool {
	return (e+1)%NumElements == other
}

// Controls reports whether e controls other in the five-element cycle.
func (e Element) Controls(other Element) bool {
	return (e+2)%NumElements == other
}

// Relation describes how one element stands toward another.
type Relation int

const (
	// RelationSame: both elements share the same phase (比和).
	RelationSame Relation = iota
	// RelationGenerates: the first element generates the second (我生).
	RelationGenerates
	// RelationControls: the first element controls the second (我克).
	RelationControls
	// RelationGeneratedBy: the second element generates the first (生我).
	RelationGeneratedBy
	// RelationControlledBy: the second element controls the first (克我).
	RelationControlledBy
)

var relationNames = [...]string{"same", "generates", "controls", "generated-by", "controlled-by"}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[r]
}

// Relate returns the relation of a toward b.
//
// The five-element cycle is total: any pair of elements stands in exactly
// one of the five relations, so Relate never fails.
func Relate(a, b Element) Relation {
	switch (b - a + NumElements) % NumElements {
	case 0:
		return RelationSame
	case 1:
		return RelationGenerates
	case 2:
		return RelationControls
	case 3:
		return RelationControlledBy
	default:
		return RelationGeneratedBy
	}
}
