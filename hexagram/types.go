package hexagram

import (
	"errors"

	"github.com/katalvlaran/liuyao/ganzhi"
)

// ErrInvalidCode indicates a polarity code that is not exactly six
// characters of '1' (solid) and '0' (broken).
var ErrInvalidCode = errors.New("hexagram: invalid polarity code")

// ErrInvalidLinePosition indicates a changing-line position outside 1..6
// or listed more than once.
var ErrInvalidLinePosition = errors.New("hexagram: invalid changing-line position")

// StructureKind classifies where a hexagram sits inside its palace.
type StructureKind int

const (
	// StructureDerived: one of the ordinary first-to-fifth generation hexagrams.
	StructureDerived StructureKind = iota
	// StructurePure (本宮): the palace's doubled-trigram hexagram itself.
	StructurePure
	// StructureWandering (游魂): the palace's seventh hexagram.
	StructureWandering
	// StructureReturning (歸魂): the palace's eighth hexagram.
	StructureReturning
)

var structureKindNames = [...]string{"derived", "pure", "wandering", "returning"}

func (k StructureKind) String() string {
	if k < 0 || int(k) >= len(structureKindNames) {
		return "unknown"
	}
	return structureKindNames[k]
}

// Structure carries a hexagram's palace-structure classification plus the
// six-clash (六沖) and six-harmony (六合) whole-hexagram tags.
type Structure struct {
	Kind       StructureKind
	SixClash   bool
	SixHarmony bool
}

// Line is one of the six hexagram positions, bottom (1) to top (6), with
// its polarity, changing flag and fixed 納甲 binding. Lines are values:
// a changed line is a distinct Line on the transformed hexagram, never an
// in-place edit.
type Line struct {
	Position int // 1..6
	Yang     bool
	Changing bool
	Stem     ganzhi.Stem
	Branch   ganzhi.Branch
	Element  ganzhi.Element
}

// Pillar returns the line's bound stem/branch pair.
func (l Line) Pillar() ganzhi.Pillar {
	return ganzhi.Pillar{Stem: l.Stem, Branch: l.Branch}
}

// Hexagram is an immutable six-line hexagram with its identity from the
// 64-hexagram table: name, palace, self element, structure and the 世/應
// line positions.
type Hexagram struct {
	Code        string
	Name        string
	Palace      Trigram
	SelfElement ganzhi.Element
	Structure   Structure
	// Shi (世) and Ying (應) line positions, 1..6. Ying is always three
	// positions past Shi on the six-line cycle.
	Shi  int
	Ying int

	Lines [6]Line
}

// Line returns the line at position pos (1..6).
func (h Hexagram) Line(pos int) Line { return h.Lines[pos-1] }

// Inner returns the trigram formed by lines 1..3.
func (h Hexagram) Inner() Trigram { return trigramFromCode(h.Code[:3]) }

// Outer returns the trigram formed by lines 4..6.
func (h Hexagram) Outer() Trigram { return trigramFromCode(h.Code[3:]) }
