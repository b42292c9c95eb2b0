package reading

import (
	"errors"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/hexagram"
)

// ErrInconsistentPalaceTable indicates that a palace pure hexagram failed
// to supply a hidden god for a missing relative category. The shipped
// tables make this impossible; the check guards future table edits.
var ErrInconsistentPalaceTable = errors.New("reading: palace table missing a relative category")

// ErrIncompleteClassification indicates a finished reading with a line
// left unclassified. Like ErrInconsistentPalaceTable it is a guard on the
// pipeline's own completeness, not on user input.
var ErrIncompleteClassification = errors.New("reading: line missing a classification")

// Relative is one of the six-relative (六親) categories a line takes
// against the palace self element. Five categories are assignable; the
// role occupied by the self element itself is what the remaining name
// covers in classical texts, so the cycle here is five-valued.
type Relative int

const (
	Sibling Relative = iota // 兄弟 — same element as the palace
	Child                   // 子孫 — the palace element generates it
	Wealth                  // 妻財 — the palace element controls it
	Officer                 // 官鬼 — it controls the palace element
	Parent                  // 父母 — it generates the palace element
)

// NumRelatives is the number of assignable relative categories.
const NumRelatives = 5

var relativeNames = [NumRelatives]string{"sibling", "child", "wealth", "officer", "parent"}
var relativeGlyphs = [NumRelatives]string{"兄弟", "子孫", "妻財", "官鬼", "父母"}

// String returns a locale-neutral token ("sibling", "child", ...).
func (r Relative) String() string {
	if r < 0 || r >= NumRelatives {
		return "unknown"
	}
	return relativeNames[r]
}

// Glyph returns the canonical two-character form, e.g. "兄弟".
func (r Relative) Glyph() string {
	if r < 0 || r >= NumRelatives {
		return "??"
	}
	return relativeGlyphs[r]
}

// Valid reports whether r is one of the five defined categories.
func (r Relative) Valid() bool { return r >= 0 && r < NumRelatives }

// Spirit is one of the six spirits (六獸) walking the lines bottom to
// top, seeded by the day stem.
type Spirit int

const (
	Qinglong Spirit = iota // 青龍
	Zhuque                 // 朱雀
	Gouchen                // 勾陳
	Tengshe                // 螣蛇
	Baihu                  // 白虎
	Xuanwu                 // 玄武
)

// NumSpirits is the size of the six-spirit cycle.
const NumSpirits = 6

var spiritNames = [NumSpirits]string{"qinglong", "zhuque", "gouchen", "tengshe", "baihu", "xuanwu"}
var spiritGlyphs = [NumSpirits]string{"青龍", "朱雀", "勾陳", "螣蛇", "白虎", "玄武"}

// String returns a locale-neutral pinyin token ("qinglong", ...).
func (s Spirit) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return spiritNames[s]
}

// Glyph returns the canonical two-character form, e.g. "青龍".
func (s Spirit) Glyph() string {
	if !s.Valid() {
		return "??"
	}
	return spiritGlyphs[s]
}

// Valid reports whether s is one of the six defined spirits.
func (s Spirit) Valid() bool { return s >= 0 && s < NumSpirits }

// MonthState is a line's standing (旺衰) toward the month branch: the
// two accord states by branch or element, then the four relational
// states by the five-element cycle.
type MonthState int

const (
	// OnMonth (臨月): the line branch equals the month branch.
	OnMonth MonthState = iota
	// MonthSupport (月扶): same element as the month, different branch.
	MonthSupport
	// MonthGenerates (月生): the month element generates the line.
	MonthGenerates
	// Resting (休): the line generates the month and is drained by it.
	Resting
	// MonthControls (月克): the month element controls the line.
	MonthControls
	// Imprisoned (囚): the line controls the month and is bound by it.
	Imprisoned
)

var monthStateNames = [...]string{
	"on-month", "month-support", "month-generates", "resting", "month-controls", "imprisoned",
}
var monthStateGlyphs = [...]string{"臨月", "月扶", "月生", "休", "月克", "囚"}

func (m MonthState) String() string {
	if m < 0 || int(m) >= len(monthStateNames) {
		return "unknown"
	}
	return monthStateNames[m]
}

// Glyph returns the canonical form, e.g. "臨月".
func (m MonthState) Glyph() string {
	if m < 0 || int(m) >= len(monthStateGlyphs) {
		return "?"
	}
	return monthStateGlyphs[m]
}

// Favorable reports whether the month leaves the line prospering: on the
// month, supported by it, or generated by it.
func (m MonthState) Favorable() bool {
	return m == OnMonth || m == MonthSupport || m == MonthGenerates
}

// Verdict folds the month state and the day relation into a single
// strength call. The month dominates: a favorable month prospers the
// line regardless of the day, and an unfavorable month is softened to
// weakening only when the day backs the line.
type Verdict int

const (
	Prospering Verdict = iota
	Weakening
	Exhausted
)

var verdictNames = [...]string{"prospering", "weakening", "exhausted"}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return "unknown"
	}
	return verdictNames[v]
}

// Strength is a line's full standing toward the date: the month state
// and the folded verdict.
type Strength struct {
	Month   MonthState
	Verdict Verdict
}

// HiddenGod (伏神) is a line of the palace pure hexagram standing in for
// a relative category absent from the cast hexagram. Position is the
// pure-hexagram line it was taken from, which is also the cast line it
// hides beneath.
type HiddenGod struct {
	Category Relative
	Stem     ganzhi.Stem
	Branch   ganzhi.Branch
	Element  ganzhi.Element
	Position int // 1..6
}

// Pillar returns the hidden god's stem/branch binding.
func (h HiddenGod) Pillar() ganzhi.Pillar {
	return ganzhi.Pillar{Stem: h.Stem, Branch: h.Branch}
}

// LineReading is one fully classified line of a reading: the cast line,
// its transformed counterpart, and every per-line classification.
type LineReading struct {
	Line        hexagram.Line
	Transformed hexagram.Line

	Relative Relative
	Spirit   Spirit
	Strength Strength

	// TransformedRelative classifies the transformed line against the
	// cast hexagram's palace element, the element the whole reading is
	// judged in. Meaningful only when Line.Changing.
	TransformedRelative Relative

	// Hidden is the hidden god lying beneath this line, if any.
	Hidden *HiddenGod
}

// Reading is the immutable terminal value of the pipeline.
type Reading struct {
	Pillars     ganzhi.FourPillars
	Cast        hexagram.Hexagram
	Transformed hexagram.Hexagram

	Lines      [6]LineReading
	HiddenGods []HiddenGod

	// Markers is the full marker set of the reading, line-scoped and
	// whole-reading markers alike, in evaluation order.
	Markers []Marker

	// Triple is the first triple combination found, if any. It is also
	// mirrored in Markers as a whole-reading MarkerTriple.
	Triple *TripleCombination
}

// Line returns the classified line at position pos (1..6).
func (r Reading) Line(pos int) LineReading { return r.Lines[pos-1] }

// LineMarkers returns the markers scoped to position pos (1..6), in
// evaluation order.
func (r Reading) LineMarkers(pos int) []Marker {
	var out []Marker
	for _, m := range r.Markers {
		if m.Position == pos {
			out = append(out, m)
		}
	}
	return out
}
