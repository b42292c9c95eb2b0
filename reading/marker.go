package reading

import "github.com/katalvlaran/liuyao/ganzhi"

// MarkerKind names one divine marker (神煞) or date-relation condition.
// Most kinds are line-scoped; MarkerTriple spans the whole reading.
type MarkerKind int

const (
	// MarkerVoid (旬空): the branch falls in the void pair of the day's
	// sexagenary decade.
	MarkerVoid MarkerKind = iota
	// MarkerMonthBreak (月破): the month branch clashes the line.
	MarkerMonthBreak
	// MarkerDayClash (日沖): the day branch clashes the line.
	MarkerDayClash
	// MarkerMonthHarmony (月合): the month branch harmonizes the line;
	// Flavor carries the direction.
	MarkerMonthHarmony
	// MarkerDayHarmony (日合): the day branch harmonizes the line;
	// Flavor carries the direction.
	MarkerDayHarmony
	// MarkerOnDay (臨日): the line branch equals the day branch.
	MarkerOnDay
	// MarkerDaySupport (日扶): same element as the day, different branch.
	MarkerDaySupport
	// MarkerDayGenerates (日生): the day element generates the line.
	MarkerDayGenerates
	// MarkerDayControls (日克): the day element controls the line.
	MarkerDayControls
	// MarkerHiddenMovement (暗動): a static line clashed by the day while
	// the month favors it; the line acts as if it were changing.
	MarkerHiddenMovement
	// MarkerDayBreak (日破): a static line clashed by the day with no
	// month backing; the clash breaks it instead of moving it.
	MarkerDayBreak
	// MarkerPeachBlossom (桃花), keyed by the day branch's triad.
	MarkerPeachBlossom
	// MarkerTravelingHorse (驛馬), keyed by the day branch's triad.
	MarkerTravelingHorse
	// MarkerNoblePerson (貴人), keyed by the day stem.
	MarkerNoblePerson
	// MarkerBlade (羊刃), keyed by the day stem.
	MarkerBlade
	// MarkerAdvance (化進神): a changing line transforming one step
	// forward within its own element.
	MarkerAdvance
	// MarkerRetreat (化退神): a changing line transforming one step
	// backward within its own element.
	MarkerRetreat
	// MarkerReturnGeneration (回頭生): the transformed line generates
	// its own base line.
	MarkerReturnGeneration
	// MarkerReturnControl (回頭克): the transformed line controls its
	// own base line.
	MarkerReturnControl
	// MarkerTriple (三合局): a whole-reading triple combination.
	MarkerTriple
)

var markerKindNames = [...]string{
	"void", "month-break", "day-clash", "month-harmony", "day-harmony",
	"on-day", "day-support", "day-generates", "day-controls",
	"hidden-movement", "day-break",
	"peach-blossom", "traveling-horse", "noble-person", "blade",
	"advance", "retreat", "return-generation", "return-control",
	"triple-combination",
}

var markerKindGlyphs = [...]string{
	"旬空", "月破", "日沖", "月合", "日合",
	"臨日", "日扶", "日生", "日克",
	"暗動", "日破",
	"桃花", "驛馬", "貴人", "羊刃",
	"化進神", "化退神", "回頭生", "回頭克",
	"三合局",
}

func (k MarkerKind) String() string {
	if k < 0 || int(k) >= len(markerKindNames) {
		return "unknown"
	}
	return markerKindNames[k]
}

// Glyph returns the canonical form, e.g. "旬空".
func (k MarkerKind) Glyph() string {
	if k < 0 || int(k) >= len(markerKindGlyphs) {
		return "?"
	}
	return markerKindGlyphs[k]
}

// Marker is one marker instance attached to a line, or to the whole
// reading when Position is 0.
type Marker struct {
	Kind     MarkerKind
	Position int // 1..6, or 0 for whole-reading markers

	// Transformed is set when the marker was evaluated on the
	// transformed line at Position rather than the cast line.
	Transformed bool

	// Flavor is the harmony direction; meaningful only for
	// MarkerMonthHarmony and MarkerDayHarmony.
	Flavor ganzhi.HarmonyFlavor
}

// TripleKind distinguishes how a triple combination was completed.
type TripleKind int

const (
	// TripleFull: all three branches came from the hexagram's own lines.
	TripleFull TripleKind = iota
	// TripleSupported: the day or month branch supplied a member.
	TripleSupported
)

var tripleKindNames = [...]string{"full", "supported"}

func (k TripleKind) String() string {
	if k < 0 || int(k) >= len(tripleKindNames) {
		return "unknown"
	}
	return tripleKindNames[k]
}

// TripleSourceKind names where a triple-combination member came from.
type TripleSourceKind int

const (
	SourceCastLine TripleSourceKind = iota
	SourceTransformedLine
	SourceDay
	SourceMonth
)

var tripleSourceNames = [...]string{"cast-line", "transformed-line", "day", "month"}

func (k TripleSourceKind) String() string {
	if k < 0 || int(k) >= len(tripleSourceNames) {
		return "unknown"
	}
	return tripleSourceNames[k]
}

// TripleSource is one member of a formed triple combination. Position is
// the line position for line-borne members and 0 for the day and month.
type TripleSource struct {
	Branch   ganzhi.Branch
	Kind     TripleSourceKind
	Position int
}

// TripleCombination records a formed 三合局: the triad, how it was
// completed, and the concrete source of each member in triad order.
type TripleCombination struct {
	Triad   ganzhi.Triad
	Kind    TripleKind
	Sources [3]TripleSource
}
