package reading

import (
	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/hexagram"
)

// dateContext is everything the marker predicates need from the four
// pillars, resolved once per reading.
type dateContext struct {
	month   ganzhi.Branch
	day     ganzhi.Branch
	dayStem ganzhi.Stem
	voids   [2]ganzhi.Branch

	blossom ganzhi.Branch
	horse   ganzhi.Branch
	blade   ganzhi.Branch
	noble   [2]ganzhi.Branch
}

func newDateContext(p ganzhi.FourPillars) dateContext {
	return dateContext{
		month:   p.Month.Branch,
		day:     p.Day.Branch,
		dayStem: p.Day.Stem,
		voids:   p.Day.VoidBranches(),
		blossom: peachBlossomTargets[p.Day.Branch],
		horse:   travelingHorseTargets[p.Day.Branch],
		blade:   bladeTargets[p.Day.Stem],
		noble:   noblePersonTargets[p.Day.Stem],
	}
}

func (ctx dateContext) void(b ganzhi.Branch) bool {
	return b == ctx.voids[0] || b == ctx.voids[1]
}

// dateMarkers evaluates the date-relation predicates for one branch, in
// the fixed classical order. The order is the precedence: a day harmony
// suppresses the plain generation or control marker of its flavor, and a
// day clash suppresses day support and day control.
//
// refineClash turns the bare day clash into 暗動 or 日破; it is set only
// for static cast lines.
func dateMarkers(branch ganzhi.Branch, pos int, transformed, refineClash bool, ctx dateContext) []Marker {
	markers := make([]Marker, 0, 4)
	emit := func(kind MarkerKind) {
		markers = append(markers, Marker{Kind: kind, Position: pos, Transformed: transformed})
	}

	if ctx.void(branch) {
		emit(MarkerVoid)
	}
	if ctx.month.Opposite() == branch {
		emit(MarkerMonthBreak)
	}

	dayClash := ctx.day.Opposite() == branch
	if dayClash {
		emit(MarkerDayClash)
		if refineClash {
			monthFlavor, monthHarmony := ganzhi.MonthHarmony(ctx.month, branch)
			backed := MonthStateOf(branch, ctx.month).Favorable() ||
				(monthHarmony && monthFlavor != ganzhi.HarmonyControlling)
			if backed {
				emit(MarkerHiddenMovement)
			} else {
				emit(MarkerDayBreak)
			}
		}
	}

	if flavor, ok := ganzhi.MonthHarmony(ctx.month, branch); ok {
		markers = append(markers, Marker{
			Kind: MarkerMonthHarmony, Position: pos, Transformed: transformed, Flavor: flavor,
		})
	}

	dayFlavor, dayHarmony := ganzhi.DayHarmony(ctx.day, branch)
	if dayHarmony {
		markers = append(markers, Marker{
			Kind: MarkerDayHarmony, Position: pos, Transformed: transformed, Flavor: dayFlavor,
		})
	}

	switch {
	case branch == ctx.day:
		emit(MarkerOnDay)
	case branch.Element() == ctx.day.Element() && !dayClash:
		emit(MarkerDaySupport)
	}

	switch ganzhi.Relate(ctx.day.Element(), branch.Element()) {
	case ganzhi.RelationGenerates:
		if !(dayHarmony && dayFlavor == ganzhi.HarmonyGenerating) {
			emit(MarkerDayGenerates)
		}
	case ganzhi.RelationControls:
		if !dayClash && !(dayHarmony && dayFlavor == ganzhi.HarmonyControlling) {
			emit(MarkerDayControls)
		}
	}

	return markers
}

// auspiceMarkers evaluates the day-keyed auspice tables for a cast line.
func auspiceMarkers(branch ganzhi.Branch, pos int, ctx dateContext) []Marker {
	var markers []Marker
	emit := func(kind MarkerKind) {
		markers = append(markers, Marker{Kind: kind, Position: pos})
	}
	if branch == ctx.blossom {
		emit(MarkerPeachBlossom)
	}
	if branch == ctx.horse {
		emit(MarkerTravelingHorse)
	}
	if branch == ctx.noble[0] || branch == ctx.noble[1] {
		emit(MarkerNoblePerson)
	}
	if branch == ctx.blade {
		emit(MarkerBlade)
	}
	return markers
}

// advanceTargets maps a changing line's branch to the transformed branch
// that makes the change an advance (化進神): 寅→卯, 申→酉, 未→戌, 丑→辰.
// The reverse direction is a retreat (化退神).
var advanceTargets = map[ganzhi.Branch]ganzhi.Branch{
	ganzhi.BranchYin:  ganzhi.BranchMao,
	ganzhi.BranchShen: ganzhi.BranchYou,
	ganzhi.BranchWei:  ganzhi.BranchXu,
	ganzhi.BranchChou: ganzhi.BranchChen,
}

// transformMarkers evaluates the markers a changing line earns from its
// own transformed counterpart: advance, retreat, and the return
// generation/control of the transformed element toward the base element.
func transformMarkers(line, transformed hexagram.Line) []Marker {
	var markers []Marker
	emit := func(kind MarkerKind) {
		markers = append(markers, Marker{Kind: kind, Position: line.Position})
	}

	if target, ok := advanceTargets[line.Branch]; ok && target == transformed.Branch {
		emit(MarkerAdvance)
	}
	if target, ok := advanceTargets[transformed.Branch]; ok && target == line.Branch {
		emit(MarkerRetreat)
	}

	switch ganzhi.Relate(transformed.Element, line.Element) {
	case ganzhi.RelationGenerates:
		emit(MarkerReturnGeneration)
	case ganzhi.RelationControls:
		emit(MarkerReturnControl)
	}

	return markers
}
