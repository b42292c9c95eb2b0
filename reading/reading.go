package reading

import (
	"fmt"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/hexagram"
)

// Compute runs the full pipeline: cast the hexagrams from the polarity
// code and changing positions, classify every line, resolve hidden gods,
// evaluate the marker predicates and probe for a triple combination.
//
// The same inputs always produce the same Reading. Errors come from
// input validation (the pillars, the code, the changing positions) or
// from the internal completeness guards; a valid input never fails.
func Compute(code string, changing []int, pillars ganzhi.FourPillars) (Reading, error) {
	validated, err := ganzhi.NewFourPillars(pillars.Year, pillars.Month, pillars.Day, pillars.Hour)
	if err != nil {
		return Reading{}, err
	}

	cast, transformed, err := hexagram.Cast(code, changing)
	if err != nil {
		return Reading{}, err
	}

	r := Reading{Pillars: validated, Cast: cast, Transformed: transformed}
	ctx := newDateContext(validated)

	var anDong [6]bool
	for i, line := range cast.Lines {
		lr := LineReading{
			Line:        line,
			Transformed: transformed.Lines[i],
			Relative:    RelativeOf(cast.SelfElement, line.Element),
			Spirit:      SpiritOf(ctx.dayStem, line.Position),
			Strength:    StrengthOf(line.Branch, ctx.month, ctx.day),
		}

		lineMarkers := dateMarkers(line.Branch, line.Position, false, !line.Changing, ctx)
		for _, m := range lineMarkers {
			if m.Kind == MarkerHiddenMovement {
				anDong[i] = true
			}
		}
		r.Markers = append(r.Markers, lineMarkers...)
		r.Markers = append(r.Markers, auspiceMarkers(line.Branch, line.Position, ctx)...)

		if line.Changing {
			tl := transformed.Lines[i]
			lr.TransformedRelative = RelativeOf(cast.SelfElement, tl.Element)
			r.Markers = append(r.Markers, dateMarkers(tl.Branch, tl.Position, true, false, ctx)...)
			r.Markers = append(r.Markers, transformMarkers(line, tl)...)
		}

		r.Lines[i] = lr
	}

	r.HiddenGods, err = hiddenGods(cast)
	if err != nil {
		return Reading{}, err
	}
	for i := range r.HiddenGods {
		god := r.HiddenGods[i]
		r.Lines[god.Position-1].Hidden = &r.HiddenGods[i]
	}

	if r.Triple = tripleCombination(cast, transformed, anDong, ctx.month, ctx.day); r.Triple != nil {
		r.Markers = append(r.Markers, Marker{Kind: MarkerTriple})
	}

	if err := r.checkComplete(); err != nil {
		return Reading{}, err
	}
	return r, nil
}

// checkComplete verifies that every line carries a relative and a spirit.
// The classifiers are total, so a failure here means a pipeline bug, not
// bad input.
func (r Reading) checkComplete() error {
	for _, lr := range r.Lines {
		if !lr.Relative.Valid() || !lr.Spirit.Valid() {
			return fmt.Errorf("line %d: %w", lr.Line.Position, ErrIncompleteClassification)
		}
		if lr.Line.Changing && !lr.TransformedRelative.Valid() {
			return fmt.Errorf("line %d transformed: %w", lr.Line.Position, ErrIncompleteClassification)
		}
	}
	return nil
}
