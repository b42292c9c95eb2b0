package reading

import "github.com/katalvlaran/liuyao/ganzhi"

// MonthStateOf classifies a line's standing toward the month branch.
// Branch identity outranks element identity: a line on the month branch
// is 臨月 even though its element necessarily matches.
func MonthStateOf(lineBranch ganzhi.Branch, month ganzhi.Branch) MonthState {
	if lineBranch == month {
		return OnMonth
	}
	switch ganzhi.Relate(lineBranch.Element(), month.Element()) {
	case ganzhi.RelationSame:
		return MonthSupport
	case ganzhi.RelationGenerates:
		return Resting
	case ganzhi.RelationControls:
		return Imprisoned
	case ganzhi.RelationControlledBy:
		return MonthControls
	default: // ganzhi.RelationGeneratedBy
		return MonthGenerates
	}
}

// StrengthOf folds the month state and the day branch into the line's
// strength. The month rules the call: a favorable month prospers the
// line outright, a drained line rests as weakening, and a month that
// controls or imprisons the line exhausts it unless the day element
// matches or generates it, which softens the call to weakening.
func StrengthOf(lineBranch ganzhi.Branch, month, day ganzhi.Branch) Strength {
	state := MonthStateOf(lineBranch, month)
	s := Strength{Month: state}

	switch {
	case state.Favorable():
		s.Verdict = Prospering
	case state == Resting:
		s.Verdict = Weakening
	default: // MonthControls, Imprisoned
		rel := ganzhi.Relate(day.Element(), lineBranch.Element())
		if rel == ganzhi.RelationSame || rel == ganzhi.RelationGenerates {
			s.Verdict = Weakening
		} else {
			s.Verdict = Exhausted
		}
	}
	return s
}
