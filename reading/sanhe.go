package reading

import (
	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/hexagram"
)

// tripleCombination looks for the first triple combination (三合局) a
// reading forms. Eligible branch sources, in rising override order:
//
//   - cast lines that are changing or in hidden movement
//   - transformed lines of the changing positions
//   - the day branch, then the month branch (always counted as moving)
//
// Each branch keeps one source; the day and month override line sources
// for their branch. A combination forms when a triad's three branches
// are all covered and its pivot source is genuinely moving: a changing
// line, a transformed line, or the date itself. A cast line in hidden
// movement may fill a side seat but cannot anchor the pivot.
//
// The kind is full when all three members came from the hexagram's own
// lines, supported when the day or month filled a seat. Triads are
// probed in canonical order and only the first match is reported.
func tripleCombination(cast, transformed hexagram.Hexagram, anDong [6]bool, month, day ganzhi.Branch) *TripleCombination {
	sources := make(map[ganzhi.Branch]TripleSource, 8)
	moving := make(map[ganzhi.Branch]bool, 8)

	for i, line := range cast.Lines {
		if !line.Changing && !anDong[i] {
			continue
		}
		if _, ok := sources[line.Branch]; ok {
			continue
		}
		sources[line.Branch] = TripleSource{Branch: line.Branch, Kind: SourceCastLine, Position: line.Position}
		moving[line.Branch] = line.Changing
	}
	for i, line := range cast.Lines {
		if !line.Changing {
			continue
		}
		tl := transformed.Lines[i]
		if _, ok := sources[tl.Branch]; ok {
			continue
		}
		sources[tl.Branch] = TripleSource{Branch: tl.Branch, Kind: SourceTransformedLine, Position: tl.Position}
		moving[tl.Branch] = true
	}
	sources[day] = TripleSource{Branch: day, Kind: SourceDay}
	moving[day] = true
	sources[month] = TripleSource{Branch: month, Kind: SourceMonth}
	moving[month] = true

	for _, triad := range ganzhi.Triads {
		combo := TripleCombination{Triad: triad, Kind: TripleFull}
		complete := true
		for i, b := range triad.Branches {
			src, ok := sources[b]
			if !ok {
				complete = false
				break
			}
			combo.Sources[i] = src
			if src.Kind == SourceDay || src.Kind == SourceMonth {
				combo.Kind = TripleSupported
			}
		}
		if !complete || !moving[triad.Pivot] {
			continue
		}
		return &combo
	}
	return nil
}
