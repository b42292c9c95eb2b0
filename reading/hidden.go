package reading

import (
	"fmt"

	"github.com/katalvlaran/liuyao/hexagram"
)

// hiddenGods resolves the hidden gods (伏神) of a cast hexagram: for each
// relative category absent from its six lines, the first matching line of
// the palace pure hexagram, scanned bottom to top, stands in at its own
// position. Categories are resolved in cycle order so the result is
// deterministic.
//
// The shipped palace tables always cover all five categories in a pure
// hexagram; a gap means the tables were edited inconsistently and
// surfaces as ErrInconsistentPalaceTable.
func hiddenGods(cast hexagram.Hexagram) ([]HiddenGod, error) {
	var present [NumRelatives]bool
	for _, line := range cast.Lines {
		present[RelativeOf(cast.SelfElement, line.Element)] = true
	}

	var missing []Relative
	for cat := Relative(0); cat < NumRelatives; cat++ {
		if !present[cat] {
			missing = append(missing, cat)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	pure := hexagram.Pure(cast.Palace)
	gods := make([]HiddenGod, 0, len(missing))
	for _, cat := range missing {
		found := false
		for _, line := range pure.Lines {
			if RelativeOf(cast.SelfElement, line.Element) != cat {
				continue
			}
			gods = append(gods, HiddenGod{
				Category: cat,
				Stem:     line.Stem,
				Branch:   line.Branch,
				Element:  line.Element,
				Position: line.Position,
			})
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("palace %s category %s: %w",
				cast.Palace, cat, ErrInconsistentPalaceTable)
		}
	}
	return gods, nil
}
