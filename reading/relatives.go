package reading

import "github.com/katalvlaran/liuyao/ganzhi"

// RelativeOf classifies a line element against the palace self element.
// The five-element cycle is total, so every pair yields exactly one
// category and the mapping never fails.
func RelativeOf(self, line ganzhi.Element) Relative {
	switch ganzhi.Relate(self, line) {
	case ganzhi.RelationSame:
		return Sibling
	case ganzhi.RelationGenerates:
		return Child
	case ganzhi.RelationControls:
		return Wealth
	case ganzhi.RelationControlledBy:
		return Officer
	default: // ganzhi.RelationGeneratedBy
		return Parent
	}
}
