package ganzhi

// Triad is one of the four triple-combination (三合局) branch sets. The
// pivot (中神) is the middle branch of the set; a combination only forms
// when the pivot participates as a moving source.
type Triad struct {
	Branches [3]Branch
	Pivot    Branch
}

// Contains reports whether b is one of the triad's three branches.
func (t Triad) Contains(b Branch) bool {
	return b == t.Branches[0] || b == t.Branches[1] || b == t.Branches[2]
}

// Triads lists the four triple-combination sets in canonical order.
var Triads = [4]Triad{
	{Branches: [3]Branch{BranchSi, BranchYou, BranchChou}, Pivot: BranchYou},   // 巳酉丑
	{Branches: [3]Branch{BranchShen, BranchZi, BranchChen}, Pivot: BranchZi},   // 申子辰
	{Branches: [3]Branch{BranchHai, BranchMao, BranchWei}, Pivot: BranchMao},   // 亥卯未
	{Branches: [3]Branch{BranchYin, BranchWu, BranchXu}, Pivot: BranchWu},      // 寅午戌
}
