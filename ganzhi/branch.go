package ganzhi

import "errors"

// ErrUnknownBranch indicates a character that is not one of the 12 earthly branches.
var ErrUnknownBranch = errors.New("ganzhi: unknown earthly branch")

// Branch is one of the 12 earthly branches (地支), in sexagenary order.
type Branch int

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

// NumBranches is the size of the earthly-branch cycle.
const NumBranches = 12

var branchNames = [NumBranches]string{
	"zi", "chou", "yin", "mao", "chen", "si",
	"wu", "wei", "shen", "you", "xu", "hai",
}

var branchGlyphs = [NumBranches]string{
	"子", "丑", "寅", "卯", "辰", "巳",
	"午", "未", "申", "酉", "戌", "亥",
}

var branchElements = [NumBranches]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// String returns a locale-neutral pinyin token ("zi", "chou", ...).
func (b Branch) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return branchNames[b]
}

// Glyph returns the canonical Chinese character for the branch.
func (b Branch) Glyph() string {
	if !b.Valid() {
		return "?"
	}
	return branchGlyphs[b]
}

// Valid reports whether b is one of the 12 defined branches.
func (b Branch) Valid() bool { return b >= 0 && b < NumBranches }

// Element returns the five-element affinity of the branch. Total mapping.
func (b Branch) Element() Element { return branchElements[b] }

// Yang reports the polarity of the branch: even sexagenary positions are yang.
func (b Branch) Yang() bool { return b%2 == 0 }

// Opposite returns the six-clash (六沖) opposite of the branch, six
// positions away on the cycle. 子↔午, 丑↔未, 寅↔申, and so on.
func (b Branch) Opposite() Branch { return (b + 6) % NumBranches }

// HarmonyPartner returns the six-harmony (六合) partner of the branch.
// The six fixed pairs are 子丑, 寅亥, 卯戌, 辰酉, 巳申 and 午未.
func (b Branch) HarmonyPartner() Branch { return harmonyPartners[b] }

// InHarmony reports whether b and other form one of the six harmony pairs.
func (b Branch) InHarmony(other Branch) bool { return harmonyPartners[b] == other }

var harmonyPartners = [NumBranches]Branch{
	BranchZi:   BranchChou,
	BranchChou: BranchZi,
	BranchYin:  BranchHai,
	BranchMao:  BranchXu,
	BranchChen: BranchYou,
	BranchSi:   BranchShen,
	BranchWu:   BranchWei,
	BranchWei:  BranchWu,
	BranchShen: BranchSi,
	BranchYou:  BranchChen,
	BranchXu:   BranchMao,
	BranchHai:  BranchYin,
}

// ParseBranch resolves a canonical Chinese branch character (e.g. "子").
// Returns ErrUnknownBranch for anything else.
func ParseBranch(glyph string) (Branch, error) {
	for i, g := range branchGlyphs {
		if g == glyph {
			return Branch(i), nil
		}
	}
	return 0, ErrUnknownBranch
}
