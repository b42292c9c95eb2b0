package ganzhi

// HarmonyFlavor classifies a six-harmony pairing between a month or day
// branch and a line branch by the direction of the elemental relation.
type HarmonyFlavor int

const (
	// HarmonyGenerating (生合): the month/day branch generates the line.
	HarmonyGenerating HarmonyFlavor = iota
	// HarmonyControlling (克合): the month/day branch controls the line.
	HarmonyControlling
	// HarmonyNeutral (平合): the remaining harmony directions; only the
	// month relation recognizes this flavor.
	HarmonyNeutral
)

var harmonyFlavorNames = [...]string{"generating", "controlling", "neutral"}

func (f HarmonyFlavor) String() string {
	if f < 0 || int(f) >= len(harmonyFlavorNames) {
		return "unknown"
	}
	return harmonyFlavorNames[f]
}

// Directed harmony classifications, keyed by (reference branch, line branch).
// The three generating directions: 午火→未土, 辰土→酉金, 亥水→寅木.
// The three controlling directions: 巳火→申金, 卯木→戌土, 丑土→子水.
// Every remaining direction of the six pairs is neutral.
var generatingHarmonies = map[Branch]Branch{
	BranchWu:   BranchWei,
	BranchChen: BranchYou,
	BranchHai:  BranchYin,
}

var controllingHarmonies = map[Branch]Branch{
	BranchSi:   BranchShen,
	BranchMao:  BranchXu,
	BranchChou: BranchZi,
}

// MonthHarmony classifies the harmony between the month branch and a line
// branch. Besides the six fixed pairs, two seasonal-earth months extend
// the neutral flavor: a 辰 month harmonizes 寅 and 卯 lines, and a 未
// month harmonizes 巳 and 午 lines.
func MonthHarmony(month, line Branch) (HarmonyFlavor, bool) {
	if flavor, ok := pairHarmony(month, line, true); ok {
		return flavor, true
	}
	if month == BranchChen && (line == BranchYin || line == BranchMao) {
		return HarmonyNeutral, true
	}
	if month == BranchWei && (line == BranchSi || line == BranchWu) {
		return HarmonyNeutral, true
	}
	return 0, false
}

// DayHarmony classifies the harmony between the day branch and a line
// branch. Only the generating and controlling flavors exist against the
// day; neutral directions yield no harmony.
func DayHarmony(day, line Branch) (HarmonyFlavor, bool) {
	return pairHarmony(day, line, false)
}

func pairHarmony(ref, line Branch, allowNeutral bool) (HarmonyFlavor, bool) {
	if !ref.InHarmony(line) {
		return 0, false
	}
	if target, ok := generatingHarmonies[ref]; ok && target == line {
		return HarmonyGenerating, true
	}
	if target, ok := controllingHarmonies[ref]; ok && target == line {
		return HarmonyControlling, true
	}
	if allowNeutral {
		return HarmonyNeutral, true
	}
	return 0, false
}
