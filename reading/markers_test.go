package reading_test

import (
	"testing"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarkers_ClashSuppressesSupport: a 丑 line on a 未 day shares the
// day's element but is clashed by it, so the clash wins and no day
// support appears.
func TestMarkers_ClashSuppressesSupport(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "辛未", "甲子")
	r, err := reading.Compute("011111", nil, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchChou, r.Cast.Line(1).Branch)

	assert.Equal(t,
		[]reading.MarkerKind{reading.MarkerDayClash, reading.MarkerDayBreak},
		kindsAt(r, 1, false))
}

// TestMarkers_HarmonySuppressesGeneration: a 亥 day harmonizes a 寅 line
// in the generating direction, absorbing the plain day-generates marker.
func TestMarkers_HarmonySuppressesGeneration(t *testing.T) {
	fp := fourPillars(t, "甲子", "丙子", "丁亥", "甲子")
	r, err := reading.Compute("111111", nil, fp)
	require.NoError(t, err)

	markers := r.LineMarkers(2)
	require.Len(t, markers, 1)
	assert.Equal(t, reading.MarkerDayHarmony, markers[0].Kind)
	assert.Equal(t, ganzhi.HarmonyGenerating, markers[0].Flavor)
}

// TestMarkers_HarmonySuppressesControl: a 卯 day harmonizes a 戌 line in
// the controlling direction, absorbing the plain day-controls marker.
func TestMarkers_HarmonySuppressesControl(t *testing.T) {
	fp := fourPillars(t, "甲子", "丙子", "乙卯", "甲子")
	r, err := reading.Compute("111111", nil, fp)
	require.NoError(t, err)

	markers := r.LineMarkers(6)
	require.Len(t, markers, 1)
	assert.Equal(t, reading.MarkerDayHarmony, markers[0].Kind)
	assert.Equal(t, ganzhi.HarmonyControlling, markers[0].Flavor)
}

// TestMarkers_MonthNeutralHarmony: a 辰 month extends a neutral harmony
// over 寅 and 卯 lines beyond the six fixed pairs.
func TestMarkers_MonthNeutralHarmony(t *testing.T) {
	fp := fourPillars(t, "甲子", "庚辰", "甲子", "甲子")
	r, err := reading.Compute("111111", nil, fp)
	require.NoError(t, err)

	assert.Contains(t, r.LineMarkers(2), reading.Marker{
		Kind: reading.MarkerMonthHarmony, Position: 2, Flavor: ganzhi.HarmonyNeutral,
	})
}

// TestMarkers_MonthBreak: the month branch's opposite line is broken.
func TestMarkers_MonthBreak(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "甲子", "甲子")
	r, err := reading.Compute("110110", nil, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchSi, r.Cast.Line(1).Branch)

	assert.Contains(t, kindsAt(r, 1, false), reading.MarkerMonthBreak)
}

// TestMarkers_Auspices: the day-keyed auspice tables hit cast lines by
// branch. An 乙卯 day puts the blossom on 子, the noble on 子 and 申,
// and the blade on 辰.
func TestMarkers_Auspices(t *testing.T) {
	fp := fourPillars(t, "甲子", "丙子", "乙卯", "甲子")
	r, err := reading.Compute("111111", nil, fp)
	require.NoError(t, err)

	assert.Contains(t, kindsAt(r, 1, false), reading.MarkerPeachBlossom)
	assert.Contains(t, kindsAt(r, 1, false), reading.MarkerNoblePerson)
	assert.Contains(t, kindsAt(r, 5, false), reading.MarkerNoblePerson)
	assert.Contains(t, kindsAt(r, 3, false), reading.MarkerBlade)
}

// TestMarkers_Advance: a 寅 line transforming into 卯 advances within
// wood.
func TestMarkers_Advance(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "甲子", "甲子")
	r, err := reading.Compute("100100", []int{2}, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchYin, r.Cast.Line(2).Branch)
	require.Equal(t, ganzhi.BranchMao, r.Transformed.Line(2).Branch)

	assert.Contains(t, kindsAt(r, 2, false), reading.MarkerAdvance)
}

// TestMarkers_Retreat: a 卯 line transforming into 寅 retreats.
func TestMarkers_Retreat(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "甲子", "甲子")
	r, err := reading.Compute("110110", []int{2}, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchMao, r.Cast.Line(2).Branch)
	require.Equal(t, ganzhi.BranchYin, r.Transformed.Line(2).Branch)

	assert.Contains(t, kindsAt(r, 2, false), reading.MarkerRetreat)
}

// TestMarkers_ReturnGeneration: a 巳 line transforming into 寅 is
// generated back by its own transformation.
func TestMarkers_ReturnGeneration(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "甲子", "甲子")
	r, err := reading.Compute("110110", []int{1}, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchSi, r.Cast.Line(1).Branch)
	require.Equal(t, ganzhi.BranchYin, r.Transformed.Line(1).Branch)

	assert.Contains(t, kindsAt(r, 1, false), reading.MarkerReturnGeneration)
	assert.NotContains(t, kindsAt(r, 1, false), reading.MarkerReturnControl)
}

// TestMarkers_TransformedLine: date predicates also run on the
// transformed line of a changing position. A 未 top line transforming
// into 戌 lands in the 甲子 decade's void pair.
func TestMarkers_TransformedLine(t *testing.T) {
	fp := fourPillars(t, "甲子", "丁亥", "甲子", "甲子")
	r, err := reading.Compute("111110", []int{6}, fp)
	require.NoError(t, err)
	require.Equal(t, ganzhi.BranchWei, r.Cast.Line(6).Branch)
	require.Equal(t, ganzhi.BranchXu, r.Transformed.Line(6).Branch)

	assert.Contains(t, kindsAt(r, 6, true), reading.MarkerVoid)
}
