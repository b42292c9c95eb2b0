package reading

import "github.com/katalvlaran/liuyao/ganzhi"

// Day-keyed target tables for the four auspice markers. A line earns the
// marker when its branch equals the day's target branch.

// peachBlossomTargets (桃花) keys on the day branch's triad:
// 寅午戌→卯, 申子辰→酉, 亥卯未→子, 巳酉丑→午.
var peachBlossomTargets = [ganzhi.NumBranches]ganzhi.Branch{
	ganzhi.BranchZi:   ganzhi.BranchYou,
	ganzhi.BranchChou: ganzhi.BranchWu,
	ganzhi.BranchYin:  ganzhi.BranchMao,
	ganzhi.BranchMao:  ganzhi.BranchZi,
	ganzhi.BranchChen: ganzhi.BranchYou,
	ganzhi.BranchSi:   ganzhi.BranchWu,
	ganzhi.BranchWu:   ganzhi.BranchMao,
	ganzhi.BranchWei:  ganzhi.BranchZi,
	ganzhi.BranchShen: ganzhi.BranchYou,
	ganzhi.BranchYou:  ganzhi.BranchWu,
	ganzhi.BranchXu:   ganzhi.BranchMao,
	ganzhi.BranchHai:  ganzhi.BranchZi,
}

// travelingHorseTargets (驛馬) keys on the day branch's triad:
// 寅午戌→申, 申子辰→寅, 亥卯未→巳, 巳酉丑→亥.
var travelingHorseTargets = [ganzhi.NumBranches]ganzhi.Branch{
	ganzhi.BranchZi:   ganzhi.BranchYin,
	ganzhi.BranchChou: ganzhi.BranchHai,
	ganzhi.BranchYin:  ganzhi.BranchShen,
	ganzhi.BranchMao:  ganzhi.BranchSi,
	ganzhi.BranchChen: ganzhi.BranchYin,
	ganzhi.BranchSi:   ganzhi.BranchHai,
	ganzhi.BranchWu:   ganzhi.BranchShen,
	ganzhi.BranchWei:  ganzhi.BranchSi,
	ganzhi.BranchShen: ganzhi.BranchYin,
	ganzhi.BranchYou:  ganzhi.BranchHai,
	ganzhi.BranchXu:   ganzhi.BranchShen,
	ganzhi.BranchHai:  ganzhi.BranchSi,
}

// noblePersonTargets (貴人) keys on the day stem, two targets each:
// 甲戊庚→丑未, 乙己→子申, 丙丁→亥酉, 壬癸→巳卯, 辛→午寅.
var noblePersonTargets = [ganzhi.NumStems][2]ganzhi.Branch{
	ganzhi.StemJia:  {ganzhi.BranchChou, ganzhi.BranchWei},
	ganzhi.StemYi:   {ganzhi.BranchZi, ganzhi.BranchShen},
	ganzhi.StemBing: {ganzhi.BranchHai, ganzhi.BranchYou},
	ganzhi.StemDing: {ganzhi.BranchHai, ganzhi.BranchYou},
	ganzhi.StemWu:   {ganzhi.BranchChou, ganzhi.BranchWei},
	ganzhi.StemJi:   {ganzhi.BranchZi, ganzhi.BranchShen},
	ganzhi.StemGeng: {ganzhi.BranchChou, ganzhi.BranchWei},
	ganzhi.StemXin:  {ganzhi.BranchWu, ganzhi.BranchYin},
	ganzhi.StemRen:  {ganzhi.BranchSi, ganzhi.BranchMao},
	ganzhi.StemGui:  {ganzhi.BranchSi, ganzhi.BranchMao},
}

// bladeTargets (羊刃) keys on the day stem:
// 甲卯 乙辰 丙午 丁未 戊午 己未 庚酉 辛戌 壬子 癸丑.
var bladeTargets = [ganzhi.NumStems]ganzhi.Branch{
	ganzhi.StemJia:  ganzhi.BranchMao,
	ganzhi.StemYi:   ganzhi.BranchChen,
	ganzhi.StemBing: ganzhi.BranchWu,
	ganzhi.StemDing: ganzhi.BranchWei,
	ganzhi.StemWu:   ganzhi.BranchWu,
	ganzhi.StemJi:   ganzhi.BranchWei,
	ganzhi.StemGeng: ganzhi.BranchYou,
	ganzhi.StemXin:  ganzhi.BranchXu,
	ganzhi.StemRen:  ganzhi.BranchZi,
	ganzhi.StemGui:  ganzhi.BranchChou,
}
