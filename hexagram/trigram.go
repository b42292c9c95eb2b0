package hexagram

import "github.com/katalvlaran/liuyao/ganzhi"

// Trigram is one of the 8 trigrams (八卦). Each trigram doubles into a
// palace pure hexagram and lends the palace its self element.
type Trigram int

const (
	Qian Trigram = iota // 乾 ☰
	Kan                 // 坎 ☵
	Gen                 // 艮 ☶
	Zhen                // 震 ☳
	Xun                 // 巽 ☴
	Li                  // 離 ☲
	Kun                 // 坤 ☷
	Dui                 // 兌 ☱
)

// NumTrigrams is the number of trigrams and of palaces.
const NumTrigrams = 8

var trigramNames = [NumTrigrams]string{"qian", "kan", "gen", "zhen", "xun", "li", "kun", "dui"}
var trigramGlyphs = [NumTrigrams]string{"乾", "坎", "艮", "震", "巽", "離", "坤", "兌"}

// Three-line polarity codes, bottom line first.
var trigramCodes = [NumTrigrams]string{"111", "010", "001", "100", "011", "101", "000", "110"}

var trigramElements = [NumTrigrams]ganzhi.Element{
	ganzhi.Metal, // 乾金
	ganzhi.Water, // 坎水
	ganzhi.Earth, // 艮土
	ganzhi.Wood,  // 震木
	ganzhi.Wood,  // 巽木
	ganzhi.Fire,  // 離火
	ganzhi.Earth, // 坤土
	ganzhi.Metal, // 兌金
}

// 納甲 stem assignment per trigram, positions 1..6 bottom to top. Only 乾
// and 坤 split between inner and outer stems; the other six trigrams use
// one stem throughout.
var trigramStems = [NumTrigrams][6]ganzhi.Stem{
	Qian: {ganzhi.StemJia, ganzhi.StemJia, ganzhi.StemJia, ganzhi.StemRen, ganzhi.StemRen, ganzhi.StemRen},
	Kan:  {ganzhi.StemWu, ganzhi.StemWu, ganzhi.StemWu, ganzhi.StemWu, ganzhi.StemWu, ganzhi.StemWu},
	Gen:  {ganzhi.StemBing, ganzhi.StemBing, ganzhi.StemBing, ganzhi.StemBing, ganzhi.StemBing, ganzhi.StemBing},
	Zhen: {ganzhi.StemGeng, ganzhi.StemGeng, ganzhi.StemGeng, ganzhi.StemGeng, ganzhi.StemGeng, ganzhi.StemGeng},
	Xun:  {ganzhi.StemXin, ganzhi.StemXin, ganzhi.StemXin, ganzhi.StemXin, ganzhi.StemXin, ganzhi.StemXin},
	Li:   {ganzhi.StemJi, ganzhi.StemJi, ganzhi.StemJi, ganzhi.StemJi, ganzhi.StemJi, ganzhi.StemJi},
	Kun:  {ganzhi.StemYi, ganzhi.StemYi, ganzhi.StemYi, ganzhi.StemGui, ganzhi.StemGui, ganzhi.StemGui},
	Dui:  {ganzhi.StemDing, ganzhi.StemDing, ganzhi.StemDing, ganzhi.StemDing, ganzhi.StemDing, ganzhi.StemDing},
}

// 納甲 branch assignment per trigram, positions 1..6 bottom to top. The
// four yang trigrams ascend the cycle, the four yin trigrams descend.
var trigramBranches = [NumTrigrams][6]ganzhi.Branch{
	Qian: {ganzhi.BranchZi, ganzhi.BranchYin, ganzhi.BranchChen, ganzhi.BranchWu, ganzhi.BranchShen, ganzhi.BranchXu},
	Kan:  {ganzhi.BranchYin, ganzhi.BranchChen, ganzhi.BranchWu, ganzhi.BranchShen, ganzhi.BranchXu, ganzhi.BranchZi},
	Gen:  {ganzhi.BranchChen, ganzhi.BranchWu, ganzhi.BranchShen, ganzhi.BranchXu, ganzhi.BranchZi, ganzhi.BranchYin},
	Zhen: {ganzhi.BranchZi, ganzhi.BranchYin, ganzhi.BranchChen, ganzhi.BranchWu, ganzhi.BranchShen, ganzhi.BranchXu},
	Xun:  {ganzhi.BranchChou, ganzhi.BranchHai, ganzhi.BranchYou, ganzhi.BranchWei, ganzhi.BranchSi, ganzhi.BranchMao},
	Li:   {ganzhi.BranchMao, ganzhi.BranchChou, ganzhi.BranchHai, ganzhi.BranchYou, ganzhi.BranchWei, ganzhi.BranchSi},
	Kun:  {ganzhi.BranchWei, ganzhi.BranchSi, ganzhi.BranchMao, ganzhi.BranchChou, ganzhi.BranchHai, ganzhi.BranchYou},
	Dui:  {ganzhi.BranchSi, ganzhi.BranchMao, ganzhi.BranchChou, ganzhi.BranchHai, ganzhi.BranchYou, ganzhi.BranchWei},
}

// String returns a locale-neutral pinyin token ("qian", "kan", ...).
func (t Trigram) String() string {
	if t < 0 || t >= NumTrigrams {
		return "unknown"
	}
	return trigramNames[t]
}

// Glyph returns the canonical Chinese character for the trigram.
func (t Trigram) Glyph() string {
	if t < 0 || t >= NumTrigrams {
		return "?"
	}
	return trigramGlyphs[t]
}

// Element returns the five-element affinity of the trigram's palace.
func (t Trigram) Element() ganzhi.Element { return trigramElements[t] }

// Yang reports the trigram's polarity group: 乾坎艮震 are yang,
// 巽離坤兌 are yin.
func (t Trigram) Yang() bool { return t <= Zhen }

// Code returns the trigram's three-line polarity code, bottom line first.
func (t Trigram) Code() string { return trigramCodes[t] }

// trigramFromCode resolves a three-character polarity code. The code is
// assumed validated; any 3-bit pattern maps to exactly one trigram.
func trigramFromCode(code string) Trigram {
	for t, c := range trigramCodes {
		if c == code {
			return Trigram(t)
		}
	}
	return Qian // unreachable for validated input
}
