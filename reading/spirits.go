package reading

import "github.com/katalvlaran/liuyao/ganzhi"

// spiritSeeds maps the day stem to the spirit starting the walk on line
// one: 甲乙→青龍, 丙丁→朱雀, 戊→勾陳, 己→螣蛇, 庚辛→白虎, 壬癸→玄武.
// The earth stems split where the other element pairs share a seed.
var spiritSeeds = [ganzhi.NumStems]Spirit{
	Qinglong, Qinglong, // 甲乙
	Zhuque, Zhuque, // 丙丁
	Gouchen, // 戊
	Tengshe, // 己
	Baihu, Baihu, // 庚辛
	Xuanwu, Xuanwu, // 壬癸
}

// SpiritOf assigns the spirit of the line at position pos (1..6) for a
// given day stem. Spirits walk the six lines bottom to top in cycle
// order from the day stem's seed.
func SpiritOf(dayStem ganzhi.Stem, pos int) Spirit {
	return (spiritSeeds[dayStem] + Spirit(pos-1)) % NumSpirits
}
