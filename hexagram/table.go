package hexagram

// identity is one row of the 64-hexagram table: the traditional name, the
// owning palace, the 世 line position and the structure classification.
// The self element and the 應 position derive from palace and 世.
type identity struct {
	name   string
	palace Trigram
	shi    int
	kind   StructureKind
	clash  bool
	harm   bool
}

// hexagramTable keys the 64 hexagrams by their polarity code (bottom line
// first). Each palace contributes eight hexagrams in the classical order:
// pure, first to fifth generation, wandering soul, returning soul.
var hexagramTable = map[string]identity{
	// 乾宮 (Metal)
	"111111": {name: "乾為天", palace: Qian, shi: 6, kind: StructurePure, clash: true},
	"011111": {name: "天風姤", palace: Qian, shi: 1},
	"001111": {name: "天山遁", palace: Qian, shi: 2},
	"000111": {name: "天地否", palace: Qian, shi: 3, harm: true},
	"000011": {name: "風地觀", palace: Qian, shi: 4},
	"000001": {name: "山地剝", palace: Qian, shi: 5},
	"000101": {name: "火地晉", palace: Qian, shi: 4, kind: StructureWandering},
	"111101": {name: "火天大有", palace: Qian, shi: 3, kind: StructureReturning},

	// 坎宮 (Water)
	"010010": {name: "坎為水", palace: Kan, shi: 6, kind: StructurePure, clash: true},
	"110010": {name: "水澤節", palace: Kan, shi: 1, harm: true},
	"100010": {name: "水雷屯", palace: Kan, shi: 2},
	"101010": {name: "水火既濟", palace: Kan, shi: 3},
	"101110": {name: "澤火革", palace: Kan, shi: 4},
	"101100": {name: "雷火豐", palace: Kan, shi: 5},
	"101000": {name: "地火明夷", palace: Kan, shi: 4, kind: StructureWandering},
	"010000": {name: "地水師", palace: Kan, shi: 3, kind: StructureReturning},

	// 艮宮 (Earth)
	"001001": {name: "艮為山", palace: Gen, shi: 6, kind: StructurePure, clash: true},
	"101001": {name: "山火賁", palace: Gen, shi: 1, harm: true},
	"111001": {name: "山天大畜", palace: Gen, shi: 2},
	"110001": {name: "山澤損", palace: Gen, shi: 3},
	"110101": {name: "火澤睽", palace: Gen, shi: 4},
	"110111": {name: "天澤履", palace: Gen, shi: 5},
	"110011": {name: "風澤中孚", palace: Gen, shi: 4, kind: StructureWandering},
	"001011": {name: "風山漸", palace: Gen, shi: 3, kind: StructureReturning},

	// 震宮 (Wood)
	"100100": {name: "震為雷", palace: Zhen, shi: 6, kind: StructurePure, clash: true},
	"000100": {name: "雷地豫", palace: Zhen, shi: 1, harm: true},
	"010100": {name: "雷水解", palace: Zhen, shi: 2},
	"011100": {name: "雷風恒", palace: Zhen, shi: 3},
	"011000": {name: "地風升", palace: Zhen, shi: 4},
	"011010": {name: "水風井", palace: Zhen, shi: 5},
	"011110": {name: "澤風大過", palace: Zhen, shi: 4, kind: StructureWandering},
	"100110": {name: "澤雷隨", palace: Zhen, shi: 3, kind: StructureReturning},

	// 巽宮 (Wood)
	"011011": {name: "巽為風", palace: Xun, shi: 6, kind: StructurePure, clash: true},
	"111011": {name: "風天小畜", palace: Xun, shi: 1},
	"101011": {name: "風火家人", palace: Xun, shi: 2},
	"100011": {name: "風雷益", palace: Xun, shi: 3},
	"100111": {name: "天雷無妄", palace: Xun, shi: 4, clash: true},
	"100101": {name: "火雷噬嗑", palace: Xun, shi: 5},
	"100001": {name: "山雷頤", palace: Xun, shi: 4, kind: StructureWandering},
	"011001": {name: "山風蠱", palace: Xun, shi: 3, kind: StructureReturning},

	// 離宮 (Fire)
	"101101": {name: "離為火", palace: Li, shi: 6, kind: StructurePure, clash: true},
	"001101": {name: "火山旅", palace: Li, shi: 1, harm: true},
	"011101": {name: "火風鼎", palace: Li, shi: 2},
	"010101": {name: "火水未濟", palace: Li, shi: 3},
	"010001": {name: "山水蒙", palace: Li, shi: 4},
	"010011": {name: "風水渙", palace: Li, shi: 5},
	"010111": {name: "天水訟", palace: Li, shi: 4, kind: StructureWandering},
	"101111": {name: "天火同人", palace: Li, shi: 3, kind: StructureReturning},

	// 坤宮 (Earth)
	"000000": {name: "坤為地", palace: Kun, shi: 6, kind: StructurePure, clash: true},
	"100000": {name: "地雷復", palace: Kun, shi: 1, harm: true},
	"110000": {name: "地澤臨", palace: Kun, shi: 2},
	"111000": {name: "地天泰", palace: Kun, shi: 3, harm: true},
	"111100": {name: "雷天大壯", palace: Kun, shi: 4, clash: true},
	"111110": {name: "澤天夬", palace: Kun, shi: 5},
	"111010": {name: "水天需", palace: Kun, shi: 4, kind: StructureWandering},
	"000010": {name: "水地比", palace: Kun, shi: 3, kind: StructureReturning},

	// 兌宮 (Metal)
	"110110": {name: "兌為澤", palace: Dui, shi: 6, kind: StructurePure, clash: true},
	"010110": {name: "澤水困", palace: Dui, shi: 1, harm: true},
	"000110": {name: "澤地萃", palace: Dui, shi: 2},
	"001110": {name: "澤山咸", palace: Dui, shi: 3},
	"001010": {name: "水山蹇", palace: Dui, shi: 4},
	"001000": {name: "地山謙", palace: Dui, shi: 5},
	"001100": {name: "雷山小過", palace: Dui, shi: 4, kind: StructureWandering},
	"110100": {name: "雷澤歸妹", palace: Dui, shi: 3, kind: StructureReturning},
}
