package ganzhi

import "errors"

// ErrUnknownStem indicates a character that is not one of the 10 heavenly stems.
var ErrUnknownStem = errors.New("ganzhi: unknown heavenly stem")

// Stem is one of the 10 heavenly stems (天干), in sexagenary order.
type Stem int

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

// NumStems is the size of the heavenly-stem cycle.
const NumStems = 10

var stemNames = [NumStems]string{"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}
var stemGlyphs = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Stems pair up into five elements: 甲乙木, 丙丁火, 戊己土, 庚辛金, 壬癸水.
var stemElements = [NumStems]Element{
	Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water,
}

// String returns a locale-neutral pinyin token ("jia", "yi", ...).
func (s Stem) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stemNames[s]
}

// Glyph returns the canonical Chinese character for the stem.
func (s Stem) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return stemGlyphs[s]
}

// Valid reports whether s is one of the 10 defined stems.
func (s Stem) Valid() bool { return s >= 0 && s < NumStems }

// Element returns the five-element affinity of the stem. Total mapping.
func (s Stem) Element() Element { return stemElements[s] }

// Yang reports the polarity of the stem: even sexagenary positions are yang.
func (s Stem) Yang() bool { return s%2 == 0 }

// ParseStem resolves a canonical Chinese stem character (e.g. "甲").
// Returns ErrUnknownStem for anything else.
func ParseStem(glyph string) (Stem, error) {
	for i, g := range stemGlyphs {
		if g == glyph {
			return Stem(i), nil
		}
	}
	return 0, ErrUnknownStem
}
