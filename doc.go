// Package liuyao is a pure computation engine for traditional six-line
// (六爻) hexagram divination readings.
//
// 🚀 What is liuyao?
//
//	A deterministic, zero-I/O library that turns a cast hexagram, a set of
//	changing-line positions, and a resolved four-pillar timestamp into a
//	fully annotated reading:
//		• Hexagram model: 64-hexagram identity, palaces, 納甲 stem/branch binding
//		• Transformed hexagram derived from the changing lines
//		• Six relatives (六親) and six spirits (六獸) per line
//		• Hidden gods (伏神) resolved from the palace pure hexagram
//		• Month-based strength states (旺衰)
//		• Divine markers (神煞): void, breaks, clashes, harmonies,
//		  hidden movement, triple combinations and more
//
// ✨ Why choose liuyao?
//
//   - Pure functions over immutable inputs – no hidden state, no I/O
//   - Closed enums for every domain value – exhaustive, compiler-checked
//   - Sentinel errors split into caller defects and table defects
//   - Independent readings are safe to compute fully in parallel
//
// Everything is organized under three subpackages:
//
//	ganzhi/   — stems, branches, elements, pillars & their relationships
//	hexagram/ — the 6-line hexagram model and the 64-hexagram tables
//	reading/  — classifiers, the marker engine and the reading assembler
//
// The engine consumes an already-resolved ganzhi.FourPillars; calendar
// conversion, date parsing, rendering and persistence belong to callers.
//
//	go get github.com/katalvlaran/liuyao
package liuyao
