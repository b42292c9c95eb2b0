// Package hexagram models a six-line divination hexagram and the fixed
// tables that give every hexagram its identity.
//
// A hexagram is cast from a 6-character polarity code ('1' = solid/yang,
// '0' = broken/yin, bottom line first) plus the positions of its changing
// lines. Casting yields two immutable values: the cast hexagram and the
// transformed hexagram obtained by inverting polarity at every changing
// position. The transformed hexagram is looked up fresh against the
// 64-hexagram table — its palace, self element and 世/應 positions
// generally differ from the cast hexagram's, so it is never line-patched.
//
// Each line carries a fixed (stem, branch, element) binding from the 納甲
// assignment: the inner trigram's pattern covers positions 1–3, the outer
// trigram's pattern covers positions 4–6. All tables are load-time
// constants; the package holds no mutable state.
package hexagram
