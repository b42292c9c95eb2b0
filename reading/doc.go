// Package reading computes a fully annotated six-line divination reading
// from a cast hexagram and a resolved four-pillar timestamp.
//
// The pipeline is a single pass over immutable inputs:
//
//	hexagram.Cast → relatives, spirits, strength, hidden gods → markers → Reading
//
// Each classifier is a pure function over the cast/transformed hexagrams
// and the four pillars:
//
//   - six relatives (六親): each line's element against the palace self element
//   - six spirits (六獸): a cyclic assignment seeded by the day stem's decade group
//   - strength (旺衰): the line element against the month branch, with a
//     month-first verdict folding in the day relation
//   - hidden gods (伏神): categories absent from the cast lines, resolved
//     from the palace pure hexagram
//   - divine markers (神煞): an ordered list of independent predicates
//     (void, breaks, clashes, harmonies, day relations, hidden movement,
//     blossom/horse/noble/blade, transform markers, triple combinations)
//
// Marker precedence is explicit in the evaluation order: day harmony
// flavors suppress the matching plain day generation/control markers, and
// a day clash suppresses day support, exactly as classical practice
// orders them. Everything else coexists freely on a line.
//
// The terminal Reading value is immutable; Result() derives a
// JSON-serializable view with locale-neutral enum tokens. Labeling,
// rendering and persistence belong to the presentation collaborator.
package reading
