// Package ganzhi models the sexagenary calendar primitives the divination
// engine is built on: the 10 heavenly stems, the 12 earthly branches, the
// five elements, and the (stem, branch) pillars of a four-pillar timestamp.
//
// Every type is a closed enumeration with total element and polarity
// mappings; there is no partial lookup anywhere in the package. On top of
// the raw enums the package provides the branch relationships the rule
// engine consumes:
//
//   - generation/control relations over the five-element cycle
//   - the six-clash opposite of a branch (六沖)
//   - the six-harmony partner of a branch (六合) and the harmony flavor
//     (generating, controlling or neutral) of a month/day pairing
//   - the four triple-combination triads (三合局) with their pivot branch
//   - the void pair (旬空) of a day pillar's sexagenary decade
//
// All tables are package-level constants initialized at load time and
// never mutated. The package performs no date parsing and no calendar
// conversion; callers supply pillars already resolved by an external
// calendar collaborator.
package ganzhi
