package ganzhi

import (
	"errors"
	"fmt"
)

// ErrPolarityMismatch indicates a pillar whose stem and branch polarities
// disagree. Only 30 of the 120 stem/branch combinations occur in the
// sexagenary cycle; mismatched input is rejected, never corrected.
var ErrPolarityMismatch = errors.New("ganzhi: stem and branch polarity mismatch")

// Pillar is an ordered (stem, branch) pair of the sexagenary cycle.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// NewPillar builds a pillar, rejecting polarity-mismatched pairs.
func NewPillar(s Stem, b Branch) (Pillar, error) {
	if !s.Valid() {
		return Pillar{}, fmt.Errorf("stem %d: %w", int(s), ErrUnknownStem)
	}
	if !b.Valid() {
		return Pillar{}, fmt.Errorf("branch %d: %w", int(b), ErrUnknownBranch)
	}
	if s.Yang() != b.Yang() {
		return Pillar{}, fmt.Errorf("%s%s: %w", s.Glyph(), b.Glyph(), ErrPolarityMismatch)
	}
	return Pillar{Stem: s, Branch: b}, nil
}

// MustPillar is NewPillar that panics on invalid input. Intended for
// package-level tables and tests with fixed, known-good pairs.
func MustPillar(s Stem, b Branch) Pillar {
	p, err := NewPillar(s, b)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pinyin form, e.g. "jiazi".
func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

// Glyph returns the canonical two-character form, e.g. "甲子".
func (p Pillar) Glyph() string { return p.Stem.Glyph() + p.Branch.Glyph() }

// VoidBranches returns the void pair (旬空) of the pillar's sexagenary
// decade: the two branches left uncovered by the ten days of the decade
// the pillar falls in. For 甲子 through 癸酉 the pair is 戌亥, and so on
// around the six decades.
func (p Pillar) VoidBranches() [2]Branch {
	start := (int(p.Branch) - int(p.Stem) + NumBranches) % NumBranches
	return [2]Branch{
		Branch((start + 10) % NumBranches),
		Branch((start + 11) % NumBranches),
	}
}

// FourPillars is a fully resolved four-pillar (八字) timestamp: year,
// month, day and hour pillars. It is supplied by an external calendar
// collaborator and immutable once constructed.
type FourPillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar
}

// NewFourPillars validates all four pillars.
func NewFourPillars(year, month, day, hour Pillar) (FourPillars, error) {
	for _, p := range []struct {
		name   string
		pillar Pillar
	}{
		{"year", year}, {"month", month}, {"day", day}, {"hour", hour},
	} {
		if _, err := NewPillar(p.pillar.Stem, p.pillar.Branch); err != nil {
			return FourPillars{}, fmt.Errorf("%s pillar: %w", p.name, err)
		}
	}
	return FourPillars{Year: year, Month: month, Day: day, Hour: hour}, nil
}

// String returns the pinyin form of all four pillars.
func (fp FourPillars) String() string {
	return fmt.Sprintf("%s %s %s %s", fp.Year, fp.Month, fp.Day, fp.Hour)
}
