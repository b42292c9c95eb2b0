package hexagram

import "fmt"

// CodeLength is the number of lines in a hexagram code.
const CodeLength = 6

// Cast builds the cast hexagram from a 6-character polarity code (bottom
// line first, '1' solid / '0' broken) and the changing-line positions,
// and derives the transformed hexagram by inverting polarity at every
// changing position. With no changing lines the two hexagrams are equal.
//
// The transformed hexagram is resolved fresh against the 64-hexagram
// table: its palace, self element, structure and 世/應 positions are its
// own, not the cast hexagram's.
//
// Errors:
//   - ErrInvalidCode — code is not exactly six '0'/'1' characters.
//   - ErrInvalidLinePosition — a changing position is outside 1..6 or
//     listed twice.
func Cast(code string, changing []int) (cast, transformed Hexagram, err error) {
	if err = validateCode(code); err != nil {
		return Hexagram{}, Hexagram{}, err
	}

	var isChanging [CodeLength]bool
	for _, pos := range changing {
		if pos < 1 || pos > CodeLength {
			return Hexagram{}, Hexagram{}, fmt.Errorf("position %d: %w", pos, ErrInvalidLinePosition)
		}
		if isChanging[pos-1] {
			return Hexagram{}, Hexagram{}, fmt.Errorf("position %d listed twice: %w", pos, ErrInvalidLinePosition)
		}
		isChanging[pos-1] = true
	}

	cast = build(code, isChanging)

	transformedCode := []byte(code)
	for i, c := range isChanging {
		if c {
			if transformedCode[i] == '1' {
				transformedCode[i] = '0'
			} else {
				transformedCode[i] = '1'
			}
		}
	}
	transformed = build(string(transformedCode), isChanging)

	return cast, transformed, nil
}

// Pure returns the pure (本宮) hexagram of a palace: the trigram doubled,
// with no changing lines. Hidden-god resolution scans its lines.
func Pure(palace Trigram) Hexagram {
	return build(palace.Code()+palace.Code(), [CodeLength]bool{})
}

func validateCode(code string) error {
	if len(code) != CodeLength {
		return fmt.Errorf("code %q: want %d characters: %w", code, CodeLength, ErrInvalidCode)
	}
	for i := 0; i < CodeLength; i++ {
		if code[i] != '0' && code[i] != '1' {
			return fmt.Errorf("code %q: character %d: %w", code, i+1, ErrInvalidCode)
		}
	}
	return nil
}

// build assembles an immutable Hexagram for a validated code. The
// identity table covers all 64 polarity patterns, so the lookup is total.
func build(code string, changing [CodeLength]bool) Hexagram {
	id := hexagramTable[code]
	h := Hexagram{
		Code:        code,
		Name:        id.name,
		Palace:      id.palace,
		SelfElement: id.palace.Element(),
		Structure:   Structure{Kind: id.kind, SixClash: id.clash, SixHarmony: id.harm},
		Shi:         id.shi,
		Ying:        (id.shi+2)%CodeLength + 1,
	}

	inner := trigramFromCode(code[:3])
	outer := trigramFromCode(code[3:])
	for i := 0; i < CodeLength; i++ {
		src := inner
		if i >= 3 {
			src = outer
		}
		branch := trigramBranches[src][i]
		h.Lines[i] = Line{
			Position: i + 1,
			Yang:     code[i] == '1',
			Changing: changing[i],
			Stem:     trigramStems[src][i],
			Branch:   branch,
			Element:  branch.Element(),
		}
	}

	return h
}
