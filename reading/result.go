package reading

import "github.com/katalvlaran/liuyao/hexagram"

// Result is the serializable view of a Reading: plain strings and
// numbers only, with every enum rendered as its locale-neutral token
// plus the canonical glyph. It marshals cleanly with encoding/json and
// carries no behavior.
type Result struct {
	Pillars     PillarsResult  `json:"pillars"`
	Cast        HexagramResult `json:"cast"`
	Transformed HexagramResult `json:"transformed"`
	Lines       []LineResult   `json:"lines"`
	HiddenGods  []HiddenResult `json:"hiddenGods,omitempty"`
	Markers     []MarkerResult `json:"markers,omitempty"`
	Triple      *TripleResult  `json:"tripleCombination,omitempty"`
}

// PillarsResult is the four-pillar timestamp in glyph form, plus the
// day's void pair.
type PillarsResult struct {
	Year  string   `json:"year"`
	Month string   `json:"month"`
	Day   string   `json:"day"`
	Hour  string   `json:"hour"`
	Voids []string `json:"voids"`
}

// HexagramResult is one hexagram's identity and lines.
type HexagramResult struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Palace      string `json:"palace"`
	SelfElement string `json:"selfElement"`
	Structure   string `json:"structure"`
	SixClash    bool   `json:"sixClash,omitempty"`
	SixHarmony  bool   `json:"sixHarmony,omitempty"`
	Shi         int    `json:"shi"`
	Ying        int    `json:"ying"`
}

// LineResult is one classified line.
type LineResult struct {
	Position int    `json:"position"`
	Yang     bool   `json:"yang"`
	Changing bool   `json:"changing,omitempty"`
	Pillar   string `json:"pillar"`
	Element  string `json:"element"`
	Relative string `json:"relative"`
	Spirit   string `json:"spirit"`
	Month    string `json:"monthState"`
	Verdict  string `json:"verdict"`

	TransformedPillar   string `json:"transformedPillar,omitempty"`
	TransformedRelative string `json:"transformedRelative,omitempty"`
}

// HiddenResult is one hidden god.
type HiddenResult struct {
	Category string `json:"category"`
	Pillar   string `json:"pillar"`
	Element  string `json:"element"`
	Position int    `json:"position"`
}

// MarkerResult is one marker instance.
type MarkerResult struct {
	Kind        string `json:"kind"`
	Glyph       string `json:"glyph"`
	Position    int    `json:"position,omitempty"`
	Transformed bool   `json:"transformed,omitempty"`
	Flavor      string `json:"flavor,omitempty"`
}

// TripleResult is a formed triple combination.
type TripleResult struct {
	Branches []string             `json:"branches"`
	Pivot    string               `json:"pivot"`
	Kind     string               `json:"kind"`
	Sources  []TripleSourceResult `json:"sources"`
}

// TripleSourceResult is one member of a triple combination.
type TripleSourceResult struct {
	Branch   string `json:"branch"`
	Kind     string `json:"kind"`
	Position int    `json:"position,omitempty"`
}

// Result derives the serializable view of the reading.
func (r Reading) Result() Result {
	voids := r.Pillars.Day.VoidBranches()
	out := Result{
		Pillars: PillarsResult{
			Year:  r.Pillars.Year.Glyph(),
			Month: r.Pillars.Month.Glyph(),
			Day:   r.Pillars.Day.Glyph(),
			Hour:  r.Pillars.Hour.Glyph(),
			Voids: []string{voids[0].Glyph(), voids[1].Glyph()},
		},
		Cast:        hexagramResult(r.Cast),
		Transformed: hexagramResult(r.Transformed),
		Lines:       make([]LineResult, 0, len(r.Lines)),
	}

	for _, lr := range r.Lines {
		line := LineResult{
			Position: lr.Line.Position,
			Yang:     lr.Line.Yang,
			Changing: lr.Line.Changing,
			Pillar:   lr.Line.Pillar().Glyph(),
			Element:  lr.Line.Element.String(),
			Relative: lr.Relative.String(),
			Spirit:   lr.Spirit.String(),
			Month:    lr.Strength.Month.String(),
			Verdict:  lr.Strength.Verdict.String(),
		}
		if lr.Line.Changing {
			line.TransformedPillar = lr.Transformed.Pillar().Glyph()
			line.TransformedRelative = lr.TransformedRelative.String()
		}
		out.Lines = append(out.Lines, line)
	}

	for _, god := range r.HiddenGods {
		out.HiddenGods = append(out.HiddenGods, HiddenResult{
			Category: god.Category.String(),
			Pillar:   god.Pillar().Glyph(),
			Element:  god.Element.String(),
			Position: god.Position,
		})
	}

	for _, m := range r.Markers {
		mr := MarkerResult{
			Kind:        m.Kind.String(),
			Glyph:       m.Kind.Glyph(),
			Position:    m.Position,
			Transformed: m.Transformed,
		}
		if m.Kind == MarkerMonthHarmony || m.Kind == MarkerDayHarmony {
			mr.Flavor = m.Flavor.String()
		}
		out.Markers = append(out.Markers, mr)
	}

	if r.Triple != nil {
		tr := &TripleResult{
			Pivot: r.Triple.Triad.Pivot.Glyph(),
			Kind:  r.Triple.Kind.String(),
		}
		for i, b := range r.Triple.Triad.Branches {
			tr.Branches = append(tr.Branches, b.Glyph())
			src := r.Triple.Sources[i]
			tr.Sources = append(tr.Sources, TripleSourceResult{
				Branch:   src.Branch.Glyph(),
				Kind:     src.Kind.String(),
				Position: src.Position,
			})
		}
		out.Triple = tr
	}

	return out
}

func hexagramResult(h hexagram.Hexagram) HexagramResult {
	return HexagramResult{
		Code:        h.Code,
		Name:        h.Name,
		Palace:      h.Palace.String(),
		SelfElement: h.SelfElement.String(),
		Structure:   h.Structure.Kind.String(),
		SixClash:    h.Structure.SixClash,
		SixHarmony:  h.Structure.SixHarmony,
		Shi:         h.Shi,
		Ying:        h.Ying,
	}
}
