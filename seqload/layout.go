package seqload

import (
	"fmt"
	"sort"
	"strings"
)

// Layout describes where the variant columns live in a headerless,
// delimited variant table. Columns are 0-based. A zero Delimiter is detected
// from the data.
type Layout struct {
	Delimiter rune
	Comment   rune
	ColChrom  int
	ColPos    int
	ColRef    int
	ColAlt    int
}

var Layouts = map[string]Layout{
	// CHROM POS ID REF ALT QUAL FILTER INFO ...
	"VCF": {
		Delimiter: '\t',
		Comment:   '#',
		ColChrom:  0,
		ColPos:    1,
		ColRef:    3,
		ColAlt:    4,
	},
	// CHROM POS REF ALT, any delimiter
	"CHRPOSREFALT": {
		Delimiter: 0,
		Comment:   '#',
		ColChrom:  0,
		ColPos:    1,
		ColRef:    2,
		ColAlt:    3,
	},
}

func LayoutNames() string {
	names := make([]string, 0, len(Layouts))
	for m := range Layouts {
		names = append(names, m)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func LookupLayout(name string) (Layout, error) {
	l, exists := Layouts[strings.ToUpper(name)]
	if !exists {
		return Layout{}, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", name, LayoutNames())
	}

	return l, nil
}

// MinColumns is the number of fields a row needs for every column of the
// layout to be present.
func (l Layout) MinColumns() int {
	max := l.ColChrom
	for _, c := range []int{l.ColPos, l.ColRef, l.ColAlt} {
		if c > max {
			max = c
		}
	}

	return max + 1
}
