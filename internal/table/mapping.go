package table

import (
	"fmt"
	"log"
	"strings"

	"Girder/internal/analysis"
)

// Canonical column names downstream code relies on.
const (
	ColPosition = "Position (m)"
	ColLoad     = "Load (kN)"
	ColX        = "x"
	ColShear    = "shear"
	ColMoment   = "moment"
)

// mapRule maps the first header the predicate accepts to a canonical name.
// Rules run in order and each canonical target is assigned at most once.
type mapRule struct {
	canonical string
	match     func(lower string) bool
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var resultRules = []mapRule{
	{ColX, func(l string) bool {
		return l == "x" || l == "pos" || l == "distance" || strings.Contains(l, "x (m)")
	}},
	{ColShear, func(l string) bool {
		return strings.Contains(l, "shear")
	}},
	{ColMoment, func(l string) bool {
		return strings.Contains(l, "moment")
	}},
}

var loadRules = []mapRule{
	{ColPosition, func(l string) bool {
		return containsAny(l, "pos", "loc", "dist", "x (m)") && !strings.Contains(l, "shear")
	}},
	{ColLoad, func(l string) bool {
		return containsAny(l, "load", "force", "weight", "p (kn)") && !strings.Contains(l, "shear")
	}},
}

// isResultsTable reports whether the headers look like precomputed results
// rather than raw loads.
func isResultsTable(headers []string) bool {
	for _, h := range headers {
		l := strings.ToLower(h)
		if strings.Contains(l, "shear") || l == "v" {
			return true
		}
	}
	return false
}

// MapColumns renames recognizable headers to their canonical names in
// place and returns the applied renaming. A table matching neither rule
// set comes back unchanged; whether that is an error is the caller's call.
func (t *Table) MapColumns() map[string]string {
	rules := loadRules
	if isResultsTable(t.Headers) {
		rules = resultRules
	}

	mapping := make(map[string]string)
	mapped := make(map[int]bool)
	for _, rule := range rules {
		for i, h := range t.Headers {
			if mapped[i] {
				continue
			}
			if rule.match(strings.ToLower(h)) {
				mapping[h] = rule.canonical
				t.Headers[i] = rule.canonical
				mapped[i] = true
				break
			}
		}
	}

	if len(mapping) > 0 {
		log.Printf("column mapping applied: %v", mapping)
	}
	return mapping
}

// Mode inspects the mapped headers and picks the engine mode: results
// tables are plotted as-is, loads tables go through the statics solver.
func (t *Table) Mode() analysis.Mode {
	var hasShear, hasMoment bool
	for _, h := range t.Headers {
		l := strings.ToLower(h)
		if strings.Contains(l, "shear") {
			hasShear = true
		}
		if strings.Contains(l, "moment") {
			hasMoment = true
		}
	}
	if hasShear && hasMoment {
		return analysis.ModePlotOnly
	}
	return analysis.ModeCalculate
}

// Validate checks that the mapped headers resolve to one of the two
// supported schemas.
func (t *Table) Validate() error {
	hasLoadCols := t.Column(ColPosition) >= 0 && t.Column(ColLoad) >= 0
	hasResultCols := t.Column(ColShear) >= 0 && t.Column(ColMoment) >= 0
	if hasLoadCols || hasResultCols {
		return nil
	}
	return fmt.Errorf("columns not recognized: need [%s, %s] or [%s, %s, %s], found [%s]",
		ColPosition, ColLoad, ColX, ColShear, ColMoment, strings.Join(t.Headers, ", "))
}
