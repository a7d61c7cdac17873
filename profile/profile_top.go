package profile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Top returns a flat rendering of the profile in the spirit of pprof's top
// command: one line per function, sorted by decreasing flat sample count.
//
// flat counts the samples whose leaf location is the function; cum counts
// the samples where the function appears anywhere in the stack.
func (p *Profile) Top() string {
	type entry struct {
		name      string
		flat, cum int64
	}

	byName := make(map[string]*entry)
	var total int64

	for _, s := range p.pprof.Sample {
		v := s.Value[0]
		total += v
		seen := make(map[string]bool)
		for i, loc := range s.Location {
			if len(loc.Line) == 0 || loc.Line[0].Function == nil {
				continue
			}
			f := loc.Line[0].Function
			name := fmt.Sprintf("%s %s:%d", f.Name, filepath.Base(f.Filename), loc.Line[0].Line)
			e, ok := byName[name]
			if !ok {
				e = &entry{name: name}
				byName[name] = e
			}
			if i == 0 {
				e.flat += v
			}
			if !seen[name] {
				e.cum += v
				seen[name] = true
			}
		}
	}

	entries := make([]*entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].flat != entries[j].flat {
			return entries[i].flat > entries[j].flat
		}
		return entries[i].name < entries[j].name
	})

	var sbb strings.Builder
	fmt.Fprintf(&sbb, "Showing nodes accounting for %d, %s of %d total\n", total, percent(total, total), total)
	sbb.WriteString("      flat  flat%   sum%        cum   cum%\n")
	var sum int64
	for _, e := range entries {
		sum += e.flat
		fmt.Fprintf(&sbb, "%10d %6s %6s %10d %6s  %s\n",
			e.flat, percent(e.flat, total), percent(sum, total), e.cum, percent(e.cum, total), e.name)
	}
	return sbb.String()
}

func percent(v, total int64) string {
	if total == 0 {
		return "0%"
	}
	p := 100 * float64(v) / float64(total)
	if p == 100 {
		return "100%"
	}
	return fmt.Sprintf("%.2f%%", p)
}
