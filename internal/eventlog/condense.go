package eventlog

import "sort"

// CondenseGap is the maximum silence between two occurrences that still
// merges them into one group, in seconds.
const CondenseGap = 600.0

// Group is one row of the condensed view: a run of same-label, same-type
// events whose gaps never exceeded CondenseGap.
type Group struct {
	Event
	LastEnd       float64
	TotalDuration float64
	Count         int
}

// Condense merges consecutive near-duplicate events into groups. It sorts by
// start time first, so the result is invariant to input order, and it is
// idempotent: condensing a list that only produces singleton groups returns
// the same events. Pure function, read-only view.
func Condense(events []Event) []Group {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var groups []Group
	cur := newGroup(sorted[0])

	for _, ev := range sorted[1:] {
		same := ev.Label == cur.Label && ev.Type == cur.Type
		close := ev.Start-cur.LastEnd <= CondenseGap

		if same && close {
			cur.LastEnd = ev.End
			cur.TotalDuration += ev.End - ev.Start
			cur.Count++
		} else {
			groups = append(groups, cur)
			cur = newGroup(ev)
		}
	}
	return append(groups, cur)
}

func newGroup(ev Event) Group {
	return Group{
		Event:         ev,
		LastEnd:       ev.End,
		TotalDuration: ev.End - ev.Start,
		Count:         1,
	}
}
