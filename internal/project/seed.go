package project

import "github.com/gabe/scrub/internal/timeline"

// DefaultDuration is the mock procedure length used when no phases exist yet,
// in seconds.
const DefaultDuration = 2100.0

// Seed returns the mock case the console starts with. State is mock by
// design; nothing survives a restart.
func Seed() State {
	phases := []timeline.Interval{
		timeline.NewInterval("Pre-Op", 0, 300, "#94a3b8"),
		timeline.NewInterval("Intra-Op", 300, 1800, "#3b82f6"),
		timeline.NewInterval("Post-Op", 1800, 2100, "#22c55e"),
	}

	instruments := []timeline.Interval{
		timeline.NewInterval("Scalpel", 120, 180, "#a855f7"),
		timeline.NewInterval("Bipolar Forceps", 300, 600, "#ec4899"),
		timeline.NewInterval("Harmonic Scalpel", 650, 850, "#8b5cf6"),
		timeline.NewInterval("Stapler", 1000, 1100, "#14b8a6"),
		timeline.NewInterval("Suction", 1500, 1700, "#06b6d4"),
		timeline.NewInterval("Suture", 1800, 2050, "#6366f1"),
	}
	for i := range instruments {
		instruments[i].Track = i
	}

	return State{
		Phases:      phases,
		Instruments: instruments,
		Case: CaseDetails{
			ID:        "SAS-2024-0117",
			Procedure: "Laparoscopic Cholecystectomy",
			Surgeon:   "Dr. A. Moreau",
			Date:      "2024-11-17",
			Facility:  "St. Vincent Teaching Hospital",
		},
	}
}
