package eventlog

import "strings"

// macroSpacing is the stride between synthesized events, in seconds
const macroSpacing = 5.0

// Macro is a named ordered list of event labels that can be replayed as a
// burst of committed events.
type Macro struct {
	Name   string   `json:"name"`
	Labels []string `json:"events"`
}

// ParseMacro builds a macro from a comma-separated label list
func ParseMacro(name, labels string) (Macro, bool) {
	if name == "" || strings.TrimSpace(labels) == "" {
		return Macro{}, false
	}
	var parsed []string
	for _, l := range strings.Split(labels, ",") {
		if l = strings.TrimSpace(l); l != "" {
			parsed = append(parsed, l)
		}
	}
	if len(parsed) == 0 {
		return Macro{}, false
	}
	return Macro{Name: name, Labels: parsed}, true
}

// Run synthesizes one committed event per label, spaced 5 seconds apart from
// currentTime, each 5 seconds long and auto-marked successful. Macros bypass
// the recorder's validate/confirm flow entirely.
func (m Macro) Run(currentTime float64, cat Category, staff, location string) []Event {
	events := make([]Event, 0, len(m.Labels))
	for i, label := range m.Labels {
		start := currentTime + float64(i)*macroSpacing
		ev := NewEvent(label, TypeMilestone, cat, start, start+macroSpacing)
		ev.Staff = staff
		ev.Location = location
		ev.Outcome = OutcomeSuccessful
		events = append(events, ev)
	}
	return events
}

// DefaultMacros is the personal library seeded at startup
func DefaultMacros() []Macro {
	return []Macro{
		{Name: "Hernia Repair", Labels: []string{"Incision", "Dissection", "Mesh Placement", "Closure"}},
		{Name: "Appendectomy", Labels: []string{"Port Placement", "Appendix Identification", "Stapling", "Retrieval"}},
	}
}

// TeamMacros is the shared library seeded at startup
func TeamMacros() []Macro {
	return []Macro{
		{Name: "Standard Cholecystectomy", Labels: []string{"Port Entry", "Cystic Duct Clip", "Cystic Artery Clip", "Gallbladder Removal"}},
		{Name: "Trauma Laparotomy", Labels: []string{"Midline Incision", "Packing", "Exploration", "Damage Control"}},
	}
}
