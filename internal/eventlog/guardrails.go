package eventlog

import "strings"

// Validate checks a candidate label against the committed history using the
// surgical ordering rules. The returned message is empty when the candidate
// passes. Violations are soft: the operator may override and commit anyway.
func Validate(label string, cat Category, committed []Event) string {
	hasPrior := func(substr ...string) bool {
		for _, ev := range committed {
			for _, s := range substr {
				if strings.Contains(ev.Label, s) {
					return true
				}
			}
		}
		return false
	}

	if strings.Contains(label, "Closure") && !hasPrior("Incision") {
		return "You are attempting to log 'Closure' but no 'Incision' event has been recorded."
	}

	if strings.Contains(label, "Removal") && !hasPrior("Identification", "Dissection") {
		return "Specimen removal logged without prior identification or dissection."
	}

	if cat == CategoryIntraOp && (strings.Contains(label, "Recovery") || strings.Contains(label, "Discharge")) {
		return "Post-operative events should not be logged during the Intra-Op phase."
	}

	return ""
}
