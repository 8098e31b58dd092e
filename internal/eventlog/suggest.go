package eventlog

// suggestions per procedure phase, offered while typing an event label
var suggestedEvents = map[Category][]string{
	CategoryPreOp: {
		"Instrument Preparation", "Patient Arrival", "Pre-op Checklist Completed",
		"Consent Verified", "Vitals Baseline Taken", "Site Marked",
		"Anesthesia Assessment", "IV Access Established", "Antibiotic Prophylaxis Administered",
		"Sterile Field Prepped", "Timeout Initiated",
	},
	CategoryIntraOp: {
		"Incision Start", "First Instrument Passed", "Device Use",
		"Dissection / Exposure", "Tissue Handling", "Hemostasis Achieved",
		"Instrument Pass", "Device Implantation / Intervention", "Intra-op Complication Logged",
		"Specimen Retrieved", "Wound Closure Started", "Final Count Performed",
		"Drapes Removed", "Incision Closure Completed",
	},
	CategoryPostOp: {
		"Surgical Dressing Applied", "Patient Transferred to Gurney",
		"PACU Arrival", "Post-op Orders Issued", "Surgical Reports Finalized",
	},
}

// follow-up suggestions keyed off the most recent committed label
var nextSteps = map[string][]string{
	"Incision Start":         {"Retractor Placement", "Cautery Use", "Suction"},
	"Retractor Placement":    {"Dissection / Exposure", "Tissue Handling"},
	"Dissection / Exposure":  {"Hemostasis Achieved", "Instrument Pass"},
	"Hemostasis Achieved":    {"Irrigation", "Suture Placement"},
	"Instrument Pass":        {"Device Use", "Tissue Handling"},
	"Device Use":             {"Instrument Pass", "Hemostasis Achieved"},
}

// Suggestions returns the label suggestions for a procedure phase
func Suggestions(cat Category) []string {
	return suggestedEvents[cat]
}

// NextSteps suggests follow-up labels based on the last committed event.
// Empty when the log is empty or the last label has no known successors.
func NextSteps(committed []Event) []string {
	if len(committed) == 0 {
		return nil
	}
	return nextSteps[committed[len(committed)-1].Label]
}
