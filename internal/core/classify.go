package core

import (
	"fmt"
	"strings"
	"time"

	"wardview/pkg"
)

// Kind tags the outcome of classification. Aggregate answers and scope
// rejections are terminal; only augmented and plain queries reach the
// completion client.
type Kind int

const (
	// KindAggregateAnswer is a locally computed statistic sentence.
	KindAggregateAnswer Kind = iota
	// KindScopeRejection is a fixed guidance message, not an error.
	KindScopeRejection
	// KindAugmentedQuery is a prompt carrying one patient's context block.
	KindAugmentedQuery
	// KindPlainQuery is the instruction-only prompt, the default when no
	// other rule matches.
	KindPlainQuery
)

// Classification is the tagged result of routing a question. Text holds the
// answer or rejection message for terminal kinds, and the prompt for query
// kinds.
type Classification struct {
	Kind Kind
	Text string
}

// aggregateRule answers a general-mode question locally when its keyword
// appears in the question. Rules are checked in order and only the first
// match fires, so a question naming several keywords gets one answer.
type aggregateRule struct {
	keyword string
	answer  func(patients []pkg.Patient) string
}

var aggregateRules = []aggregateRule{
	{"diabetes", func(patients []pkg.Patient) string {
		return fmt.Sprintf("There are %d patients with diabetes.", countByCondition(patients, "diabetes"))
	}},
	{"critical", statusRule(pkg.StatusCritical)},
	{"warning", statusRule(pkg.StatusWarning)},
	{"stable", statusRule(pkg.StatusStable)},
}

func statusRule(status pkg.PatientStatus) func([]pkg.Patient) string {
	return func(patients []pkg.Patient) string {
		return fmt.Sprintf("There are %d patients in %s condition.", countByStatus(patients, status), status)
	}
}

// Classify routes a question to one of the four outcomes. patients is a
// read-only snapshot owned by the caller; patientID is empty in general chat
// mode. The classifier is pure: it never touches the network.
func Classify(question, patientID string, patients []pkg.Patient, now time.Time) Classification {
	q := strings.ToLower(question)

	if patientID == "" {
		for _, rule := range aggregateRules {
			if strings.Contains(q, rule.keyword) {
				return Classification{Kind: KindAggregateAnswer, Text: rule.answer(patients)}
			}
		}
		return Classification{Kind: KindScopeRejection, Text: GeneralScopeMessage}
	}

	patient, ok := lookup(patients, patientID)
	if !ok {
		// Unknown id degrades to the plain prompt. The assist service logs
		// this so the data-integrity gap stays visible to operators.
		return Classification{Kind: KindPlainQuery, Text: BuildPrompt(question)}
	}
	if first := firstName(patient.Name); first != "" && strings.Contains(q, strings.ToLower(first)) {
		return Classification{Kind: KindAugmentedQuery, Text: BuildPatientPrompt(question, patient, now)}
	}
	return Classification{Kind: KindScopeRejection, Text: PatientScopeMessage}
}

func lookup(patients []pkg.Patient, id string) (pkg.Patient, bool) {
	for _, p := range patients {
		if p.ID == id {
			return p, true
		}
	}
	return pkg.Patient{}, false
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// countByCondition counts patients having at least one condition whose name
// contains the substring, case-insensitively.
func countByCondition(patients []pkg.Patient, substring string) int {
	n := 0
	for _, p := range patients {
		for _, c := range p.Conditions {
			if strings.Contains(strings.ToLower(c.Name), substring) {
				n++
				break
			}
		}
	}
	return n
}

func countByStatus(patients []pkg.Patient, status pkg.PatientStatus) int {
	n := 0
	for _, p := range patients {
		if p.Status == status {
			n++
		}
	}
	return n
}
