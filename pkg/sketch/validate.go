package sketch

import "fmt"

// Severity says whether an Issue blocks use of the sketch.
type Severity int

const (
	Blocking Severity = iota
	Advisory
)

func (s Severity) String() string {
	if s == Advisory {
		return "warning"
	}
	return "error"
}

// Issue is one validation finding. EntityID is empty for findings about
// the sketch as a whole.
type Issue struct {
	EntityID EntityID `json:"entityId,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"-"`
}

func (i Issue) Error() string {
	if i.EntityID == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.EntityID, i.Message)
}

// Report splits findings into blocking errors and advisory warnings.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether nothing blocks use of the sketch.
func (r Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) add(issues ...Issue) {
	for _, is := range issues {
		if is.Severity == Advisory {
			r.Warnings = append(r.Warnings, is)
		} else {
			r.Errors = append(r.Errors, is)
		}
	}
}

// Validate checks that every entity is addressable: each has an ID and
// no ID repeats. It never mutates the sketch.
func Validate(s *Sketch) []Issue {
	var issues []Issue
	firstUse := make(map[EntityID]int)

	for i, e := range s.Entities() {
		id := e.EntityID()
		switch prev, dup := firstUse[id]; {
		case id == "":
			issues = append(issues, Issue{
				Message: fmt.Sprintf("%s at index %d has no ID", e.Kind(), i),
			})
		case dup:
			issues = append(issues, Issue{
				EntityID: id,
				Message:  fmt.Sprintf("duplicate ID: already used by entity at index %d", prev),
			})
		default:
			firstUse[id] = i
		}
	}
	return issues
}

// ValidateAll runs the structural, geometric and advisory checks.
func ValidateAll(s *Sketch) Report {
	var r Report
	r.add(Validate(s)...)
	r.add(validateGeometry(s)...)
	r.add(validateDegenerate(s)...)
	return r
}
