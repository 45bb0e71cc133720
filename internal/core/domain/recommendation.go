package domain

// Severity classifies a recommendation for presentation styling downstream.
type Severity string

const (
	SeverityWarn Severity = "warn"
	SeverityGood Severity = "good"
	SeverityInfo Severity = "info"
)

// Recommendation is one advisory statement emitted by the rule engine.
// Ordering is significant: the engine emits rules in a fixed order and
// consumers must preserve it.
type Recommendation struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
