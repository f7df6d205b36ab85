package fleet

// Severity values come straight from the upstream event catalogue and are
// part of the wire contract with the dashboard, hence the Portuguese names.
type Severity string

const (
	SeverityCritical Severity = "critico"
	SeverityHigh     Severity = "alto"
	SeverityMedium   Severity = "medio"
	SeverityInfo     Severity = "info"
)
