package renal

import "log/slog"

// DiagnosticCode classifies a non-fatal advisory condition.
type DiagnosticCode string

const (
	// DiagUnitAssumed: no creatinine unit was supplied; mg/dL was assumed.
	DiagUnitAssumed DiagnosticCode = "creatinine_unit_assumed"

	// DiagSchwartzAgeUnder1: the revised Schwartz constant (0.413) was
	// applied to a patient under one year of age.
	DiagSchwartzAgeUnder1 DiagnosticCode = "schwartz_revised_age_under_1"

	// DiagJelliffeFloored: an unstable-Jelliffe result fell below 1 mL/min
	// and was floored. A data-quality signal, not an error.
	DiagJelliffeFloored DiagnosticCode = "jelliffe_unstable_floored"
)

// Diagnostic is a structured advisory returned alongside the result.
// Index is the creatinine observation it refers to, or -1 when the
// advisory applies to the whole call.
type Diagnostic struct {
	Code    DiagnosticCode
	Index   int
	Message string
}

// log emits the diagnostics through slog when verbose mode is on.
func logDiagnostics(logger *slog.Logger, method Method, diags []Diagnostic) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, d := range diags {
		logger.Warn(d.Message,
			"method", method.String(),
			"code", string(d.Code),
			"index", d.Index,
		)
	}
}
