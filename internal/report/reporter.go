package report

import (
	"fmt"
	"io"
	"sync"
)

// Reporter collects diagnostics in the order they were reported.
// The zero value is ready to use.
type Reporter struct {
	mu      sync.Mutex
	reports []Diagnostic
	hooks   []func(Diagnostic)
}

// OnDiagnostic registers a hook called once for every diagnostic reported after
// the registration. Hooks run in registration order while the reporter is locked,
// so they must not call back into the reporter.
func (r *Reporter) OnDiagnostic(hook func(Diagnostic)) {
	r.mu.Lock()
	r.hooks = append(r.hooks, hook)
	r.mu.Unlock()
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, d)
	for _, hook := range r.hooks {
		hook(d)
	}
}

// Diagnostics returns a snapshot of all collected records.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// HasErrors checks if there is at least one record with error severity.
func (r *Reporter) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.reports {
		if d.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// PrintSummary prints all collected reports in a compact, human-readable form.
func (r *Reporter) PrintSummary(w io.Writer) error {
	for _, d := range r.Diagnostics() {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return fmt.Errorf("print diagnostic: %w", err)
		}
	}

	return nil
}
