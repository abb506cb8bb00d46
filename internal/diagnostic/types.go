package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// DiagnosticSeverity ranks a finding. Only DiagnosticError makes a mapping file unusable.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding about a mapping file.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a stable snake_case identifier, e.g. "duplicate_from".
	Code    string
	Message string
	// Location points into the mapping file, e.g. "mappings[3]". Empty for file-level findings.
	Location string
}

func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Location == "" {
		return msg
	}

	return d.Location + ": " + msg
}

// Diagnostics collects findings bucketed by severity, each bucket in insertion order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) AddError(code, message, location string) {
	d.add(DiagnosticError, code, message, location)
}

func (d *Diagnostics) AddWarning(code, message, location string) {
	d.add(DiagnosticWarning, code, message, location)
}

func (d *Diagnostics) AddInfo(code, message, location string) {
	d.add(DiagnosticInfo, code, message, location)
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, location string) {
	diag := Diagnostic{Severity: sev, Code: code, Message: message, Location: location}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) != 0
}

// IsValid is the negation of HasErrors; warnings and infos never invalidate.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// All flattens the buckets, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	for _, bucket := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		out = append(out, bucket...)
	}

	return out
}

// Error joins the error-severity findings with "; ". It returns nil when there are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}
