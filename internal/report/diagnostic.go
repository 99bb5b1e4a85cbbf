package report

import (
	"fmt"
	"go/token"
)

// Span is a source range. Lines and columns are 1-based, columns count bytes.
type Span struct {
	File        string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// SpanOf converts a [pos, end) token range into a Span.
func SpanOf(fset *token.FileSet, pos, end token.Pos) Span {
	start := fset.Position(pos)
	stop := fset.Position(end)
	return Span{
		File:        start.Filename,
		StartLine:   start.Line,
		StartColumn: start.Column,
		EndLine:     stop.Line,
		EndColumn:   stop.Column,
	}
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.StartLine, s.StartColumn, s.EndLine, s.EndColumn)
}

// Diagnostic is a single rule violation found at an assignment.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Span     Span

	// Symbol is the name of the assigned field.
	Symbol string

	// Pos and End are the token range of the assignment within the analyzed file set.
	Pos token.Pos
	End token.Pos
}

func (d Diagnostic) String() string {
	return fmt.Sprintf(
		"%s:%d:%d: %s %s: %s",
		d.Span.File,
		d.Span.StartLine,
		d.Span.StartColumn,
		d.Severity,
		d.RuleID,
		d.Message,
	)
}
