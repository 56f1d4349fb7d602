// Package form describes input fields declaratively and validates values
// against them before anything is sent to the server.
package form

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Kind is the input kind of a text field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindFile     Kind = "file"
)

// DateLayout is the accepted format of date fields.
const DateLayout = "2006-01-02"

// Base holds what every field has.
type Base struct {
	Name     string
	Label    string
	Required bool
}

func (b Base) base() Base { return b }

// Field is one of TextField, SelectField or FileField.
type Field interface {
	base() Base
	kind() Kind
}

// TextField is a free-text input. Kind is text, email, password or date.
type TextField struct {
	Base
	Kind      Kind
	MaxLength int
}

func (f TextField) kind() Kind {
	if f.Kind == "" {
		return KindText
	}
	return f.Kind
}

// Option is one choice of a SelectField.
type Option struct {
	Value string
	Label string
}

type SelectField struct {
	Base
	Options []Option
}

func (SelectField) kind() Kind { return KindSelect }

// FileField accepts one or more files. Accept lists MIME types; MaxBytes
// bounds each file. Zero values disable the check.
type FileField struct {
	Base
	Accept   []string
	MaxBytes int64
	Multiple bool
}

func (FileField) kind() Kind { return KindFile }

// NameOf returns the name of f.
func NameOf(f Field) string { return f.base().Name }

// KindOf returns the input kind of f.
func KindOf(f Field) Kind { return f.kind() }

func labelOf(f Field) string {
	b := f.base()
	if b.Label != "" {
		return b.Label
	}
	return b.Name
}

// Describe writes one line per field: name, kind, constraints.
func Describe(w io.Writer, fields []Field) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		var notes []string
		if f.base().Required {
			notes = append(notes, "required")
		}
		switch f := f.(type) {
		case TextField:
			if f.MaxLength > 0 {
				notes = append(notes, fmt.Sprintf("max %d chars", f.MaxLength))
			}
			if f.kind() == KindDate {
				notes = append(notes, "YYYY-MM-DD")
			}
		case SelectField:
			values := make([]string, len(f.Options))
			for i, o := range f.Options {
				values[i] = o.Value
			}
			notes = append(notes, "one of "+strings.Join(values, "|"))
		case FileField:
			if len(f.Accept) > 0 {
				notes = append(notes, strings.Join(f.Accept, ","))
			}
			if f.MaxBytes > 0 {
				notes = append(notes, fmt.Sprintf("max %d bytes", f.MaxBytes))
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", labelOf(f), f.kind(), strings.Join(notes, ", "))
	}
	return tw.Flush()
}
