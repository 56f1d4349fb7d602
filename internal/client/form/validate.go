package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError names the first field that failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks values against fields in order and returns the first
// failure as a *ValidationError. It never talks to the server.
func Validate(fields []Field, values Values) error {
	for _, f := range fields {
		var msg string
		switch f := f.(type) {
		case TextField:
			msg = checkText(f, values.Get(f.Name))
		case SelectField:
			msg = checkSelect(f, values.Get(f.Name))
		case FileField:
			msg = checkFiles(f, values.Files(f.Name))
		}
		if msg != "" {
			return &ValidationError{Field: NameOf(f), Message: msg}
		}
	}
	return nil
}

func checkText(f TextField, s string) string {
	label := labelOf(f)
	if strings.TrimSpace(s) == "" {
		if f.Required {
			return label + " is required"
		}
		return ""
	}
	if f.MaxLength > 0 && validate.Var(s, fmt.Sprintf("max=%d", f.MaxLength)) != nil {
		return fmt.Sprintf("%s must be at most %d characters", label, f.MaxLength)
	}
	switch f.kind() {
	case KindEmail:
		if validate.Var(s, "email") != nil {
			return label + " must be a valid email address"
		}
	case KindDate:
		if validate.Var(s, "datetime="+DateLayout) != nil {
			return label + " must be a date (YYYY-MM-DD)"
		}
	}
	return ""
}

func checkSelect(f SelectField, s string) string {
	label := labelOf(f)
	if s == "" {
		if f.Required {
			return label + " is required"
		}
		return ""
	}
	for _, o := range f.Options {
		if o.Value == s {
			return ""
		}
	}
	values := make([]string, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return fmt.Sprintf("%s must be one of %s", label, strings.Join(values, ", "))
}

func checkFiles(f FileField, files []File) string {
	label := labelOf(f)
	if len(files) == 0 {
		if f.Required {
			return label + " is required"
		}
		return ""
	}
	if !f.Multiple && len(files) > 1 {
		return label + " accepts a single file"
	}
	for _, file := range files {
		if f.MaxBytes > 0 && int64(len(file.Data)) > f.MaxBytes {
			return fmt.Sprintf("%s: %s exceeds %d bytes", label, file.Name, f.MaxBytes)
		}
		if len(f.Accept) > 0 && !accepted(file.Data, f.Accept) {
			return fmt.Sprintf("%s: %s must be one of %s", label, file.Name, strings.Join(f.Accept, ", "))
		}
	}
	return ""
}

// accepted sniffs data; the declared content type of a file is not trusted.
func accepted(data []byte, types []string) bool {
	detected := mimetype.Detect(data)
	for _, t := range types {
		if detected.Is(t) {
			return true
		}
	}
	return false
}

// DetectContentType returns the sniffed MIME type of data without parameters.
func DetectContentType(data []byte) string {
	mt, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(mt)
}
