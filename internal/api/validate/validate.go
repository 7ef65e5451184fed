package validate

import (
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Present collects a "required" error for every blank field, given as
// name/value pairs. It returns nil when all are present.
func Present(pairs ...string) error {
	var errs Errs
	for i := 0; i+1 < len(pairs); i += 2 {
		if ef := Required(pairs[i], pairs[i+1]); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}
