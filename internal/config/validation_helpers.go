package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

// convertValidationErrors turns validator errors into ValidationErrors, one
// per failing field.
func convertValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return apperrors.NewValidationError("document", err.Error(), err)
	}

	var out error
	for _, fe := range ves {
		field := yamlishFieldName(fe)
		out = multierr.Append(out, apperrors.NewValidationError(field, describe(fe, field), fe))
	}
	return out
}

func describe(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "theme_slot":
		return fmt.Sprintf("unknown theme slot %q", fe.Value())
	case "chain_expr":
		expr, _ := fe.Value().(string)
		if _, err := style.Compile(expr); err != nil {
			return err.Error()
		}
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
}

// yamlishFieldName renders "Document.Components[0].Slots[Margin]" as
// "components[0].slots[Margin]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		head, rest, found := strings.Cut(part, "[")
		if found {
			parts[i] = strings.ToLower(head) + "[" + rest
		} else {
			parts[i] = strings.ToLower(part)
		}
	}
	return strings.Join(parts, ".")
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}

func fieldForSlot(index int, slot string) string {
	return fmt.Sprintf("components[%d].slots[%s]", index, slot)
}
