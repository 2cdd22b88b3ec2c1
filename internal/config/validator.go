package config

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
	"github.com/alexisbeaulieu97/stylekit/pkg/style"
	"github.com/alexisbeaulieu97/stylekit/pkg/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_slot", func(fl validator.FieldLevel) bool {
			_, ok := theme.LookupSlot(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("chain_expr", func(fl validator.FieldLevel) bool {
			_, err := style.Compile(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument performs schema and cross-field validation. Every problem
// found is reported; the result combines them with multierr.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return apperrors.NewValidationError("document", "theme document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationErrors(err)
	}

	var errs error
	seen := make(map[string]int, len(doc.Components))
	for i, c := range doc.Components {
		if first, dup := seen[c.Name]; dup {
			errs = multierr.Append(errs, apperrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component name %q (first defined at components[%d])", c.Name, first),
				nil,
			))
			continue
		}
		seen[c.Name] = i

		for _, name := range sortedSlotNames(c.Slots) {
			if n := c.Slots[name].sources(); n != 1 {
				errs = multierr.Append(errs, apperrors.NewValidationError(
					fieldForSlot(i, name),
					fmt.Sprintf("expected exactly one of chain, literal, int, height or width, got %d", n),
					nil,
				))
			}
		}
	}

	return errs
}

func sortedSlotNames(slots map[string]SlotValue) []string {
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
