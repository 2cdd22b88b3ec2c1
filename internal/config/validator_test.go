package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func intPtr(n int) *int { return &n }

func validDocument() *Document {
	return &Document{
		Version: "1.0.0",
		Name:    "default",
		Components: []Component{
			{
				Name:     "link",
				Selector: "a",
				Slots: map[string]SlotValue{
					"TextDecoration": {Chain: "TextDecoration.Underline"},
					"ZIndex":         {Int: intPtr(1)},
				},
			},
		},
	}
}

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(doc *Document)
		fields []string
	}{
		{
			name:   "valid",
			mutate: func(*Document) {},
		},
		{
			name:   "bad version",
			mutate: func(doc *Document) { doc.Version = "beta" },
			fields: []string{"version"},
		},
		{
			name:   "bad component name",
			mutate: func(doc *Document) { doc.Components[0].Name = "Link Style" },
			fields: []string{"components[0].name"},
		},
		{
			name: "unknown slot",
			mutate: func(doc *Document) {
				doc.Components[0].Slots["Colour"] = SlotValue{Literal: "red"}
			},
			fields: []string{"components[0].slots[Colour]"},
		},
		{
			name: "bad chain",
			mutate: func(doc *Document) {
				doc.Components[0].Slots["Margin"] = SlotValue{Chain: "Margin.S9"}
			},
			fields: []string{"components[0].slots[Margin].chain"},
		},
		{
			name: "no source and two sources",
			mutate: func(doc *Document) {
				doc.Components[0].Slots["Gap"] = SlotValue{}
				doc.Components[0].Slots["Width"] = SlotValue{Literal: "1rem", Width: intPtr(3)}
			},
			fields: []string{"components[0].slots[Gap]", "components[0].slots[Width]"},
		},
		{
			name: "duplicate component",
			mutate: func(doc *Document) {
				doc.Components = append(doc.Components, doc.Components[0])
			},
			fields: []string{"components[1].name"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validDocument()
			tc.mutate(doc)
			err := ValidateDocument(doc)
			if len(tc.fields) == 0 {
				require.NoError(t, err)
				return
			}

			errs := multierr.Errors(err)
			require.Len(t, errs, len(tc.fields))
			for i, e := range errs {
				valErr, ok := e.(*apperrors.ValidationError)
				require.True(t, ok, "unexpected error type %T", e)
				assert.Equal(t, tc.fields[i], valErr.Field)
			}
		})
	}
}

func TestChainErrorMessageIsSpecific(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Components[0].Slots["Margin"] = SlotValue{Chain: "Margin.S3.Sideways"}

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sideways")
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, ValidateDocument(nil), &valErr)
}
