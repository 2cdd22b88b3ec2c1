package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.toml", 0, stdErrors.New("bad table"))
	require.Equal(t, "parse error: theme.toml: bad table", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].slots.Colour", "unknown slot", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].slots.Colour", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown slot")
	require.Contains(t, err.Error(), "components[1].slots.Colour")
}

func TestExpressionErrorIncludesColumn(t *testing.T) {
	t.Parallel()

	err := NewExpressionError("Margin.S9", 8, "unknown call \"S9\"")

	var exprErr *ExpressionError
	require.ErrorAs(t, err, &exprErr)
	require.Equal(t, 8, exprErr.Column)
	require.Contains(t, err.Error(), "Margin.S9")
	require.Contains(t, err.Error(), ":8:")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var exprErr *ExpressionError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, exprErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
