package domain

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToDecimal(t *testing.T) {
	var price pgtype.Numeric

	err := price.Scan("250.00")
	require.NoError(t, err)

	got := NumericToDecimal(price)
	assert.True(t, got.Equal(decimal.NewFromInt(250)), "got %s", got)
}

func TestNumericToDecimalInvalid(t *testing.T) {
	var price pgtype.Numeric

	got := NumericToDecimal(price)
	assert.True(t, got.IsZero())
}
