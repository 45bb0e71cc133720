package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/core/planning"
)

func TestFutureValue(t *testing.T) {
	rate := decimal.NewFromInt(6)

	t.Run("compounds annually", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(10000), rate, 10)
		assert.Equal(t, "17908.48", fv.Round(2).StringFixed(2))
	})

	t.Run("one year is a single compounding step", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(1000), rate, 1)
		assert.True(t, fv.Equal(decimal.NewFromInt(1060)), "got %s", fv)
	})

	t.Run("zero present value yields zero", func(t *testing.T) {
		fv := planning.FutureValue(decimal.Zero, rate, 10)
		assert.True(t, fv.IsZero())
	})

	t.Run("negative present value yields zero", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(-500), rate, 10)
		assert.True(t, fv.IsZero())
	})

	t.Run("zero horizon yields zero", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(10000), rate, 0)
		assert.True(t, fv.IsZero())
	})

	t.Run("negative horizon yields zero", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(10000), rate, -3)
		assert.True(t, fv.IsZero())
	})

	t.Run("zero rate keeps present value", func(t *testing.T) {
		fv := planning.FutureValue(decimal.NewFromInt(10000), decimal.Zero, 10)
		assert.True(t, fv.Equal(decimal.NewFromInt(10000)), "got %s", fv)
	})
}
