package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/rental-engine/generic"
)

func TestMoney_Round_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.125", "0.13"},
		{"1.1175", "1.12"},
		{"1.495", "1.50"},
		{"0.398", "0.40"},
		{"0.124999", "0.12"},
		{"2.005", "2.01"},
		{"5", "5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, generic.MustParseMoney(tt.in).Round().Fixed())
		})
	}
}

func TestMoney_Percent(t *testing.T) {
	pre := generic.MustParseMoney("3.98")

	assert.Equal(t, "0.398", pre.Percent(10).Value.String())
	assert.Equal(t, "0.40", pre.Percent(10).Round().Fixed())
	assert.True(t, pre.Percent(0).IsZero())
	assert.True(t, pre.Percent(100).Equal(pre))
}

func TestMoney_Arithmetic(t *testing.T) {
	daily := generic.MustParseMoney("1.99")

	assert.Equal(t, "5.97", daily.MulInt(3).Fixed())
	assert.Equal(t, "3.98", daily.Add(daily).Fixed())
	assert.Equal(t, "0.00", daily.Sub(daily).Fixed())
	assert.True(t, generic.ZeroMoney().LessThan(daily))
	assert.True(t, generic.NewMoneyFromCents(199).Equal(daily))
	assert.True(t, generic.NewMoney(decimal.NewFromInt(2)).Equal(generic.MustParseMoney("2.00")))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$1.99", generic.MustParseMoney("1.99").String())
	assert.Equal(t, "$1.00", generic.MustParseMoney("1.0").String())
	assert.Equal(t, "$0.00", generic.ZeroMoney().String())
	assert.Equal(t, "$1234.50", generic.MustParseMoney("1234.5").String())
	assert.Equal(t, "-$0.40", generic.MustParseMoney("-0.4").String())
}

func TestMustParseMoney_PanicsOnBadLiteral(t *testing.T) {
	assert.Equal(t, "$14.95", generic.MustParseMoney("14.95").String())
	assert.Panics(t, func() { generic.MustParseMoney("14,95") })
}
