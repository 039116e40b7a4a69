package rental_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rental-engine/generic"
	"github.com/warp/rental-engine/rental"
)

func ladderAgreement(t *testing.T) rental.RentalAgreement {
	t.Helper()
	tool, err := rental.LookupTool("LADW")
	require.NoError(t, err)

	return rental.RentalAgreement{
		Tool:              tool,
		RentalDays:        5,
		CheckoutDate:      generic.NewTimePoint(2023, time.June, 15),
		DueDate:           generic.NewTimePoint(2023, time.June, 20),
		DailyCharge:       generic.MustParseMoney("1.99"),
		ChargeDays:        5,
		PreDiscountCharge: generic.MustParseMoney("9.95"),
		DiscountPercent:   10,
		DiscountAmount:    generic.MustParseMoney("1.0"),
		FinalCharge:       generic.MustParseMoney("8.95"),
	}
}

const renderedLadderAgreement = `Tool code: LADW
Tool type: Ladder
Tool brand: Werner
Rental days: 5
Check out date: 06/15/23
Due date: 06/20/23
Daily rental charge: $1.99
Charge days: 5
Pre-discount charge: $9.95
Discount percent: 10%
Discount amount: $1.00
Final charge: $8.95`

func TestRentalAgreement_String(t *testing.T) {
	assert.Equal(t, renderedLadderAgreement, ladderAgreement(t).String())
}

func TestRentalAgreement_Print(t *testing.T) {
	var buf bytes.Buffer

	err := ladderAgreement(t).Print(&buf)

	require.NoError(t, err)
	assert.Equal(t, renderedLadderAgreement+"\n", buf.String())
}

func TestRentalAgreement_Lines_FieldOrder(t *testing.T) {
	lines := ladderAgreement(t).Lines()

	require.Len(t, lines, 12)
	assert.Equal(t, "Tool code: LADW", lines[0])
	assert.Equal(t, "Final charge: $8.95", lines[11])
}

func TestRentalAgreement_String_FromCheckout(t *testing.T) {
	a, err := rental.Checkout("JAKR", 4, 50, "7/2/20")
	require.NoError(t, err)

	assert.Equal(t, `Tool code: JAKR
Tool type: Jackhammer
Tool brand: Ridgid
Rental days: 4
Check out date: 07/02/20
Due date: 07/06/20
Daily rental charge: $2.99
Charge days: 1
Pre-discount charge: $2.99
Discount percent: 50%
Discount amount: $1.50
Final charge: $1.49`, a.String())
}

func TestRentalAgreement_String_ZeroPercent(t *testing.T) {
	a, err := rental.Checkout("JAKD", 6, 0, "9/3/15")
	require.NoError(t, err)

	assert.Contains(t, a.String(), "Discount percent: 0%\n")
	assert.Contains(t, a.String(), "Discount amount: $0.00\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRentalAgreement_Print_WriterError(t *testing.T) {
	err := ladderAgreement(t).Print(failingWriter{})
	assert.EqualError(t, err, "closed")
}
