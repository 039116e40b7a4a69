package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/warp/rental-engine/generic"
	"github.com/warp/rental-engine/rental"
)

// Outcome label values for rental_checkouts_total.
const (
	outcomeOK              = "ok"
	outcomeBadRequest      = "bad_request"
	outcomeInvalidDuration = "invalid_duration"
	outcomeInvalidDiscount = "invalid_discount"
	outcomeUnknownTool     = "unknown_tool"
	outcomeInvalidDate     = "invalid_date"
	outcomeError           = "error"
)

// toolLabelUnknown replaces tool codes outside the catalog to bound label cardinality.
const toolLabelUnknown = "unknown"

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by tool code and outcome.",
	}, []string{"tool_code", "outcome"})

	chargeDays = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rental",
		Name:      "charge_days",
		Help:      "Chargeable days per successful checkout.",
		Buckets:   []float64{0, 1, 2, 3, 5, 7, 14, 30, 60},
	}, []string{"tool_code"})

	finalChargeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental",
		Name:      "final_charge_dollars_total",
		Help:      "Sum of final charges billed, in dollars.",
	}, []string{"tool_code"})
)

func toolLabel(code string) string {
	if _, err := rental.LookupTool(code); err != nil {
		return toolLabelUnknown
	}
	return code
}

func checkoutOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, rental.ErrInvalidDuration):
		return outcomeInvalidDuration
	case errors.Is(err, rental.ErrInvalidDiscount):
		return outcomeInvalidDiscount
	case errors.Is(err, rental.ErrUnknownTool):
		return outcomeUnknownTool
	case errors.Is(err, generic.ErrInvalidDate):
		return outcomeInvalidDate
	default:
		return outcomeError
	}
}

func observeCheckout(code string, a rental.RentalAgreement, err error) {
	label := toolLabel(code)
	checkoutsTotal.WithLabelValues(label, checkoutOutcome(err)).Inc()
	if err != nil {
		return
	}
	chargeDays.WithLabelValues(label).Observe(float64(a.ChargeDays))
	finalChargeTotal.WithLabelValues(label).Add(a.FinalCharge.Value.InexactFloat64())
}
