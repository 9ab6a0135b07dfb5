package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPricing(t *testing.T) {
	t.Run("two tests no consultation", func(t *testing.T) {
		pricing := buildPricing(350, 0)
		assert.InDelta(t, 350.0, pricing.Subtotal, 1e-9)
		assert.InDelta(t, 63.0, pricing.GSTOnTests, 1e-9)
		assert.InDelta(t, 0.0, pricing.ConsultationFee, 1e-9)
		assert.InDelta(t, 0.0, pricing.GSTOnConsultation, 1e-9)
		assert.InDelta(t, 413.0, pricing.Total, 1e-9)
	})

	t.Run("tests plus consultation taxed independently", func(t *testing.T) {
		pricing := buildPricing(1000, 500)
		assert.InDelta(t, 180.0, pricing.GSTOnTests, 1e-9)
		assert.InDelta(t, 90.0, pricing.GSTOnConsultation, 1e-9)
		assert.InDelta(t, 1000+180+500+90, pricing.Total, 1e-9)
	})

	t.Run("empty order", func(t *testing.T) {
		pricing := buildPricing(0, 0)
		assert.InDelta(t, 0.0, pricing.Total, 1e-9)
	})
}

func TestFormatBookingID(t *testing.T) {
	assert.Equal(t, "DIA-0001", formatBookingID("diagnostic", 1))
	assert.Equal(t, "DIA-0042", formatBookingID("diagnostic", 42))
	assert.Equal(t, "DoctorBookingId_0007", formatBookingID("doctor", 7))
	assert.Equal(t, "DIA-10000", formatBookingID("diagnostic", 10000))
}

func TestParseBookingSequence(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		assert.Equal(t, int64(7), ParseBookingSequence("diagnostic", "DIA-0007"))
		assert.Equal(t, int64(123), ParseBookingSequence("doctor", "DoctorBookingId_0123"))
	})

	t.Run("ids wider than the padding keep every digit", func(t *testing.T) {
		assert.Equal(t, int64(10000), ParseBookingSequence("diagnostic", "DIA-10000"))
	})

	t.Run("empty id starts at zero", func(t *testing.T) {
		assert.Equal(t, int64(0), ParseBookingSequence("diagnostic", ""))
	})

	t.Run("malformed id falls back to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), ParseBookingSequence("diagnostic", "BOOKING-12"))
		assert.Equal(t, int64(0), ParseBookingSequence("doctor", "DIA-0005"))
	})
}

func TestEarmarkFor(t *testing.T) {
	assert.Equal(t, "forDoctors", earmarkFor("doctor", ""))
	assert.Equal(t, "forPackages", earmarkFor("diagnostic", "pkg-1"))
	assert.Equal(t, "forTests", earmarkFor("diagnostic", ""))
}

func TestApplyDiscount(t *testing.T) {
	assert.InDelta(t, 700.0, applyDiscount(800, 100), 1e-9)
	assert.InDelta(t, 800.0, applyDiscount(800, 0), 1e-9)
	assert.InDelta(t, 0.0, applyDiscount(100, 500), 1e-9)
}
