package bookings

import (
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"strings"
)

// buildPricing computes the GST breakdown. GST is 18% of the test subtotal
// and, independently, 18% of the consultation fee.
func buildPricing(subtotal, consultationFee float64) models.Pricing {
	gstOnTests := constvars.GSTRate * subtotal
	gstOnConsultation := constvars.GSTRate * consultationFee
	return models.Pricing{
		Subtotal:          subtotal,
		GSTOnTests:        gstOnTests,
		ConsultationFee:   consultationFee,
		GSTOnConsultation: gstOnConsultation,
		Total:             subtotal + gstOnTests + consultationFee + gstOnConsultation,
	}
}

// formatBookingID renders the human booking id for a sequence number.
func formatBookingID(bookingType string, sequence int64) string {
	if bookingType == constvars.BookingTypeDoctor {
		return fmt.Sprintf(constvars.DoctorBookingIDFormat, sequence)
	}
	return fmt.Sprintf(constvars.DiagnosticBookingIDFormat, sequence)
}

// ParseBookingSequence extracts the numeric suffix from a stored booking
// id, e.g. "DIA-0007" -> 7. Returns 0 for an empty or malformed id, which
// lets the sequence start at 1.
func ParseBookingSequence(bookingType, bookingID string) int64 {
	if bookingID == "" {
		return 0
	}
	format := constvars.DiagnosticBookingIDFormat
	if bookingType == constvars.BookingTypeDoctor {
		format = constvars.DoctorBookingIDFormat
	}
	// Sscanf would cap %04d at four digits, which truncates ids that have
	// grown past the padding.
	format = strings.Replace(format, "%04d", "%d", 1)
	var sequence int64
	if _, err := fmt.Sscanf(bookingID, format, &sequence); err != nil {
		return 0
	}
	return sequence
}

// sequenceName maps a booking type to its counter key.
func sequenceName(bookingType string) string {
	if bookingType == constvars.BookingTypeDoctor {
		return constvars.SequenceDoctorBooking
	}
	return constvars.SequenceDiagnosticBooking
}

// earmarkFor picks the wallet bucket funding a booking: consultations draw
// from forDoctors, package bookings from forPackages, everything else from
// forTests.
func earmarkFor(bookingType string, packageID string) string {
	if bookingType == constvars.BookingTypeDoctor {
		return constvars.EarmarkDoctors
	}
	if packageID != "" {
		return constvars.EarmarkPackages
	}
	return constvars.EarmarkTests
}
