package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_ADMIN_ID_KEY             contextKey = "admin_id"
)

// Mongo collections
const (
	MongoCollectionAdmins            = "admins"
	MongoCollectionStaffs            = "staffs"
	MongoCollectionCompanies         = "companies"
	MongoCollectionDoctors           = "doctors"
	MongoCollectionDiagnostics       = "diagnostics"
	MongoCollectionTests             = "tests"
	MongoCollectionPackages          = "packages"
	MongoCollectionXrays             = "xrays"
	MongoCollectionCategories        = "categories"
	MongoCollectionBookings          = "bookings"
	MongoCollectionHraQuestionnaires = "hra_questionnaires"
	MongoCollectionHraResponses      = "hra_responses"
)

// Wallet earmarks. Values double as bson field names on the staff document.
const (
	EarmarkTests    = "forTests"
	EarmarkDoctors  = "forDoctors"
	EarmarkPackages = "forPackages"
)

const (
	WalletDirectionCredit = "credit"
	WalletDirectionDebit  = "debit"
)

// Booking
const (
	BookingTypeDoctor     = "doctor"
	BookingTypeDiagnostic = "diagnostic"

	BookingStatusConfirmed = "Confirmed"
	BookingStatusAccepted  = "Accepted"
	BookingStatusRejected  = "Rejected"
	BookingStatusCancelled = "Cancelled"

	DiagnosticBookingIDFormat = "DIA-%04d"
	DoctorBookingIDFormat     = "DoctorBookingId_%04d"

	SequenceDiagnosticBooking = "sequence:booking:diagnostic"
	SequenceDoctorBooking     = "sequence:booking:doctor"

	// GST is a flat 18% applied independently to the test subtotal and to
	// the consultation fee.
	GSTRate = 0.18
)

// Slot types
const (
	SlotTypeOnline  = "online"
	SlotTypeOffline = "offline"
	SlotTypeHome    = "home"
	SlotTypeCenter  = "center"

	SlotDateLayout = "2006-01-02"
)

// Payment gateway statuses
const (
	PaymentStatusCreated    = "created"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusFailed     = "failed"
)

// Booking event types
const (
	BookingEventConfirmed = "booking.confirmed"
	BookingEventCancelled = "booking.cancelled"
)
