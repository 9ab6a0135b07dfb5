package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"slot_date": "must be an ISO date (YYYY-MM-DD)",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process your request, please try again later"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please contact admin"
	ErrClientNotAuthorized                 = "you're not authorized, please login first"
	ErrClientInvalidCredentials            = "invalid email or password"
	ErrClientServerLongRespond             = "server took too long to respond, please try again later"

	ErrClientStaffNotFound      = "staff not found"
	ErrClientAdminNotFound      = "admin not found"
	ErrClientCompanyNotFound    = "company not found"
	ErrClientDoctorNotFound     = "doctor not found"
	ErrClientDiagnosticNotFound = "diagnostic center not found"
	ErrClientTestNotFound       = "test not found"
	ErrClientPackageNotFound    = "package not found"
	ErrClientXrayNotFound       = "x-ray not found"
	ErrClientCategoryNotFound   = "category not found"
	ErrClientBookingNotFound    = "booking not found"
	ErrClientQuestionnaireNotFound = "questionnaire not found"

	ErrClientInvalidTopUpAmount    = "top-up amount must be greater than zero"
	ErrClientWalletNotReconciled   = "wallet balance does not match its earmarks"
	ErrClientInsufficientFunds     = "insufficient wallet balance, online payment required"
	ErrClientPaymentNotFound       = "payment not found on the gateway"
	ErrClientPaymentNotCaptured    = "payment could not be captured"
	ErrClientSlotAlreadyExists     = "a slot with the same day, date and time already exists"
	ErrClientSlotNotFound          = "no matching open slot found"
	ErrClientSlotAlreadyBooked     = "the requested slot is already booked"
	ErrClientBookingInProgress     = "another booking for this slot is in progress, please retry"
	ErrClientInvalidBookingType    = "booking type must be either 'doctor' or 'diagnostic'"
	ErrClientInvalidSlotType       = "invalid slot type for this resource"
	ErrClientInvalidEarmark        = "invalid wallet earmark"
	ErrClientEmailAlreadyExists    = "email already used"
	ErrClientTestNotInBooking      = "test is not part of this booking"
	ErrClientInvalidBookingStatus  = "invalid booking status"
)

// Error messages for developers
const (
	ErrDevValidationFailed    = "Request validation failed"
	ErrDevInvalidInput        = "Invalid input"
	ErrDevCannotParseJSON     = "Cannot parse JSON body"
	ErrDevCannotMarshalJSON   = "Cannot marshal JSON"
	ErrDevServerProcess       = "Error while processing the request"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded"
	ErrDevFailedToHashPassword   = "Failed to hash password"
	ErrDevInvalidCredentials     = "Credentials do not match any admin"
	ErrDevAuthTokenMissing       = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevURLParamIDValidationFailed = "URL parameter %s failed validation"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "String cannot be converted to ObjectID"

	ErrDevRedisGetData       = "Redis failed to get data"
	ErrDevRedisSetData       = "Redis failed to set data"
	ErrDevRedisDeleteData    = "Redis failed to delete data"
	ErrDevRedisIncrementValue = "Redis failed to increment value"
	ErrDevRedisUnlock         = "Redis failed to release lock"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"
	ErrDevDecodeResponse    = "Failed to decode %s response"

	ErrDevGatewayPaymentNotFound = "Payment gateway returned 404 for transaction"
	ErrDevGatewayCaptureFailed   = "Payment gateway capture call failed"
	ErrDevGatewayBadStatus       = "Payment gateway returned unexpected status %d"

	ErrDevWalletTopUpNonPositive = "Wallet top-up sum is not positive"
	ErrDevWalletEarmarkShort     = "Earmark balance lower than debit amount"
	ErrDevSlotDuplicateTuple     = "Slot tuple already present in target array"
	ErrDevSlotNoOpenMatch        = "No unbooked slot matches the tuple"
	ErrDevBookingCommitUnwound   = "Booking commit failed, compensations applied"
)
