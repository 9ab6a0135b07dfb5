package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDataKey         = "data"
	LoggingRequestKey      = "request"
	LoggingResponseKey     = "response"
	LoggingQueryParamsKey  = "query_params"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingStaffIDKey      = "staff_id"
	LoggingBookingIDKey    = "booking_id"
	LoggingTransactionKey  = "transaction_id"
	LoggingEarmarkKey      = "earmark"
	LoggingAmountKey       = "amount"
	LoggingSlotKey         = "slot"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingEventTypeKey    = "event_type"
	LoggingResourceIDKey   = "resource_id"
	LoggingSlotTypeKey     = "slot_type"
	LoggingPaymentStateKey = "payment_status"
)
