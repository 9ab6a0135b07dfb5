package models

// Pricing is the GST breakdown kept on a booking with line items. GST is a
// flat 18% applied independently to the test subtotal and the consultation
// fee, then summed into Total.
type Pricing struct {
	Subtotal          float64 `json:"subtotal" bson:"subtotal"`
	GSTOnTests        float64 `json:"gstOnTests" bson:"gstOnTests"`
	ConsultationFee   float64 `json:"consultationFee" bson:"consultationFee"`
	GSTOnConsultation float64 `json:"gstOnConsultation" bson:"gstOnConsultation"`
	Total             float64 `json:"total" bson:"total"`
}

type Booking struct {
	ID             string   `json:"id" bson:"_id,omitempty"`
	BookingID      string   `json:"bookingId" bson:"bookingId"`
	Type           string   `json:"type" bson:"type"`
	ServiceType    string   `json:"serviceType" bson:"serviceType"`
	StaffID        string   `json:"staffId" bson:"staffId"`
	FamilyMemberID string   `json:"familyMemberId,omitempty" bson:"familyMemberId,omitempty"`
	DoctorID       string   `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	DiagnosticID   string   `json:"diagnosticId,omitempty" bson:"diagnosticId,omitempty"`
	PackageID      string   `json:"packageId,omitempty" bson:"packageId,omitempty"`
	TestIDs        []string `json:"testIds,omitempty" bson:"testIds,omitempty"`

	BookedSlot Slot `json:"bookedSlot" bson:"bookedSlot"`

	TotalPrice    float64 `json:"totalPrice" bson:"totalPrice"`
	Discount      float64 `json:"discount" bson:"discount"`
	PayableAmount float64 `json:"payableAmount" bson:"payableAmount"`
	Pricing       Pricing `json:"pricing" bson:"pricing"`

	WalletUsed float64 `json:"walletUsed" bson:"walletUsed"`
	OnlineUsed float64 `json:"onlineUsed" bson:"onlineUsed"`

	Status         string                 `json:"status" bson:"status"`
	TransactionID  string                 `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	PaymentStatus  string                 `json:"paymentStatus" bson:"paymentStatus"`
	PaymentDetails map[string]interface{} `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty"`

	TimeModel `bson:",inline"`
}
