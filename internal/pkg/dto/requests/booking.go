package requests

type CreateBooking struct {
	Type           string   `json:"type" validate:"required,oneof=doctor diagnostic"`
	ServiceType    string   `json:"serviceType" validate:"required,oneof=online offline home center"`
	StaffID        string   `json:"staffId" validate:"required"`
	FamilyMemberID string   `json:"familyMemberId,omitempty"`
	DoctorID       string   `json:"doctorId,omitempty"`
	DiagnosticID   string   `json:"diagnosticId,omitempty"`
	PackageID      string   `json:"packageId,omitempty"`
	TestIDs        []string `json:"testIds,omitempty"`
	Day            string   `json:"day" validate:"required"`
	Date           string   `json:"date" validate:"required,slot_date"`
	TimeSlot       string   `json:"timeSlot" validate:"required"`
	Discount       float64  `json:"discount,omitempty" validate:"gte=0"`
	TransactionID  string   `json:"transactionId,omitempty"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected Cancelled"`
}

type RemoveTestFromBooking struct {
	TestID string `json:"testId" validate:"required"`
}
