package requests

type AddSlot struct {
	SlotType string `json:"slotType" validate:"required,oneof=online offline home center"`
	Day      string `json:"day" validate:"required"`
	Date     string `json:"date" validate:"required,slot_date"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

type RemoveSlot struct {
	SlotType string `json:"slotType" validate:"required,oneof=online offline home center"`
	Day      string `json:"day" validate:"required"`
	Date     string `json:"date" validate:"required,slot_date"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

// UpdateSlot rewrites the slot identified by the old tuple with new values.
type UpdateSlot struct {
	SlotType    string `json:"slotType" validate:"required,oneof=online offline home center"`
	Day         string `json:"day" validate:"required"`
	Date        string `json:"date" validate:"required,slot_date"`
	TimeSlot    string `json:"timeSlot" validate:"required"`
	NewDay      string `json:"newDay" validate:"required"`
	NewDate     string `json:"newDate" validate:"required,slot_date"`
	NewTimeSlot string `json:"newTimeSlot" validate:"required"`
}
