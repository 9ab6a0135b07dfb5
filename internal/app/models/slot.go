package models

// Slot is a bookable time window embedded in a doctor or diagnostic
// document. Identity is the (day, date, timeSlot) tuple; there is no
// generated id. Dates are ISO date-only strings.
type Slot struct {
	Day      string `json:"day" bson:"day"`
	Date     string `json:"date" bson:"date"`
	TimeSlot string `json:"timeSlot" bson:"timeSlot"`
	IsBooked bool   `json:"isBooked" bson:"isBooked"`
}

// SameTuple reports tuple equality. Matching is case-sensitive on day and
// timeSlot and exact on date.
func (s Slot) SameTuple(day, date, timeSlot string) bool {
	return s.Day == day && s.Date == date && s.TimeSlot == timeSlot
}
