package models

type Diagnostic struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Address     string   `json:"address" bson:"address"`
	City        string   `json:"city" bson:"city"`
	TestIDs     []string `json:"testIds" bson:"testIds"`
	PackageIDs  []string `json:"packageIds" bson:"packageIds"`
	XrayIDs     []string `json:"xrayIds" bson:"xrayIds"`
	HomeSlots   []Slot   `json:"homeSlots" bson:"homeSlots"`
	CenterSlots []Slot   `json:"centerSlots" bson:"centerSlots"`
	TimeModel   `bson:",inline"`
}
