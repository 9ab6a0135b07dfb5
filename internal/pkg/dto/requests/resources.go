package requests

type CreateDoctor struct {
	Name            string  `json:"name" validate:"required"`
	Specialization  string  `json:"specialization" validate:"required"`
	Qualification   string  `json:"qualification,omitempty"`
	ConsultationFee float64 `json:"consultationFee" validate:"required,gt=0"`
}

type UpdateDoctor struct {
	Name            string  `json:"name,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	Qualification   string  `json:"qualification,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty" validate:"gte=0"`
}

type CreateDiagnostic struct {
	Name       string   `json:"name" validate:"required"`
	Address    string   `json:"address" validate:"required"`
	City       string   `json:"city,omitempty"`
	TestIDs    []string `json:"testIds,omitempty"`
	PackageIDs []string `json:"packageIds,omitempty"`
	XrayIDs    []string `json:"xrayIds,omitempty"`
}

type UpdateDiagnostic struct {
	Name       string   `json:"name,omitempty"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	TestIDs    []string `json:"testIds,omitempty"`
	PackageIDs []string `json:"packageIds,omitempty"`
	XrayIDs    []string `json:"xrayIds,omitempty"`
}

type CreateCompany struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

type UpdateCompany struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}
