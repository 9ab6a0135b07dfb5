package requests

type CreateStaff struct {
	CompanyID   string `json:"companyId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Designation string `json:"designation,omitempty"`
}

type UpdateStaff struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
}
