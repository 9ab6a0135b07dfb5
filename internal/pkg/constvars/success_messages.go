package constvars

const (
	CreateAdminSuccessMessage  = "Successfully created admin"
	LoginSuccessMessage        = "Successfully logged in"
	GetAdminSuccessMessage     = "Successfully retrieved admin"
	UpdateAdminSuccessMessage  = "Successfully updated admin"
	DeleteAdminSuccessMessage  = "Successfully deleted admin"

	CreateStaffSuccessMessage = "Successfully created staff"
	GetStaffSuccessMessage    = "Successfully retrieved staff"
	UpdateStaffSuccessMessage = "Successfully updated staff"
	DeleteStaffSuccessMessage = "Successfully deleted staff"

	TopUpWalletSuccessMessage     = "Successfully topped up wallet"
	GetWalletBalanceSuccessMessage = "Successfully retrieved wallet balance"

	CreateCompanySuccessMessage = "Successfully created company"
	GetCompanySuccessMessage    = "Successfully retrieved company"
	UpdateCompanySuccessMessage = "Successfully updated company"
	DeleteCompanySuccessMessage = "Successfully deleted company"

	CreateDoctorSuccessMessage = "Successfully created doctor"
	GetDoctorSuccessMessage    = "Successfully retrieved doctor"
	UpdateDoctorSuccessMessage = "Successfully updated doctor"
	DeleteDoctorSuccessMessage = "Successfully deleted doctor"

	CreateDiagnosticSuccessMessage = "Successfully created diagnostic center"
	GetDiagnosticSuccessMessage    = "Successfully retrieved diagnostic center"
	UpdateDiagnosticSuccessMessage = "Successfully updated diagnostic center"
	DeleteDiagnosticSuccessMessage = "Successfully deleted diagnostic center"

	CreateCatalogItemSuccessMessage = "Successfully created catalog item"
	GetCatalogItemSuccessMessage    = "Successfully retrieved catalog item"
	UpdateCatalogItemSuccessMessage = "Successfully updated catalog item"
	DeleteCatalogItemSuccessMessage = "Successfully deleted catalog item"

	AddSlotSuccessMessage     = "Successfully added slot"
	UpdateSlotSuccessMessage  = "Successfully updated slot"
	RemoveSlotSuccessMessage  = "Successfully removed slot"
	QuerySlotsSuccessMessage  = "Successfully retrieved slots"

	CreateBookingSuccessMessage       = "Successfully created booking"
	GetBookingSuccessMessage          = "Successfully retrieved booking"
	UpdateBookingStatusSuccessMessage = "Successfully updated booking status"
	DeleteBookingSuccessMessage       = "Successfully deleted booking"
	RemoveTestFromBookingSuccessMessage = "Successfully removed test from booking"

	CreateQuestionnaireSuccessMessage = "Successfully created questionnaire"
	GetQuestionnaireSuccessMessage    = "Successfully retrieved questionnaire"
	UpdateQuestionnaireSuccessMessage = "Successfully updated questionnaire"
	DeleteQuestionnaireSuccessMessage = "Successfully deleted questionnaire"
	SubmitHraResponseSuccessMessage   = "Successfully submitted questionnaire response"
)
