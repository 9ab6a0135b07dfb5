package bookings

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStaffRepository struct {
	contracts.StaffRepository
	staff   *models.Staff
	debits  []models.WalletLog
	credits []models.WalletLog
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	if f.staff != nil && f.staff.ID == staffID {
		return f.staff, nil
	}
	return nil, nil
}

func (f *fakeStaffRepository) DebitWallet(ctx context.Context, staffID, earmark string, amount float64, entry models.WalletLog) (*models.Staff, error) {
	if f.staff.EarmarkBalance(earmark) < amount {
		return nil, exceptions.ErrWalletInsufficientFunds(fmt.Errorf("earmark %s short", earmark))
	}
	switch earmark {
	case constvars.EarmarkTests:
		f.staff.ForTests -= amount
	case constvars.EarmarkDoctors:
		f.staff.ForDoctors -= amount
	case constvars.EarmarkPackages:
		f.staff.ForPackages -= amount
	}
	f.staff.WalletBalance -= amount
	f.staff.WalletLogs = append(f.staff.WalletLogs, entry)
	f.debits = append(f.debits, entry)
	return f.staff, nil
}

func (f *fakeStaffRepository) CreditWallet(ctx context.Context, staffID string, entry models.WalletLog) (*models.Staff, error) {
	f.staff.ForTests += entry.ForTests
	f.staff.ForDoctors += entry.ForDoctors
	f.staff.ForPackages += entry.ForPackages
	f.staff.WalletBalance += entry.Amount
	f.staff.WalletLogs = append(f.staff.WalletLogs, entry)
	f.credits = append(f.credits, entry)
	return f.staff, nil
}

type fakeDoctorRepository struct {
	contracts.DoctorRepository
	doctor *models.Doctor
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if f.doctor != nil && f.doctor.ID == doctorID {
		return f.doctor, nil
	}
	return nil, nil
}

type fakeDiagnosticRepository struct {
	contracts.DiagnosticRepository
	diagnostic *models.Diagnostic
}

func (f *fakeDiagnosticRepository) FindByID(ctx context.Context, diagnosticID string) (*models.Diagnostic, error) {
	if f.diagnostic != nil && f.diagnostic.ID == diagnosticID {
		return f.diagnostic, nil
	}
	return nil, nil
}

type fakeCatalogRepository struct {
	contracts.CatalogRepository
	pkg   *models.Package
	tests []models.Test
}

func (f *fakeCatalogRepository) FindPackageByID(ctx context.Context, packageID string) (*models.Package, error) {
	if f.pkg != nil && f.pkg.ID == packageID {
		return f.pkg, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindTestsByIDs(ctx context.Context, testIDs []string) ([]models.Test, error) {
	found := make([]models.Test, 0, len(testIDs))
	for _, id := range testIDs {
		for _, test := range f.tests {
			if test.ID == id {
				found = append(found, test)
			}
		}
	}
	return found, nil
}

type fakeSlotRepository struct {
	contracts.SlotRepository
	slots    []models.Slot
	markErr  error
	marked   []string
	released []string
}

func (f *fakeSlotRepository) ListSlots(ctx context.Context, resourceType, resourceID, slotType string) ([]models.Slot, error) {
	return f.slots, nil
}

func (f *fakeSlotRepository) MarkBooked(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, fmt.Sprintf("%s/%s/%s", resourceID, date, timeSlot))
	return nil
}

func (f *fakeSlotRepository) Release(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error {
	f.released = append(f.released, fmt.Sprintf("%s/%s/%s", resourceID, date, timeSlot))
	return nil
}

type fakeBookingRepository struct {
	contracts.BookingRepository
	createErr error
	created   []*models.Booking
	stored    *models.Booking
	updated   *models.Booking
}

func (f *fakeBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, booking)
	return "64b0c8a7e4b0f2a1d3e4f5a6", nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if f.stored != nil && f.stored.ID == bookingID {
		return f.stored, nil
	}
	return nil, nil
}

func (f *fakeBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	f.updated = booking
	return nil
}

type fakeSequenceService struct {
	current int64
}

func (f *fakeSequenceService) Next(ctx context.Context, name string) (int64, error) {
	f.current++
	return f.current, nil
}

func (f *fakeSequenceService) EnsureAtLeast(ctx context.Context, name string, floor int64) error {
	if floor > f.current {
		f.current = floor
	}
	return nil
}

type fakeLockerService struct {
	busy     bool
	unlocked []string
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.busy {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}

type fakeEventPublisher struct {
	events []contracts.BookingEvent
}

func (f *fakeEventPublisher) Publish(ctx context.Context, event contracts.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakePaymentGateway struct {
	payments map[string]*contracts.PaymentInfo
	captured []int64
}

func (f *fakePaymentGateway) FetchPayment(ctx context.Context, transactionID string) (*contracts.PaymentInfo, error) {
	payment, ok := f.payments[transactionID]
	if !ok {
		return nil, exceptions.ErrPaymentNotFound(fmt.Errorf("payment %s", transactionID))
	}
	return payment, nil
}

func (f *fakePaymentGateway) CapturePayment(ctx context.Context, transactionID string, amountMinorUnits int64, currency string) (*contracts.PaymentInfo, error) {
	payment := f.payments[transactionID]
	payment.Status = constvars.PaymentStatusCaptured
	payment.Amount = amountMinorUnits
	f.captured = append(f.captured, amountMinorUnits)
	return payment, nil
}

type settlementFixture struct {
	usecase     *bookingUsecase
	staffs      *fakeStaffRepository
	doctors     *fakeDoctorRepository
	diagnostics *fakeDiagnosticRepository
	catalog     *fakeCatalogRepository
	slots       *fakeSlotRepository
	bookings    *fakeBookingRepository
	sequences   *fakeSequenceService
	locker      *fakeLockerService
	events      *fakeEventPublisher
	gateway     *fakePaymentGateway
}

func newSettlementFixture(staff *models.Staff) *settlementFixture {
	f := &settlementFixture{
		staffs: &fakeStaffRepository{staff: staff},
		doctors: &fakeDoctorRepository{doctor: &models.Doctor{
			ID:              "64b000000000000000000d0c",
			Name:            "Dr. Rao",
			ConsultationFee: 500,
		}},
		diagnostics: &fakeDiagnosticRepository{diagnostic: &models.Diagnostic{
			ID:   "64b000000000000000000d1a",
			Name: "CityScan Labs",
		}},
		catalog: &fakeCatalogRepository{
			pkg: &models.Package{ID: "64b000000000000000000aaa", Name: "Full Body", Price: 1000, OfferPrice: 800},
			tests: []models.Test{
				{ID: "t1", Name: "CBC", Price: 200, OfferPrice: 150},
				{ID: "t2", Name: "Lipid", Price: 200},
			},
		},
		slots: &fakeSlotRepository{slots: []models.Slot{
			{Day: "Monday", Date: "2026-09-07", TimeSlot: "10:00-10:30"},
			{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "11:00-11:30"},
		}},
		bookings:  &fakeBookingRepository{},
		sequences: &fakeSequenceService{},
		locker:    &fakeLockerService{},
		events:    &fakeEventPublisher{},
		gateway:   &fakePaymentGateway{payments: map[string]*contracts.PaymentInfo{}},
	}
	f.usecase = &bookingUsecase{
		BookingRepository:    f.bookings,
		StaffRepository:      f.staffs,
		DoctorRepository:     f.doctors,
		DiagnosticRepository: f.diagnostics,
		CatalogRepository:    f.catalog,
		SlotRepository:       f.slots,
		PaymentGateway:       f.gateway,
		Sequences:            f.sequences,
		Locker:               f.locker,
		Events:               f.events,
		Currency:             "INR",
		Log:                  zap.NewNop(),
	}
	return f
}

func packageBookingRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		Type:         constvars.BookingTypeDiagnostic,
		ServiceType:  constvars.SlotTypeCenter,
		StaffID:      "64b000000000000000000s01",
		DiagnosticID: "64b000000000000000000d1a",
		PackageID:    "64b000000000000000000aaa",
		Day:          "Monday",
		Date:         "2026-09-07",
		TimeSlot:     "10:00-10:30",
	}
}

func newStaff(forTests, forDoctors, forPackages float64) *models.Staff {
	staff := &models.Staff{
		ID:            "64b000000000000000000s01",
		Name:          "Asha",
		WalletBalance: forTests + forDoctors + forPackages,
		ForTests:      forTests,
		ForDoctors:    forDoctors,
		ForPackages:   forPackages,
	}
	return staff
}

func TestCreateBooking_PackageFullyCoveredByWallet(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 1000))

	settlement, err := f.usecase.CreateBooking(context.Background(), packageBookingRequest())

	assert.NoError(t, err)
	assert.Equal(t, "DIA-0001", settlement.Booking.BookingID)
	assert.Equal(t, constvars.BookingStatusConfirmed, settlement.Booking.Status)
	assert.InDelta(t, 800.0, settlement.Booking.PayableAmount, 1e-9)
	assert.InDelta(t, 800.0, settlement.WalletUsed, 1e-9)
	assert.InDelta(t, 0.0, settlement.OnlineUsed, 1e-9)
	assert.InDelta(t, 200.0, settlement.RemainingEarmark, 1e-9)

	// one debit log, one slot flip, one confirmed event
	assert.Len(t, f.staffs.debits, 1)
	assert.Equal(t, constvars.WalletDirectionDebit, f.staffs.debits[0].Direction)
	assert.InDelta(t, 800.0, f.staffs.debits[0].ForPackages, 1e-9)
	assert.Len(t, f.slots.marked, 1)
	assert.Len(t, f.events.events, 1)
	assert.Equal(t, constvars.BookingEventConfirmed, f.events.events[0].Type)
	assert.Len(t, f.locker.unlocked, 1)
}

func TestCreateBooking_ShortfallWithoutTransactionID(t *testing.T) {
	f := newSettlementFixture(newStaff(100, 0, 0))

	request := packageBookingRequest()
	request.PackageID = ""
	request.TestIDs = []string{"t1", "t2"}

	settlement, err := f.usecase.CreateBooking(context.Background(), request)

	assert.Nil(t, settlement)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusPaymentRequired, customErr.StatusCode)

	shortfall, ok := customErr.Data.(responses.PaymentShortfall)
	assert.True(t, ok)
	assert.InDelta(t, 100.0, shortfall.WalletAvailable, 1e-9)
	// subtotal 350 + 18% GST = 413, minus 100 wallet
	assert.InDelta(t, 313.0, shortfall.RequiredOnline, 1e-9)

	// zero mutations
	assert.Empty(t, f.slots.marked)
	assert.Empty(t, f.staffs.debits)
	assert.Empty(t, f.bookings.created)
	assert.Empty(t, f.events.events)
	assert.InDelta(t, 100.0, f.staffs.staff.ForTests, 1e-9)
}

func TestCreateBooking_CapturesAuthorizedPayment(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 200, 0))
	f.gateway.payments["pay_123"] = &contracts.PaymentInfo{
		ID:       "pay_123",
		Status:   constvars.PaymentStatusAuthorized,
		Currency: "INR",
	}

	request := &requests.CreateBooking{
		Type:          constvars.BookingTypeDoctor,
		ServiceType:   constvars.SlotTypeOnline,
		StaffID:       "64b000000000000000000s01",
		DoctorID:      "64b000000000000000000d0c",
		Day:           "Tuesday",
		Date:          "2026-09-08",
		TimeSlot:      "11:00-11:30",
		TransactionID: "pay_123",
	}

	settlement, err := f.usecase.CreateBooking(context.Background(), request)

	assert.NoError(t, err)
	assert.Equal(t, "DoctorBookingId_0001", settlement.Booking.BookingID)
	assert.InDelta(t, 200.0, settlement.WalletUsed, 1e-9)
	assert.InDelta(t, 300.0, settlement.OnlineUsed, 1e-9)
	// capture happens in paise
	assert.Equal(t, []int64{30000}, f.gateway.captured)
	assert.Equal(t, constvars.PaymentStatusCaptured, settlement.Booking.PaymentStatus)
	assert.Equal(t, "pay_123", settlement.Booking.TransactionID)
}

func TestCreateBooking_PaymentNotCaptured(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 100))
	f.gateway.payments["pay_f"] = &contracts.PaymentInfo{
		ID:     "pay_f",
		Status: constvars.PaymentStatusFailed,
	}

	request := packageBookingRequest()
	request.TransactionID = "pay_f"

	settlement, err := f.usecase.CreateBooking(context.Background(), request)

	assert.Nil(t, settlement)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusPaymentRequired, customErr.StatusCode)
	assert.Empty(t, f.slots.marked)
	assert.Empty(t, f.staffs.debits)
}

func TestCreateBooking_NoCaptureWhenSlotAlreadyBooked(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 100))
	f.slots.slots = []models.Slot{
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "10:00-10:30", IsBooked: true},
	}
	f.gateway.payments["pay_456"] = &contracts.PaymentInfo{
		ID:       "pay_456",
		Status:   constvars.PaymentStatusAuthorized,
		Currency: "INR",
	}

	request := packageBookingRequest()
	request.TransactionID = "pay_456"

	settlement, err := f.usecase.CreateBooking(context.Background(), request)

	assert.Nil(t, settlement)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	// money must not move for a slot that was already taken
	assert.Empty(t, f.gateway.captured)
	assert.Empty(t, f.staffs.debits)
	assert.Empty(t, f.bookings.created)
	assert.Len(t, f.locker.unlocked, 1)
}

func TestCreateBooking_SequenceContinuesFromSeed(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 1000))
	f.sequences.current = 7

	settlement, err := f.usecase.CreateBooking(context.Background(), packageBookingRequest())

	assert.NoError(t, err)
	assert.Equal(t, "DIA-0008", settlement.Booking.BookingID)
}

func TestCreateBooking_SlotConflictEndsAttempt(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 1000))
	f.slots.markErr = exceptions.ErrSlotAlreadyBooked(fmt.Errorf("taken"))

	settlement, err := f.usecase.CreateBooking(context.Background(), packageBookingRequest())

	assert.Nil(t, settlement)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Empty(t, f.staffs.debits)
	assert.Empty(t, f.bookings.created)
	assert.InDelta(t, 1000.0, f.staffs.staff.ForPackages, 1e-9)
}

func TestCreateBooking_PersistFailureCompensates(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 1000))
	f.bookings.createErr = exceptions.ErrMongoDBInsertDocument(fmt.Errorf("write concern"))

	settlement, err := f.usecase.CreateBooking(context.Background(), packageBookingRequest())

	assert.Nil(t, settlement)
	assert.Error(t, err)
	// debit refunded, slot released
	assert.Len(t, f.staffs.credits, 1)
	assert.InDelta(t, 800.0, f.staffs.credits[0].ForPackages, 1e-9)
	assert.InDelta(t, 1000.0, f.staffs.staff.ForPackages, 1e-9)
	assert.Len(t, f.slots.released, 1)
	assert.Empty(t, f.events.events)
}

func TestCreateBooking_LockHeldByAnotherSettlement(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 1000))
	f.locker.busy = true

	settlement, err := f.usecase.CreateBooking(context.Background(), packageBookingRequest())

	assert.Nil(t, settlement)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Empty(t, f.slots.marked)
}

func TestRemoveTest_RecomputesPricing(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 0))
	f.bookings.stored = &models.Booking{
		ID:        "64b0c8a7e4b0f2a1d3e4f5a6",
		BookingID: "DIA-0003",
		Type:      constvars.BookingTypeDiagnostic,
		TestIDs:   []string{"t1", "t2"},
		Pricing:   buildPricing(350, 0),
	}

	booking, err := f.usecase.RemoveTest(context.Background(), "64b0c8a7e4b0f2a1d3e4f5a6", "t1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"t2"}, booking.TestIDs)
	// t2 has no offer price, so the remaining subtotal is its list price
	assert.InDelta(t, 200.0, booking.Pricing.Subtotal, 1e-9)
	assert.InDelta(t, 36.0, booking.Pricing.GSTOnTests, 1e-9)
	assert.InDelta(t, 236.0, booking.Pricing.Total, 1e-9)
	assert.InDelta(t, 236.0, booking.PayableAmount, 1e-9)
	assert.NotNil(t, f.bookings.updated)
}

func TestRemoveTest_TestNotInBooking(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 0))
	f.bookings.stored = &models.Booking{
		ID:      "64b0c8a7e4b0f2a1d3e4f5a6",
		TestIDs: []string{"t2"},
	}

	booking, err := f.usecase.RemoveTest(context.Background(), "64b0c8a7e4b0f2a1d3e4f5a6", "t1")

	assert.Nil(t, booking)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestUpdateStatus_CancelReleasesSlotAndPublishes(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 0))
	f.bookings.stored = &models.Booking{
		ID:           "64b0c8a7e4b0f2a1d3e4f5a6",
		BookingID:    "DIA-0002",
		Type:         constvars.BookingTypeDiagnostic,
		ServiceType:  constvars.SlotTypeCenter,
		DiagnosticID: "64b000000000000000000d1a",
		StaffID:      "64b000000000000000000s01",
		BookedSlot: models.Slot{
			Day:      "Monday",
			Date:     "2026-09-07",
			TimeSlot: "10:00-10:30",
			IsBooked: true,
		},
		Status: constvars.BookingStatusConfirmed,
	}

	booking, err := f.usecase.UpdateStatus(context.Background(), "64b0c8a7e4b0f2a1d3e4f5a6", constvars.BookingStatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, constvars.BookingStatusCancelled, booking.Status)
	assert.Len(t, f.slots.released, 1)
	assert.Len(t, f.events.events, 1)
	assert.Equal(t, constvars.BookingEventCancelled, f.events.events[0].Type)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 0))
	f.bookings.stored = &models.Booking{
		ID:        "64b0c8a7e4b0f2a1d3e4f5a6",
		BookingID: "DIA-0002",
		Type:      constvars.BookingTypeDiagnostic,
		Status:    constvars.BookingStatusCancelled,
	}

	booking, err := f.usecase.UpdateStatus(context.Background(), "64b0c8a7e4b0f2a1d3e4f5a6", constvars.BookingStatusCancelled)

	assert.Nil(t, booking)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)

	// no second release, no second event
	assert.Empty(t, f.slots.released)
	assert.Empty(t, f.events.events)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newSettlementFixture(newStaff(0, 0, 0))

	booking, err := f.usecase.UpdateStatus(context.Background(), "64b0c8a7e4b0f2a1d3e4f5a6", "Archived")

	assert.Nil(t, booking)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}
