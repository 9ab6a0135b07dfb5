package bookings

import (
	"context"
	"fmt"
	"math"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const settlementLockTTL = 30 * time.Second

type bookingUsecase struct {
	BookingRepository    contracts.BookingRepository
	StaffRepository      contracts.StaffRepository
	DoctorRepository     contracts.DoctorRepository
	DiagnosticRepository contracts.DiagnosticRepository
	CatalogRepository    contracts.CatalogRepository
	SlotRepository       contracts.SlotRepository
	PaymentGateway       contracts.PaymentGatewayService
	Sequences            contracts.SequenceService
	Locker               contracts.LockerService
	Events               contracts.BookingEventPublisher
	Currency             string
	Log                  *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type BookingUsecaseDeps struct {
	BookingRepository    contracts.BookingRepository
	StaffRepository      contracts.StaffRepository
	DoctorRepository     contracts.DoctorRepository
	DiagnosticRepository contracts.DiagnosticRepository
	CatalogRepository    contracts.CatalogRepository
	SlotRepository       contracts.SlotRepository
	PaymentGateway       contracts.PaymentGatewayService
	Sequences            contracts.SequenceService
	Locker               contracts.LockerService
	Events               contracts.BookingEventPublisher
	Currency             string
}

func NewBookingUsecase(deps BookingUsecaseDeps, logger *zap.Logger) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:    deps.BookingRepository,
			StaffRepository:      deps.StaffRepository,
			DoctorRepository:     deps.DoctorRepository,
			DiagnosticRepository: deps.DiagnosticRepository,
			CatalogRepository:    deps.CatalogRepository,
			SlotRepository:       deps.SlotRepository,
			PaymentGateway:       deps.PaymentGateway,
			Sequences:            deps.Sequences,
			Locker:               deps.Locker,
			Events:               deps.Events,
			Currency:             deps.Currency,
			Log:                  logger,
		}
	})
	return bookingUsecaseInstance
}

// resolvedOrder is the priced, validated outcome of the read-only phase of
// a settlement attempt. Nothing has been mutated when one is built.
type resolvedOrder struct {
	resourceID      string
	counterparty    string
	earmark         string
	pricing         models.Pricing
	totalPrice      float64
	payable         float64
	hasLineItems    bool
	consultationFee float64
}

// CreateBooking runs one settlement attempt: resolve and price, check
// wallet coverage and (if needed) the online payment, then commit in saga
// order — mark slot, debit wallet, draw a booking id, persist, publish.
// Each commit step compensates the earlier ones on failure.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingSettlement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	staff, err := uc.StaffRepository.FindByID(ctx, request.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(fmt.Errorf("staff %s", request.StaffID))
	}

	order, err := uc.resolveOrder(ctx, request)
	if err != nil {
		return nil, err
	}

	earmarkBalance := staff.EarmarkBalance(order.earmark)
	walletUsed := math.Min(earmarkBalance, order.payable)
	onlineNeeded := order.payable - walletUsed

	uc.Log.Info("bookingUsecase.CreateBooking resolved order",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, request.StaffID),
		zap.String(constvars.LoggingEarmarkKey, order.earmark),
		zap.Float64(constvars.LoggingAmountKey, order.payable),
		zap.Float64("wallet_used", walletUsed),
		zap.Float64("online_needed", onlineNeeded),
	)

	lockKey := fmt.Sprintf("booking:%s:%s:%s", order.resourceID, request.Date, request.TimeSlot)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, settlementLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(fmt.Errorf("lock %s held", lockKey))
	}
	defer func() {
		if unlockErr := uc.Locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("bookingUsecase.CreateBooking unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	// Capture is irreversible, so the slot must be verified open under the
	// lock before any money moves.
	var payment *contracts.PaymentInfo
	if onlineNeeded > 0 {
		if err := uc.ensureSlotOpen(ctx, request, order.resourceID); err != nil {
			return nil, err
		}
		payment, err = uc.settleOnline(ctx, request.TransactionID, earmarkBalance, onlineNeeded)
		if err != nil {
			return nil, err
		}
	}

	return uc.commit(ctx, request, staff, order, walletUsed, onlineNeeded, payment)
}

func (uc *bookingUsecase) resolveOrder(ctx context.Context, request *requests.CreateBooking) (*resolvedOrder, error) {
	switch request.Type {
	case constvars.BookingTypeDoctor:
		return uc.resolveDoctorOrder(ctx, request)
	case constvars.BookingTypeDiagnostic:
		return uc.resolveDiagnosticOrder(ctx, request)
	}
	return nil, exceptions.ErrBookingInvalidType(fmt.Errorf("type %q", request.Type))
}

func (uc *bookingUsecase) resolveDoctorOrder(ctx context.Context, request *requests.CreateBooking) (*resolvedOrder, error) {
	if request.ServiceType != constvars.SlotTypeOnline && request.ServiceType != constvars.SlotTypeOffline {
		return nil, exceptions.ErrSlotInvalidType(fmt.Errorf("service type %q for doctor booking", request.ServiceType))
	}
	if request.DoctorID == "" {
		return nil, exceptions.ErrBookingInvalidType(fmt.Errorf("doctor booking without doctorId"))
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s", request.DoctorID))
	}

	order := &resolvedOrder{
		resourceID:      request.DoctorID,
		counterparty:    doctor.Name,
		earmark:         constvars.EarmarkDoctors,
		totalPrice:      doctor.ConsultationFee,
		consultationFee: doctor.ConsultationFee,
	}
	order.payable = applyDiscount(order.totalPrice, request.Discount)
	return order, nil
}

func (uc *bookingUsecase) resolveDiagnosticOrder(ctx context.Context, request *requests.CreateBooking) (*resolvedOrder, error) {
	if request.ServiceType != constvars.SlotTypeHome && request.ServiceType != constvars.SlotTypeCenter {
		return nil, exceptions.ErrSlotInvalidType(fmt.Errorf("service type %q for diagnostic booking", request.ServiceType))
	}
	if request.DiagnosticID == "" {
		return nil, exceptions.ErrBookingInvalidType(fmt.Errorf("diagnostic booking without diagnosticId"))
	}
	if request.PackageID == "" && len(request.TestIDs) == 0 {
		return nil, exceptions.ErrBookingInvalidType(fmt.Errorf("diagnostic booking with neither package nor tests"))
	}
	diagnostic, err := uc.DiagnosticRepository.FindByID(ctx, request.DiagnosticID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		return nil, exceptions.ErrDiagnosticNotFound(fmt.Errorf("diagnostic %s", request.DiagnosticID))
	}

	order := &resolvedOrder{
		resourceID:   request.DiagnosticID,
		counterparty: diagnostic.Name,
		earmark:      earmarkFor(request.Type, request.PackageID),
	}

	if request.PackageID != "" {
		pkg, err := uc.CatalogRepository.FindPackageByID(ctx, request.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, exceptions.ErrPackageNotFound(fmt.Errorf("package %s", request.PackageID))
		}
		order.totalPrice = pkg.EffectivePrice()
		order.payable = applyDiscount(order.totalPrice, request.Discount)
		return order, nil
	}

	tests, err := uc.CatalogRepository.FindTestsByIDs(ctx, request.TestIDs)
	if err != nil {
		return nil, err
	}
	if len(tests) != len(request.TestIDs) {
		return nil, exceptions.ErrTestNotFound(fmt.Errorf("requested %d tests, found %d", len(request.TestIDs), len(tests)))
	}
	subtotal := 0.0
	for i := range tests {
		subtotal += tests[i].EffectivePrice()
	}
	order.hasLineItems = true
	order.pricing = buildPricing(subtotal, 0)
	order.totalPrice = order.pricing.Total
	order.payable = applyDiscount(order.totalPrice, request.Discount)
	return order, nil
}

func applyDiscount(total, discount float64) float64 {
	payable := total - discount
	if payable < 0 {
		return 0
	}
	return payable
}

// ensureSlotOpen rechecks the requested tuple while the settlement lock is
// held. MarkBooked would catch a taken slot too, but only after the online
// payment has been captured.
func (uc *bookingUsecase) ensureSlotOpen(ctx context.Context, request *requests.CreateBooking, resourceID string) error {
	slots, err := uc.SlotRepository.ListSlots(ctx, request.Type, resourceID, request.ServiceType)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if !slot.SameTuple(request.Day, request.Date, request.TimeSlot) {
			continue
		}
		if slot.IsBooked {
			return exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s %s %s", request.Day, request.Date, request.TimeSlot))
		}
		return nil
	}
	return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s", request.Day, request.Date, request.TimeSlot))
}

// settleOnline verifies the caller's payment reference covers the
// shortfall. No transaction id means a 402 carrying the split the caller
// needs; otherwise the payment must end up captured.
func (uc *bookingUsecase) settleOnline(ctx context.Context, transactionID string, walletAvailable, onlineNeeded float64) (*contracts.PaymentInfo, error) {
	if transactionID == "" {
		return nil, exceptions.ErrWalletInsufficientFunds(fmt.Errorf("short %.2f with no transaction id", onlineNeeded)).
			WithData(responses.PaymentShortfall{
				WalletAvailable: walletAvailable,
				RequiredOnline:  onlineNeeded,
			})
	}

	payment, err := uc.PaymentGateway.FetchPayment(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment.Status == constvars.PaymentStatusAuthorized {
		amountPaise := int64(math.Round(onlineNeeded * 100))
		if _, err := uc.PaymentGateway.CapturePayment(ctx, transactionID, amountPaise, uc.Currency); err != nil {
			return nil, err
		}
		// The gateway is not synchronously consistent after capture.
		payment, err = uc.PaymentGateway.FetchPayment(ctx, transactionID)
		if err != nil {
			return nil, err
		}
	}
	if payment.Status != constvars.PaymentStatusCaptured {
		return nil, exceptions.ErrPaymentNotCaptured(fmt.Errorf("payment %s status %s", transactionID, payment.Status))
	}
	return payment, nil
}

func (uc *bookingUsecase) commit(ctx context.Context, request *requests.CreateBooking, staff *models.Staff, order *resolvedOrder, walletUsed, onlineNeeded float64, payment *contracts.PaymentInfo) (*responses.BookingSettlement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.SlotRepository.MarkBooked(ctx, request.Type, order.resourceID, request.ServiceType, request.Day, request.Date, request.TimeSlot); err != nil {
		return nil, err
	}

	remainingEarmark := staff.EarmarkBalance(order.earmark)
	if walletUsed > 0 {
		entry := debitEntry(order.earmark, walletUsed, order.counterparty)
		updated, err := uc.StaffRepository.DebitWallet(ctx, request.StaffID, order.earmark, walletUsed, entry)
		if err != nil {
			uc.releaseSlot(ctx, request, order.resourceID, "wallet debit failed")
			return nil, err
		}
		remainingEarmark = updated.EarmarkBalance(order.earmark)
	}

	sequence, err := uc.Sequences.Next(ctx, sequenceName(request.Type))
	if err != nil {
		uc.compensate(ctx, request, order, walletUsed, "sequence draw failed")
		return nil, err
	}
	bookingID := formatBookingID(request.Type, sequence)

	booking := uc.buildBooking(request, order, bookingID, walletUsed, onlineNeeded, payment)
	documentID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		uc.compensate(ctx, request, order, walletUsed, "persist failed")
		return nil, err
	}
	booking.ID = documentID

	// Fire-and-forget: a confirmed booking is never rolled back over a
	// missed event.
	event := contracts.BookingEvent{
		ID:         uuid.NewString(),
		Type:       constvars.BookingEventConfirmed,
		BookingID:  bookingID,
		StaffID:    request.StaffID,
		Amount:     order.payable,
		OccurredAt: time.Now(),
	}
	if err := uc.Events.Publish(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	return &responses.BookingSettlement{
		Booking:          booking,
		WalletUsed:       walletUsed,
		OnlineUsed:       onlineNeeded,
		RemainingEarmark: remainingEarmark,
	}, nil
}

func (uc *bookingUsecase) buildBooking(request *requests.CreateBooking, order *resolvedOrder, bookingID string, walletUsed, onlineNeeded float64, payment *contracts.PaymentInfo) *models.Booking {
	now := time.Now()
	booking := &models.Booking{
		BookingID:      bookingID,
		Type:           request.Type,
		ServiceType:    request.ServiceType,
		StaffID:        request.StaffID,
		FamilyMemberID: request.FamilyMemberID,
		DoctorID:       request.DoctorID,
		DiagnosticID:   request.DiagnosticID,
		PackageID:      request.PackageID,
		TestIDs:        request.TestIDs,
		BookedSlot: models.Slot{
			Day:      request.Day,
			Date:     request.Date,
			TimeSlot: request.TimeSlot,
			IsBooked: true,
		},
		TotalPrice:    order.totalPrice,
		Discount:      request.Discount,
		PayableAmount: order.payable,
		WalletUsed:    walletUsed,
		OnlineUsed:    onlineNeeded,
		Status:        constvars.BookingStatusConfirmed,
	}
	if order.hasLineItems {
		booking.Pricing = order.pricing
	}
	if payment != nil {
		booking.TransactionID = payment.ID
		booking.PaymentStatus = payment.Status
		booking.PaymentDetails = map[string]interface{}{
			"amount":   payment.Amount,
			"currency": payment.Currency,
			"method":   payment.Method,
		}
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return booking
}

// compensate undoes the debit and the slot flip after a later commit step
// failed. Compensation errors are logged, not returned; the caller's
// original error is the one that matters.
func (uc *bookingUsecase) compensate(ctx context.Context, request *requests.CreateBooking, order *resolvedOrder, walletUsed float64, reason string) {
	if walletUsed > 0 {
		entry := refundEntry(order.earmark, walletUsed, order.counterparty)
		if _, err := uc.StaffRepository.CreditWallet(ctx, request.StaffID, entry); err != nil {
			uc.Log.Error("bookingUsecase compensation refund failed",
				zap.String(constvars.LoggingStaffIDKey, request.StaffID),
				zap.Float64(constvars.LoggingAmountKey, walletUsed),
				zap.String("reason", reason),
				zap.Error(err),
			)
		}
	}
	uc.releaseSlot(ctx, request, order.resourceID, reason)
}

func (uc *bookingUsecase) releaseSlot(ctx context.Context, request *requests.CreateBooking, resourceID, reason string) {
	err := uc.SlotRepository.Release(ctx, request.Type, resourceID, request.ServiceType, request.Day, request.Date, request.TimeSlot)
	if err != nil {
		uc.Log.Error("bookingUsecase compensation slot release failed",
			zap.String(constvars.LoggingResourceIDKey, resourceID),
			zap.String(constvars.LoggingSlotKey, fmt.Sprintf("%s %s %s", request.Day, request.Date, request.TimeSlot)),
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
}

func debitEntry(earmark string, amount float64, counterparty string) models.WalletLog {
	entry := models.WalletLog{
		Direction:    constvars.WalletDirectionDebit,
		Amount:       amount,
		Counterparty: counterparty,
		CreatedAt:    time.Now(),
	}
	setEarmarkAmount(&entry, earmark, amount)
	return entry
}

func refundEntry(earmark string, amount float64, counterparty string) models.WalletLog {
	entry := models.WalletLog{
		Direction:    constvars.WalletDirectionCredit,
		Amount:       amount,
		Counterparty: counterparty,
		CreatedAt:    time.Now(),
	}
	setEarmarkAmount(&entry, earmark, amount)
	return entry
}

func setEarmarkAmount(entry *models.WalletLog, earmark string, amount float64) {
	switch earmark {
	case constvars.EarmarkTests:
		entry.ForTests = amount
	case constvars.EarmarkDoctors:
		entry.ForDoctors = amount
	case constvars.EarmarkPackages:
		entry.ForPackages = amount
	}
}

func (uc *bookingUsecase) FindAll(ctx context.Context) ([]models.Booking, error) {
	return uc.BookingRepository.FindAll(ctx)
}

func (uc *bookingUsecase) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(fmt.Errorf("booking %s", bookingID))
	}
	return booking, nil
}

// UpdateStatus applies an admin transition. Cancelling reopens the booked
// slot and announces the cancellation.
func (uc *bookingUsecase) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	switch status {
	case constvars.BookingStatusAccepted, constvars.BookingStatusRejected, constvars.BookingStatusCancelled:
	default:
		return nil, exceptions.ErrBookingInvalidStatus(fmt.Errorf("status %q", status))
	}

	booking, err := uc.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Rejected and cancelled are terminal; the slot release and the
	// cancellation event must not fire twice.
	if booking.Status == constvars.BookingStatusRejected || booking.Status == constvars.BookingStatusCancelled {
		return nil, exceptions.ErrBookingInvalidStatus(fmt.Errorf("booking %s already %s", booking.BookingID, booking.Status))
	}

	booking.Status = status
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if status == constvars.BookingStatusCancelled {
		resourceID := booking.DoctorID
		if booking.Type == constvars.BookingTypeDiagnostic {
			resourceID = booking.DiagnosticID
		}
		slot := booking.BookedSlot
		if err := uc.SlotRepository.Release(ctx, booking.Type, resourceID, booking.ServiceType, slot.Day, slot.Date, slot.TimeSlot); err != nil {
			uc.Log.Error("bookingUsecase.UpdateStatus slot release failed",
				zap.String(constvars.LoggingBookingIDKey, booking.BookingID),
				zap.Error(err),
			)
		}
		event := contracts.BookingEvent{
			ID:         uuid.NewString(),
			Type:       constvars.BookingEventCancelled,
			BookingID:  booking.BookingID,
			StaffID:    booking.StaffID,
			Amount:     booking.PayableAmount,
			OccurredAt: time.Now(),
		}
		if err := uc.Events.Publish(ctx, event); err != nil {
			uc.Log.Error("bookingUsecase.UpdateStatus event publish failed",
				zap.String(constvars.LoggingBookingIDKey, booking.BookingID),
				zap.Error(err),
			)
		}
	}
	return booking, nil
}

// RemoveTest drops one line item and recomputes the GST breakdown from the
// remaining tests. Wallet entries are never rewritten retroactively.
func (uc *bookingUsecase) RemoveTest(ctx context.Context, bookingID, testID string) (*models.Booking, error) {
	booking, err := uc.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(booking.TestIDs))
	found := false
	for _, id := range booking.TestIDs {
		if id == testID {
			found = true
			continue
		}
		remaining = append(remaining, id)
	}
	if !found {
		return nil, exceptions.ErrBookingTestNotIncluded(fmt.Errorf("test %s not in booking %s", testID, booking.BookingID))
	}

	subtotal := 0.0
	if len(remaining) > 0 {
		tests, err := uc.CatalogRepository.FindTestsByIDs(ctx, remaining)
		if err != nil {
			return nil, err
		}
		for i := range tests {
			subtotal += tests[i].EffectivePrice()
		}
	}

	booking.TestIDs = remaining
	booking.Pricing = buildPricing(subtotal, booking.Pricing.ConsultationFee)
	booking.TotalPrice = booking.Pricing.Total
	booking.PayableAmount = applyDiscount(booking.TotalPrice, booking.Discount)
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *bookingUsecase) Delete(ctx context.Context, bookingID string) error {
	return uc.BookingRepository.DeleteByID(ctx, bookingID)
}
