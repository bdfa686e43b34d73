// Package remittance provides the RemittanceRecord that turns the COD cash collected
// for one delivered shipment into a payable line for the merchant.
package remittance

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Status is the payment state of a remittance record.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Paid
)

var statusNames = map[Status]string{
	Pending: "pending",
	Paid:    "paid",
}

func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidError("remittance.status")
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("remittance.status")
	}
	return nil
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// Record is one remittance line. There is exactly one record per shipment, which keeps
// the ledger traceable to the AWB.
type Record struct {
	id               kernel.UUID
	shipmentID       kernel.UUID
	awb              string
	amount           kernel.Money
	status           Status
	deliveredAt      time.Time
	settlementDate   time.Time
	paidAt           *time.Time
	paymentReference string
	isConstructed    bool
}

// NewRecord creates a pending record for a delivered COD shipment.
func NewRecord(
	id, shipmentID kernel.UUID,
	awb string,
	amount kernel.Money,
	deliveredAt, settlementDate time.Time,
) (*Record, error) {
	awb = strings.TrimSpace(awb)

	problems := []error{id.Validate(), shipmentID.Validate()}
	if awb == "" {
		problems = append(problems, errs.NewValueIsRequiredError("awb"))
	}
	if !amount.IsPositive() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded"))
	}
	if deliveredAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("deliveredAt"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Record{
		id:             id,
		shipmentID:     shipmentID,
		awb:            awb,
		amount:         amount,
		status:         Pending,
		deliveredAt:    deliveredAt.UTC(),
		settlementDate: settlementDate.UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreRecord rebuilds a record from persistence.
func RestoreRecord(
	id, shipmentID kernel.UUID,
	awb string,
	amount kernel.Money,
	status Status,
	deliveredAt, settlementDate time.Time,
	paidAt *time.Time,
	paymentReference string,
) (*Record, error) {
	r, err := NewRecord(id, shipmentID, awb, amount, deliveredAt, settlementDate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == Paid && paidAt == nil {
		return nil, errs.NewValueIsRequiredError("paidAt")
	}
	r.status = status
	if paidAt != nil {
		at := paidAt.UTC()
		r.paidAt = &at
	}
	r.paymentReference = paymentReference
	return r, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() kernel.UUID { return r.id }
func (r *Record) ShipmentID() kernel.UUID { return r.shipmentID }
func (r *Record) AWB() string { return r.awb }
func (r *Record) Amount() kernel.Money { return r.amount }
func (r *Record) Status() Status { return r.status }
func (r *Record) DeliveredAt() time.Time { return r.deliveredAt }
func (r *Record) SettlementDate() time.Time { return r.settlementDate }
func (r *Record) PaymentReference() string { return r.paymentReference }

func (r *Record) PaidAt() *time.Time {
	if r.paidAt == nil {
		return nil
	}
	at := *r.paidAt
	return &at
}

// MarkPaid settles the record against a bank or payout reference. A record is paid once.
func (r *Record) MarkPaid(reference string, at time.Time) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValidationError(errs.NewFieldError("reference", "is required"))
	}
	if r.status != Pending {
		return errs.NewInvalidTransitionError("remittance "+r.id.String(), r.status.String(), Paid.String())
	}
	paid := at.UTC()
	r.status = Paid
	r.paidAt = &paid
	r.paymentReference = reference
	return nil
}
