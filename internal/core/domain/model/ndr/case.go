package ndr

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrCaseIsNotConstructed = errors.New("Case must be created via OpenCase constructor")

// Transition is one audited state change of a case.
type Transition struct {
	From   Status
	To     Status
	Action Action
	Reason string
	At     time.Time
}

// Case tracks the delivery failures of one shipment and the merchant's response.
//
// States:
//
//	actionRequired ──ApplyAction──> actionRequested
//	      ^                               │
//	      └────── carrier failure ────────┘
//
//	any non-terminal ──carrier──> delivered | rto | lost
//
// The workflow never advances past actionRequested by itself: only carrier reports
// move a case on from there.
type Case struct {
	id            kernel.UUID
	shipmentID    kernel.UUID
	failureReason string
	attempts      int
	status        Status
	action        Action
	actionReason  string
	history       []Transition
	openedAt      time.Time
	updatedAt     time.Time
	isConstructed bool
}

// OpenCase starts a case in actionRequired after the first failed delivery attempt.
func OpenCase(id, shipmentID kernel.UUID, failureReason string, at time.Time) (*Case, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}
	c := &Case{
		id:            id,
		shipmentID:    shipmentID,
		failureReason: strings.TrimSpace(failureReason),
		attempts:      1,
		openedAt:      at.UTC(),
		isConstructed: true,
	}
	c.transition(ActionRequired, NoAction, c.failureReason, at)
	return c, nil
}

// RestoreCase rebuilds a case from persistence, history included.
func RestoreCase(
	id, shipmentID kernel.UUID,
	failureReason string,
	attempts int,
	status Status,
	action Action,
	actionReason string,
	history []Transition,
	openedAt, updatedAt time.Time,
) (*Case, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 1, "unbounded")
	}
	if action != NoAction {
		if err := action.Validate(); err != nil {
			return nil, err
		}
	}
	h := make([]Transition, len(history))
	copy(h, history)
	return &Case{
		id:            id,
		shipmentID:    shipmentID,
		failureReason: failureReason,
		attempts:      attempts,
		status:        status,
		action:        action,
		actionReason:  actionReason,
		history:       h,
		openedAt:      openedAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}, nil
}

func (c *Case) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCaseIsNotConstructed
	}
	return nil
}

func (c *Case) ID() kernel.UUID { return c.id }
func (c *Case) ShipmentID() kernel.UUID { return c.shipmentID }
func (c *Case) FailureReason() string { return c.failureReason }
func (c *Case) Attempts() int { return c.attempts }
func (c *Case) Status() Status { return c.status }
func (c *Case) Action() Action { return c.action }
func (c *Case) ActionReason() string { return c.actionReason }
func (c *Case) OpenedAt() time.Time { return c.openedAt }
func (c *Case) UpdatedAt() time.Time { return c.updatedAt }

// History returns the audit trail, oldest first.
func (c *Case) History() []Transition {
	out := make([]Transition, len(c.history))
	copy(out, c.history)
	return out
}

// ApplyAction records the merchant's corrective action. Input problems are reported as
// a ValidationError; a case that is not waiting for an action yields an
// InvalidTransitionError and is left unchanged.
func (c *Case) ApplyAction(action Action, reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)

	var fields []errs.FieldError
	if action.Validate() != nil {
		fields = append(fields, errs.NewFieldError("action", "must be one of RTO, Re-Attempt, Hold-24h, Update-Phone, Update-Address"))
	}
	if reason == "" {
		fields = append(fields, errs.NewFieldError("reason", "is required"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}

	if c.status != ActionRequired {
		return errs.NewInvalidTransitionError(c.entity(), c.status.String(), ActionRequested.String())
	}
	c.action = action
	c.actionReason = reason
	c.transition(ActionRequested, action, reason, at)
	return nil
}

// RecordFailure registers another failed attempt. A case awaiting the carrier's response
// to an action goes back to actionRequired so the merchant can decide again.
func (c *Case) RecordFailure(reason string, at time.Time) error {
	if c.status.IsTerminal() {
		return errs.NewInvalidTransitionError(c.entity(), c.status.String(), ActionRequired.String())
	}
	c.attempts++
	c.failureReason = strings.TrimSpace(reason)
	c.transition(ActionRequired, NoAction, c.failureReason, at)
	return nil
}

// Resolve closes the case with a carrier outcome. Repeating the current outcome is a
// no-op; any other change to a closed case is rejected.
func (c *Case) Resolve(outcome Status, reason string, at time.Time) (changed bool, err error) {
	if !outcome.IsTerminal() {
		return false, errs.NewValueIsInvalidError("outcome")
	}
	if c.status == outcome {
		return false, nil
	}
	if c.status.IsTerminal() {
		return false, errs.NewInvalidTransitionError(c.entity(), c.status.String(), outcome.String())
	}
	c.transition(outcome, NoAction, strings.TrimSpace(reason), at)
	return true, nil
}

func (c *Case) transition(to Status, action Action, reason string, at time.Time) {
	c.history = append(c.history, Transition{
		From:   c.status,
		To:     to,
		Action: action,
		Reason: reason,
		At:     at.UTC(),
	})
	c.status = to
	c.updatedAt = at.UTC()
}

func (c *Case) entity() string {
	return "ndr case " + c.id.String()
}
