package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyNDRActionCommandIsNotConstructed = errors.New(
	"ApplyNDRActionCommand must be created via NewApplyNDRActionCommand constructor",
)

// ApplyNDRActionCommand carries the merchant's corrective action for a failed delivery.
// An unknown action name and a blank reason are reported together in one
// errs.ValidationError.
type ApplyNDRActionCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	action ndr.Action
	reason string

	guard guard.ConstructorGuard
}

func NewApplyNDRActionCommand(caseID kernel.UUID, action, reason string) (ApplyNDRActionCommand, error) {
	if err := caseID.Validate(); err != nil {
		return ApplyNDRActionCommand{}, err
	}

	var fields []errs.FieldError
	parsed, err := ndr.ParseAction(strings.TrimSpace(action))
	if err != nil {
		fields = append(fields, errs.NewFieldError("action", "must be one of "+actionNames()))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		fields = append(fields, errs.NewFieldError("reason", "is required"))
	}
	if len(fields) > 0 {
		return ApplyNDRActionCommand{}, errs.NewValidationError(fields...)
	}

	return ApplyNDRActionCommand{
		caseID: caseID,
		action: parsed,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func actionNames() string {
	names := make([]string, 0, len(ndr.Actions()))
	for _, a := range ndr.Actions() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func (c ApplyNDRActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyNDRActionCommandIsNotConstructed)
}

func (c ApplyNDRActionCommand) CaseID() kernel.UUID { return c.caseID }
func (c ApplyNDRActionCommand) Action() ndr.Action { return c.action }
func (c ApplyNDRActionCommand) Reason() string { return c.reason }
