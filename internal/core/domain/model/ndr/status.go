package ndr

import (
	"fulfillment/internal/pkg/errs"
)

// Status is the resolution state of an NDR case.
type Status int

const (
	UnknownStatus Status = iota
	ActionRequired
	ActionRequested
	Delivered
	RTO
	Lost
)

var statusNames = map[Status]string{
	ActionRequired:  "actionRequired",
	ActionRequested: "actionRequested",
	Delivered:       "delivered",
	RTO:             "rto",
	Lost:            "lost",
}

func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidError("ndr.status")
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("ndr.status")
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == RTO || s == Lost
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// Action is the corrective instruction a merchant sends to the carrier.
type Action int

const (
	NoAction Action = iota
	ReturnToOrigin
	ReAttempt
	Hold24h
	UpdatePhone
	UpdateAddress
)

var actionNames = map[Action]string{
	ReturnToOrigin: "RTO",
	ReAttempt:      "Re-Attempt",
	Hold24h:        "Hold-24h",
	UpdatePhone:    "Update-Phone",
	UpdateAddress:  "Update-Address",
}

// ParseAction accepts exactly the names returned by Action.String.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return NoAction, errs.NewValueIsInvalidError("action")
}

// Actions lists the accepted corrective actions.
func Actions() []Action {
	return []Action{ReturnToOrigin, ReAttempt, Hold24h, UpdatePhone, UpdateAddress}
}

func (a Action) Validate() error {
	if _, ok := actionNames[a]; !ok {
		return errs.NewValueIsInvalidError("action")
	}
	return nil
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return ""
}
