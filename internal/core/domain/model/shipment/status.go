package shipment

import (
	"fulfillment/internal/pkg/errs"
)

// Status is the carrier-facing lifecycle state of a shipment.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	InTransit
	Delivered
	RTO
	Lost
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	InTransit: "in-transit",
	Delivered: "delivered",
	RTO:       "rto",
	Lost:      "lost",
	Cancelled: "cancelled",
}

func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidError("shipment.status")
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("shipment.status")
	}
	return nil
}

// IsTerminal reports whether no further carrier update can move the shipment.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == RTO || s == Lost || s == Cancelled
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// CarrierStatus is the status vocabulary of carrier webhook events. It differs from
// Status: a failed delivery attempt is an event, not a shipment state.
type CarrierStatus int

const (
	UnknownCarrierStatus CarrierStatus = iota
	CarrierInTransit
	CarrierDeliveryFailed
	CarrierDelivered
	CarrierRTO
	CarrierLost
)

var carrierStatusNames = map[CarrierStatus]string{
	CarrierInTransit:      "in-transit",
	CarrierDeliveryFailed: "delivery-failed",
	CarrierDelivered:      "delivered",
	CarrierRTO:            "rto",
	CarrierLost:           "lost",
}

func ParseCarrierStatus(name string) (CarrierStatus, error) {
	for s, n := range carrierStatusNames {
		if n == name {
			return s, nil
		}
	}
	return UnknownCarrierStatus, errs.NewValueIsInvalidError("carrierStatus")
}

func (s CarrierStatus) Validate() error {
	if _, ok := carrierStatusNames[s]; !ok {
		return errs.NewValueIsInvalidError("carrierStatus")
	}
	return nil
}

func (s CarrierStatus) String() string {
	if n, ok := carrierStatusNames[s]; ok {
		return n
	}
	return "unknown"
}

// target maps a carrier report to the shipment status it implies.
func (s CarrierStatus) target() Status {
	switch s {
	case CarrierInTransit, CarrierDeliveryFailed:
		return InTransit
	case CarrierDelivered:
		return Delivered
	case CarrierRTO:
		return RTO
	case CarrierLost:
		return Lost
	default:
		return UnknownStatus
	}
}
