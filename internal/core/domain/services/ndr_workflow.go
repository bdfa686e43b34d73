package services

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/shipment"
)

// CarrierReportOutcome describes what one carrier report changed.
type CarrierReportOutcome struct {
	PreviousStatus  shipment.Status
	ShipmentChanged bool
	// Case is the shipment's open case after the report, nil when there is none.
	Case        *ndr.Case
	CaseOpened  bool
	CaseChanged bool
}

// NDRWorkflow applies carrier reports to a shipment and its NDR case together.
//
// Carrier report handling:
//   - delivery-failed opens a case, or records another attempt on the open one
//   - delivered, rto and lost close the open case with the same outcome
//   - in-transit only moves the shipment
//
// Corrective actions are applied directly on the case with ndr.Case.ApplyAction.
type NDRWorkflow struct{}

func NewNDRWorkflow() NDRWorkflow {
	return NDRWorkflow{}
}

// HandleCarrierReport applies report to s and to openCase (nil when the shipment has no
// open case). newCaseID is used only if a case has to be opened. If the shipment rejects
// the report, nothing is changed.
func (w NDRWorkflow) HandleCarrierReport(
	s *shipment.Shipment,
	openCase *ndr.Case,
	report shipment.CarrierStatus,
	reason string,
	newCaseID kernel.UUID,
	at time.Time,
) (CarrierReportOutcome, error) {
	out := CarrierReportOutcome{PreviousStatus: s.Status(), Case: openCase}

	changed, err := s.ApplyCarrierStatus(report, at)
	if err != nil {
		return CarrierReportOutcome{}, err
	}
	out.ShipmentChanged = changed

	switch report {
	case shipment.CarrierDeliveryFailed:
		if openCase == nil {
			c, openErr := ndr.OpenCase(newCaseID, s.ID(), reason, at)
			if openErr != nil {
				return CarrierReportOutcome{}, openErr
			}
			out.Case = c
			out.CaseOpened = true
			out.CaseChanged = true
			return out, nil
		}
		if err = openCase.RecordFailure(reason, at); err != nil {
			return CarrierReportOutcome{}, err
		}
		out.CaseChanged = true
	case shipment.CarrierDelivered, shipment.CarrierRTO, shipment.CarrierLost:
		if openCase == nil {
			return out, nil
		}
		if out.CaseChanged, err = openCase.Resolve(outcomeFor(report), reason, at); err != nil {
			return CarrierReportOutcome{}, err
		}
	}
	return out, nil
}

func outcomeFor(report shipment.CarrierStatus) ndr.Status {
	switch report {
	case shipment.CarrierDelivered:
		return ndr.Delivered
	case shipment.CarrierRTO:
		return ndr.RTO
	default:
		return ndr.Lost
	}
}
