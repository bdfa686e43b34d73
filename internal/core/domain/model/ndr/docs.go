// Package ndr implements the non-delivery report workflow: one Case per shipment,
// opened on the first failed delivery attempt and closed by the carrier's final outcome.
//
// Rules:
//   - A corrective action can be applied only in actionRequired, with a non-empty reason.
//   - actionRequested is left only through carrier reports: a new failure returns the
//     case to actionRequired, a final outcome closes it.
//   - lost is reachable from any open state; closed cases never reopen.
//   - Every change is appended to the case history with its reason and timestamp.
package ndr
