package notification

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Kind identifies which collaborator call a notification replays.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTruckBusy marks a truck unavailable in the resource service.
	KindTruckBusy
	// KindTruckFree marks a truck available in the resource service.
	KindTruckFree
	// KindRequestScheduled pushes estimated totals and moves the request to Scheduled.
	KindRequestScheduled
	// KindRequestInTransit moves the request to InTransit.
	KindRequestInTransit
	// KindRequestDelivered pushes real totals and moves the request to Delivered.
	KindRequestDelivered
	// KindContainerInTransit marks the container as departed from a warehouse.
	KindContainerInTransit
	// KindContainerInWarehouse marks the container as stored at a warehouse.
	KindContainerInWarehouse
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:              "Unknown",
		KindTruckBusy:            "TruckBusy",
		KindTruckFree:            "TruckFree",
		KindRequestScheduled:     "RequestScheduled",
		KindRequestInTransit:     "RequestInTransit",
		KindRequestDelivered:     "RequestDelivered",
		KindContainerInTransit:   "ContainerInTransit",
		KindContainerInWarehouse: "ContainerInWarehouse",
	}
}

// ParseKind converts a persisted kind name back into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range getKindStrings() {
		if name == s && k != KindUnknown {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid notification kind", s))
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k <= KindUnknown || k > KindContainerInWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid notification kind", k))
	}
	return nil
}
