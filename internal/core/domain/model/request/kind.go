package request

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Kind discriminates the two flows a Request can follow: an outgoing item
// request (inventory to college) or an incoming return (college to inventory).
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindRequest is an outgoing item flow from the central inventory to a college.
	KindRequest

	// KindReturn is an incoming item flow from a college back to the central inventory.
	KindReturn
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindRequest: "Request",
		KindReturn:  "Return",
	}
}

// KindFromString parses the persisted string form of a kind.
// Accepts exactly "Request" and "Return".
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid kind", s))
}

// Validate checks if the Kind value is valid.
// Valid kinds are KindRequest and KindReturn.
func (k Kind) Validate() error {
	if k != KindRequest && k != KindReturn {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements the fmt.Stringer interface and is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
