package kernel

import (
	"fmt"

	"kioskhub/internal/pkg/errs"
)

// KioskType partitions the physical kiosk network: sweet stations and juice
// stations. Items carry the type of the station that prepares them and orders
// record the type of the kiosk that created them.
type KioskType string

const (
	KioskTypeSweet KioskType = "sweet"
	KioskTypeJuice KioskType = "juice"
)

// ParseKioskType validates a raw string against the known kiosk types.
func ParseKioskType(raw string) (KioskType, error) {
	t := KioskType(raw)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the type is one of the known kiosk types.
func (t KioskType) Validate() error {
	switch t {
	case KioskTypeSweet, KioskTypeJuice:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kiosk_type",
			fmt.Errorf("%q must be either %q or %q", string(t), KioskTypeSweet, KioskTypeJuice))
	}
}

func (t KioskType) String() string {
	return string(t)
}
