// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	"fmt"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

// Unit is the unit of an angle argument.
type Unit int

const (
	Radians Unit = iota
	Degrees
)

// ParseUnit parses "rad", "radians", "deg" or "degrees". Any other string
// returns ErrInvalidArgument.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "rad", "radians":
		return Radians, nil
	case "deg", "degrees":
		return Degrees, nil
	}
	return 0, fmt.Errorf("unit %q: %w", s, ErrInvalidArgument)
}

func (u Unit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ToRadians converts the angle z, expressed in u, to radians. Both
// components are converted.
func (u Unit) ToRadians(z Complex) Complex {
	if u == Degrees {
		return Complex{kernel.DegreesToRadians(z.Re), kernel.DegreesToRadians(z.Im)}
	}
	return z
}

// Angle converts z from the named unit to radians.
func Angle(z Complex, unit string) (Complex, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Complex{}, err
	}
	return u.ToRadians(z), nil
}
