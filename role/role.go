package role

import (
	"errors"

	"curely/util"
)

// Role is the closed set of account role tags carried inside identity
// tokens. The tag values are part of the wire contract and are compared
// case-sensitively.
type Role string

const (
	Patient Role = "customer"
	Doctor  Role = "doctor"
	Lab     Role = "lab"
)

var ErrUnknownRole = errors.New("unknown role")

func Parse(s string) (Role, error) {
	switch Role(s) {
	case Patient, Doctor, Lab:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	_, err := Parse(string(r))
	return err == nil
}

/*
* Every role owns exactly one account collection
 */
func (r Role) Collection() string {
	switch r {
	case Patient:
		return util.PatientCollection
	case Doctor:
		return util.DoctorCollection
	case Lab:
		return util.LabCollection
	}
	return ""
}
