package util

const (
	EMAIL_NOT_PROVIDED    = "email is required"
	PASSWORD_NOT_PROVIDED = "password is required"
	ROLE_NOT_PROVIDED     = "role is required"
	MEDID_NOT_PROVIDED    = "medId is required"
	OTP_NOT_PROVIDED      = "otp is required"
)

const (
	LoginCollection   = "LOGIN"
	PatientCollection = "CUSTOMER"
	DoctorCollection  = "DOCTOR"
	LabCollection     = "LAB"
	ReportCollection  = "REPORT"
)
