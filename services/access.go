package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"curely/mail"
	"curely/otp"
)

var (
	ErrOtpInvalid = errors.New("invalid OTP")
	ErrOtpExpired = errors.New("OTP expired. Please request a new OTP")
)

// Access is the process-wide verification service, wired in main.
var Access *AccessService

// AccessService gates a doctor's access to a patient's reports behind
// a fresh OTP challenge delivered to the patient's mail address. The
// store keeps at most one live code per patient; re-requesting simply
// overwrites the pending one.
type AccessService struct {
	store  *otp.Store
	dir    Directory
	sender mail.Sender
}

func NewAccessService(store *otp.Store, dir Directory, sender mail.Sender) *AccessService {
	return &AccessService{store: store, dir: dir, sender: sender}
}

/*
* Resolve the doctor and the patient before touching the store
* Issue the code, then mail it to the patient
* If the mail fails drop the stored code again so no undeliverable
* code stays live
 */
func (s *AccessService) SendPatientOTP(ctx context.Context, doctorID string, medID string) (string, error) {
	doctor, err := s.dir.DoctorByCode(ctx, doctorID)
	if err != nil {
		return "", err
	}
	patient, err := s.dir.PatientByMedID(ctx, medID)
	if err != nil {
		return "", err
	}

	code, err := s.store.Issue(patient.Mail)
	if err != nil {
		return "", err
	}

	subject := "Curely record access verification"
	body := fmt.Sprintf("Hello %s,\n\nDr. %s has requested access to your medical reports.\nYour verification OTP is: %s\n\nIt is valid for 10 minutes.\n\nThank you!", patient.Name, doctor.Name, code)

	if err := s.sender.Send(patient.Mail, subject, body); err != nil {
		log.Println("OTP email failed:", err)
		s.store.Drop(patient.Mail)
		return "", ErrDelivery
	}

	return "OTP sent to patient", nil
}

/*
* Resolve the patient, then ask the store to validate and consume
* A mismatch keeps the code pending so the doctor can retry
 */
func (s *AccessService) VerifyPatientOTP(ctx context.Context, doctorID string, medID string, code string) (string, error) {
	patient, err := s.dir.PatientByMedID(ctx, medID)
	if err != nil {
		return "", err
	}

	switch err := s.store.Validate(patient.Mail, code); {
	case err == nil:
		return "OTP verified successfully", nil
	case errors.Is(err, otp.ErrExpired):
		return "", ErrOtpExpired
	case errors.Is(err, otp.ErrMismatch), errors.Is(err, otp.ErrNoPending):
		return "", ErrOtpInvalid
	default:
		return "", err
	}
}
