package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"curely/models"
	"curely/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	patients map[string]*models.Patient
	doctors  map[string]*models.Doctor
}

func (d *fakeDirectory) PatientByMedID(_ context.Context, medID string) (*models.Patient, error) {
	if p, ok := d.patients[medID]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (d *fakeDirectory) DoctorByCode(_ context.Context, code string) (*models.Doctor, error) {
	if doc, ok := d.doctors[code]; ok {
		return doc, nil
	}
	return nil, ErrNotFound
}

type fakeSender struct {
	to   string
	body string
	err  error
}

func (s *fakeSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.to = to
	s.body = body
	return nil
}

var codePattern = regexp.MustCompile(`[0-9]{6}`)

func testAccess(sender *fakeSender) (*AccessService, *otp.Store) {
	store := otp.NewStore()
	dir := &fakeDirectory{
		patients: map[string]*models.Patient{
			"795689": {Code: "C0001", MedID: "795689", Name: "Priya", Mail: "p@example.com"},
		},
		doctors: map[string]*models.Doctor{
			"D0001": {Code: "D0001", Name: "Arjun", Verified: true},
		},
	}
	return NewAccessService(store, dir, sender), store
}

func TestSendPatientOTP_DeliversCode(t *testing.T) {
	sender := &fakeSender{}
	svc, store := testAccess(sender)

	msg, err := svc.SendPatientOTP(context.Background(), "D0001", "795689")
	require.NoError(t, err)
	assert.Equal(t, "OTP sent to patient", msg)
	assert.Equal(t, "p@example.com", sender.to)

	// the mailed code is the stored one
	code := codePattern.FindString(sender.body)
	require.NotEmpty(t, code)
	assert.NoError(t, store.Validate("p@example.com", code))
}

func TestSendPatientOTP_UnknownPatient(t *testing.T) {
	svc, _ := testAccess(&fakeSender{})

	_, err := svc.SendPatientOTP(context.Background(), "D0001", "000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendPatientOTP_UnknownDoctor(t *testing.T) {
	svc, _ := testAccess(&fakeSender{})

	_, err := svc.SendPatientOTP(context.Background(), "D9999", "795689")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendPatientOTP_DeliveryFailureRollsBack(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	svc, store := testAccess(sender)

	_, err := svc.SendPatientOTP(context.Background(), "D0001", "795689")
	assert.ErrorIs(t, err, ErrDelivery)

	// the stored code was dropped, nothing is pending
	assert.ErrorIs(t, store.Validate("p@example.com", "123456"), otp.ErrNoPending)
}

func TestVerifyPatientOTP_FullCycle(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := testAccess(sender)

	_, err := svc.SendPatientOTP(context.Background(), "D0001", "795689")
	require.NoError(t, err)
	code := codePattern.FindString(sender.body)
	require.NotEmpty(t, code)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	// wrong code is rejected but the record survives for a retry
	_, err = svc.VerifyPatientOTP(context.Background(), "D0001", "795689", wrong)
	assert.ErrorIs(t, err, ErrOtpInvalid)

	msg, err := svc.VerifyPatientOTP(context.Background(), "D0001", "795689", code)
	require.NoError(t, err)
	assert.Equal(t, "OTP verified successfully", msg)

	// the code was consumed, replaying it fails
	_, err = svc.VerifyPatientOTP(context.Background(), "D0001", "795689", code)
	assert.ErrorIs(t, err, ErrOtpInvalid)
}

func TestVerifyPatientOTP_UnknownPatient(t *testing.T) {
	svc, _ := testAccess(&fakeSender{})

	_, err := svc.VerifyPatientOTP(context.Background(), "D0001", "111111", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendPatientOTP_ReissueInvalidatesOldCode(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := testAccess(sender)

	_, err := svc.SendPatientOTP(context.Background(), "D0001", "795689")
	require.NoError(t, err)
	first := codePattern.FindString(sender.body)

	_, err = svc.SendPatientOTP(context.Background(), "D0001", "795689")
	require.NoError(t, err)
	second := codePattern.FindString(sender.body)

	if first != second {
		_, err = svc.VerifyPatientOTP(context.Background(), "D0001", "795689", first)
		assert.ErrorIs(t, err, ErrOtpInvalid)
	}

	msg, err := svc.VerifyPatientOTP(context.Background(), "D0001", "795689", second)
	require.NoError(t, err)
	assert.Equal(t, "OTP verified successfully", msg)
}
