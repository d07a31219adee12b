package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"curely/models"
	"curely/otp"
	"curely/role"
	"curely/routes"
	"curely/services"
	"curely/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct{}

func (stubDirectory) PatientByMedID(_ context.Context, medID string) (*models.Patient, error) {
	if medID == "795689" {
		return &models.Patient{Code: "C0001", MedID: "795689", Name: "Priya", Mail: "p@example.com"}, nil
	}
	return nil, services.ErrNotFound
}

func (stubDirectory) DoctorByCode(_ context.Context, code string) (*models.Doctor, error) {
	if code == "D0001" {
		return &models.Doctor{Code: "D0001", Name: "Arjun", Verified: true}, nil
	}
	return nil, services.ErrNotFound
}

type stubSender struct {
	body string
}

func (s *stubSender) Send(to, subject, body string) error {
	s.body = body
	return nil
}

func setup(t *testing.T) (*gin.Engine, *stubSender) {
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	sender := &stubSender{}
	services.Access = services.NewAccessService(otp.NewStore(), stubDirectory{}, sender)

	r := gin.New()
	routes.Routes(r)
	return r, sender
}

func post(t *testing.T, r *gin.Engine, path string, tok string, payload map[string]interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doctorToken(t *testing.T) string {
	tok, err := token.Generate("D0001", role.Doctor, true)
	require.NoError(t, err)
	return tok
}

func TestSendPatientOTP_NoToken(t *testing.T) {
	r, _ := setup(t)
	w := post(t, r, "/doctor/send-patient-otp", "", map[string]interface{}{"medId": "795689"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendPatientOTP_WrongRole(t *testing.T) {
	r, _ := setup(t)

	tok, err := token.Generate("C0001", role.Patient, true)
	require.NoError(t, err)

	w := post(t, r, "/doctor/send-patient-otp", tok, map[string]interface{}{"medId": "795689"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendPatientOTP_MissingMedID(t *testing.T) {
	r, _ := setup(t)
	w := post(t, r, "/doctor/send-patient-otp", doctorToken(t), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendPatientOTP_UnknownPatient(t *testing.T) {
	r, _ := setup(t)
	w := post(t, r, "/doctor/send-patient-otp", doctorToken(t), map[string]interface{}{"medId": "111111"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOTPFlow_EndToEnd(t *testing.T) {
	r, sender := setup(t)
	tok := doctorToken(t)

	w := post(t, r, "/doctor/send-patient-otp", tok, map[string]interface{}{"medId": "795689"})
	require.Equal(t, http.StatusOK, w.Code)

	code := regexp.MustCompile(`[0-9]{6}`).FindString(sender.body)
	require.NotEmpty(t, code)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	w = post(t, r, "/doctor/verify-patient-otp", tok, map[string]interface{}{"medId": "795689", "otp": wrong})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, r, "/doctor/verify-patient-otp", tok, map[string]interface{}{"medId": "795689", "otp": code})
	assert.Equal(t, http.StatusOK, w.Code)

	// the code was consumed by the successful validation
	w = post(t, r, "/doctor/verify-patient-otp", tok, map[string]interface{}{"medId": "795689", "otp": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPatientOTP_MissingFields(t *testing.T) {
	r, _ := setup(t)
	w := post(t, r, "/doctor/verify-patient-otp", doctorToken(t), map[string]interface{}{"medId": "795689"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
