package controllers

import (
	"errors"
	"net/http"

	"curely/middleware"
	"curely/role"
	"curely/services"
	"curely/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.Engine) {
	doctor := router.Group("/doctor", middleware.RequireRole(role.Doctor))
	doctor.POST("/send-patient-otp", SendPatientOTP)
	doctor.POST("/verify-patient-otp", VerifyPatientOTP)
	doctor.POST("/patient-reports", CreateReport)
	doctor.GET("/patient-reports/:medId", FetchPatientReports)
	doctor.GET("/fetch/:code", FetchDoctorByCode)
}

/*
* Signup is public, registered before the auth boundary
 */
func CreateDoctor(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	response, err := services.CreateDoctor(c, data)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(response))
}

/*
* Bind medId and pass with the caller's doctor id to the service
 */
func SendPatientOTP(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	medID, ok := data["medId"].(string)
	if !ok || medID == "" {
		c.JSON(http.StatusBadRequest, util.FailedResponse(errors.New(util.MEDID_NOT_PROVIDED)))
		return
	}

	doctorID, err := middleware.CallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}

	msg, err := services.Access.SendPatientOTP(c, doctorID, medID)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

/*
* Bind medId and otp, both are required
 */
func VerifyPatientOTP(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	medID, ok := data["medId"].(string)
	if !ok || medID == "" {
		c.JSON(http.StatusBadRequest, util.FailedResponse(errors.New(util.MEDID_NOT_PROVIDED)))
		return
	}
	code, ok := data["otp"].(string)
	if !ok || code == "" {
		c.JSON(http.StatusBadRequest, util.FailedResponse(errors.New(util.OTP_NOT_PROVIDED)))
		return
	}

	doctorID, err := middleware.CallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}

	msg, err := services.Access.VerifyPatientOTP(c, doctorID, medID, code)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func CreateReport(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	doctorID, err := middleware.CallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}

	code, err := services.CreateReport(c, doctorID, data)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchPatientReports(c *gin.Context) {
	medID := c.Param("medId")
	reports, err := services.FetchReportsByMedID(c, medID)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(reports))
}

func FetchDoctorByCode(c *gin.Context) {
	code := c.Param("code")
	doctor, err := services.FetchDoctorByCode(c, code)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctor))
}
