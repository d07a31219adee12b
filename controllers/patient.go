package controllers

import (
	"net/http"

	"curely/middleware"
	"curely/role"
	"curely/services"
	"curely/util"

	"github.com/gin-gonic/gin"
)

func Patient(router *gin.Engine) {
	patient := router.Group("/patient", middleware.RequireRole(role.Patient))
	patient.GET("/reports", FetchOwnReports)
	patient.GET("/fetch/:code", FetchPatientByCode)
}

/*
* Signup is public, registered before the auth boundary
 */
func CreatePatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	response, err := services.CreatePatient(c, data)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(response))
}

func FetchOwnReports(c *gin.Context) {
	code, err := middleware.CallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	reports, err := services.FetchReportsForPatient(c, code)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(reports))
}

func FetchPatientByCode(c *gin.Context) {
	code := c.Param("code")
	patient, err := services.FetchPatientByCode(c, code)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}
