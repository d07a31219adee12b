package controllers

import (
	"net/http"

	"curely/services"
	"curely/util"

	"github.com/gin-gonic/gin"
)

/*
* Signup is public, registered before the auth boundary
 */
func CreateLab(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	response, err := services.CreateLab(c, data)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(response))
}
