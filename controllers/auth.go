package controllers

import (
	"net/http"

	"curely/services"
	"curely/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	router.POST("/auth/login", Login)
}

/*
* Here binding happens with the respective fields if any error return error
* And if no error moves to services
 */
func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	token, verification, err := services.Login(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "verification": verification})
}
