package util

import "github.com/gin-gonic/gin"

func SuccessResponse(msg interface{}) gin.H {
	return gin.H{"msg": msg}
}

func FailedResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
