package routes

import (
	"curely/controllers"
	"curely/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	r.POST("/patient/create", controllers.CreatePatient)
	r.POST("/doctor/create", controllers.CreateDoctor)
	r.POST("/lab/create", controllers.CreateLab)

	//privateroutes
	r.Use(middleware.JWTAuth())
	controllers.Doctor(r)
	controllers.Patient(r)
}
