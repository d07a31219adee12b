package services

import (
	"context"
	"errors"
	"log"
	"time"

	"curely/config"
	"curely/models"
	"curely/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* The patient must exist before a report is written against its
* medical id
 */
func CreateReport(c *gin.Context, doctorID string, data map[string]interface{}) (string, error) {
	for _, key := range []string{"medId", "title", "findings"} {
		if err := getTrimmedString(data, key); err != nil {
			log.Println("error from getTrimmed string for", key, ":", err)
			return "", errors.New(key + " is required")
		}
	}

	medID := data["medId"].(string)
	if _, err := NewDirectory().PatientByMedID(c, medID); err != nil {
		return "", err
	}

	report := models.Report{
		Code:      uuid.NewString(),
		MedID:     medID,
		DoctorID:  doctorID,
		Title:     data["title"].(string),
		Findings:  data["findings"].(string),
		CreatedAt: time.Now(),
		CreatedBy: doctorID,
	}

	if _, err := config.InsertOne(c, config.OpenCollection(util.ReportCollection), report); err != nil {
		log.Println("Error inserting report:", err)
		return "", err
	}
	return report.Code, nil
}

func FetchReportsByMedID(ctx context.Context, medID string) ([]models.Report, error) {
	if _, err := NewDirectory().PatientByMedID(ctx, medID); err != nil {
		return nil, err
	}

	coll := config.OpenCollection(util.ReportCollection)
	var reports []models.Report
	if err := config.FindAll(ctx, coll, bson.M{"medId": medID}, &reports); err != nil {
		log.Println("Error from the findAll function:", err)
		return nil, err
	}
	return reports, nil
}

/*
* Patients read their own reports through their account code
 */
func FetchReportsForPatient(ctx context.Context, patientCode string) ([]models.Report, error) {
	patient, err := FetchPatientByCode(ctx, patientCode)
	if err != nil {
		return nil, err
	}
	return FetchReportsByMedID(ctx, patient.MedID)
}
