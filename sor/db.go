// Package sor is the bundled reference implementation of the appointment
// system of record: gorm-backed rows behind the same HTTP contract the
// engine's remote client speaks. In demo/standalone mode the engine points
// at this service in-process; in production the base URL points elsewhere
// and this package stays idle.
//
// The remote schema is deliberately narrower than the local one: no
// patient contact details, no symptom objects. That asymmetry is why the
// local record stays the detail-holder after promotion.
package sor

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects and migrates. The handle is returned to the caller; there
// is no package-level connection.
func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Doctor{}, &Appointment{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Seed loads a small doctor roster for demo mode. Idempotent.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	roster := []Doctor{
		{Name: "Dr. Asha Rao", Specialization: "Cardiology", Rating: 4.8, ReviewCount: 212, Location: "Downtown Clinic", ConsultationFee: 120, Slots: "09:00,10:00,11:30,15:00"},
		{Name: "Dr. Ben Carter", Specialization: "Dermatology", Rating: 4.5, ReviewCount: 98, Location: "Riverside Medical", ConsultationFee: 90, Slots: "10:00,13:00,16:00"},
		{Name: "Dr. Carla Mendes", Specialization: "Neurology", Rating: 4.7, ReviewCount: 154, Location: "Downtown Clinic", ConsultationFee: 150, Slots: "08:30,11:00,14:30"},
		{Name: "Dr. David Osei", Specialization: "General Physician", Rating: 4.9, ReviewCount: 301, Location: "Hillside Practice", ConsultationFee: 60, Slots: "09:00,09:30,10:00,10:30,11:00"},
		{Name: "Dr. Elena Petrova", Specialization: "Pulmonology", Rating: 4.4, ReviewCount: 76, Location: "Riverside Medical", ConsultationFee: 110, Slots: "12:00,14:00,17:00"},
		{Name: "Dr. Farid Khan", Specialization: "Gastroenterology", Rating: 4.6, ReviewCount: 133, Location: "Hillside Practice", ConsultationFee: 130, Slots: "09:30,11:30,15:30"},
		{Name: "Dr. Grace Lin", Specialization: "Psychiatry", Rating: 4.8, ReviewCount: 188, Location: "Downtown Clinic", ConsultationFee: 140, Slots: "10:00,12:00,16:30"},
		{Name: "Dr. Henry Adeyemi", Specialization: "Orthopedics", Rating: 4.3, ReviewCount: 67, Location: "Riverside Medical", ConsultationFee: 100, Slots: "08:00,10:30,13:30"},
		{Name: "Dr. Irene Kovacs", Specialization: "Internal Medicine", Rating: 4.7, ReviewCount: 240, Location: "Hillside Practice", ConsultationFee: 95, Slots: "09:00,11:00,14:00,16:00"},
	}
	return db.Create(&roster).Error
}
