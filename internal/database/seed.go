package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/utils"
)

// seedHalls is the fixed hall reference data.  Short codes double as
// the target of the student-id prefix map in utils/studentid.go.
var seedHalls = []model.Hall{
	{Name: "Basha Shaheed Abdus Salam Hall", ShortCode: "ASH", Category: "Male", Capacity: 600, EstablishedYear: 2010,
		ImageURL: "https://nstu.edu.bd/assets/images/accommodation/ASH.jpg"},
	{Name: "Bir Muktijuddha Abdul Malek Ukil Hall", ShortCode: "BMAU", Category: "Male", Capacity: 550, EstablishedYear: 2012,
		ImageURL: "https://nstu.edu.bd/assets/images/accommodation/AMU.jpg"},
	{Name: "Hazrat Bibi Khadiza Hall", ShortCode: "HBK", Category: "Female", Capacity: 500, EstablishedYear: 2008,
		ImageURL: "https://nstu.edu.bd/assets/images/accommodation/HBK.jpg"},
	{Name: "July Shaheed Smriti Chhatri Hall", ShortCode: "JSH", Category: "Female", Capacity: 450, EstablishedYear: 2024,
		ImageURL: "https://nstu.edu.bd/assets/images/accommodation/JSH.jpg"},
	{Name: "Nabab Foyzunnessa Choudhurani Hall", ShortCode: "NFH", Category: "Female", Capacity: 480, EstablishedYear: 2018,
		ImageURL: "https://nstu.edu.bd/assets/images/accommodation/NFH.jpg"},
}

// defaultFormSchema is the admission form every deployment starts
// with until an admin replaces it.
var defaultFormSchema = []model.FieldSpec{
	{ID: "f1", Label: "Full Name", Type: model.FieldText, Required: true, Score: 0},
	{ID: "f2", Label: "Student ID", Type: model.FieldText, Required: true, Score: 0},
	{ID: "f3", Label: "Department", Type: model.FieldDropdown, Options: []string{"CSE", "EEE", "ICE", "BBA"}, Required: true, Score: 0},
	{ID: "f4", Label: "Session (e.g., 2019-20)", Type: model.FieldText, Required: true, Score: 0},
	{ID: "f5", Label: "Date of Birth", Type: model.FieldDate},
	{ID: "f6", Label: "Guardian Contact", Type: model.FieldText},
	{ID: "f7", Label: "Quota", Type: model.FieldCheckbox, Options: []string{"Freedom Fighter", "Tribal", "None"}},
}

// Seed populates an empty database with halls, a small seat map per
// hall (floors 1-2, rooms 101-103, two beds each), default staff
// accounts, a demo student and the default admission form.  It is a
// no-op when halls already exist.
func Seed(ctx context.Context, db *sql.DB, bcryptCost int) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM halls").Scan(&count); err != nil {
		return fmt.Errorf("seed: count halls: %w", err)
	}
	if count > 0 {
		return nil
	}

	hallIDs := make(map[string]uint64, len(seedHalls))
	for _, h := range seedHalls {
		res, err := db.ExecContext(ctx,
			`INSERT INTO halls (name, short_code, category, capacity, established_year, image_url) VALUES (?,?,?,?,?,?)`,
			h.Name, h.ShortCode, h.Category, h.Capacity, h.EstablishedYear, h.ImageURL)
		if err != nil {
			return fmt.Errorf("seed: insert hall %s: %w", h.ShortCode, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		hallIDs[h.ShortCode] = uint64(id)
	}

	for _, h := range seedHalls {
		hallID := hallIDs[h.ShortCode]
		for floor := 1; floor <= 2; floor++ {
			for room := 101; room <= 103; room++ {
				for bed := 1; bed <= 2; bed++ {
					if _, err := db.ExecContext(ctx,
						`INSERT INTO seats (hall_id, floor, room, bed, status) VALUES (?,?,?,?,?)`,
						hallID, floor, room, bed, model.SeatAvailable); err != nil {
						return fmt.Errorf("seed: insert seat: %w", err)
					}
				}
			}
		}
	}

	ash := hallIDs["ASH"]
	bmau := hallIDs["BMAU"]
	accounts := []struct {
		name, email, password, role string
		studentID                   *string
		hallID                      *uint64
	}{
		{"Hall Admin (ASH)", "admin@nstu.edu.bd", "admin123", model.RoleAdmin, nil, &ash},
		{"Exam Controller", "exam@nstu.edu.bd", "exam123", model.RoleExamController, nil, &ash},
		{"Hall Staff", "staff@nstu.edu.bd", "staff123", model.RoleStaff, nil, &ash},
	}
	demoStudentID := "MUH2025-0001"
	accounts = append(accounts, struct {
		name, email, password, role string
		studentID                   *string
		hallID                      *uint64
	}{"Test Student", "student1@student.nstu.edu.bd", "student123", model.RoleStudent, &demoStudentID, &bmau})

	for _, a := range accounts {
		hash, err := utils.HashPassword(a.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", a.email, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash, role, student_id, hall_id) VALUES (?,?,?,?,?,?)`,
			a.name, a.email, hash, a.role, a.studentID, a.hallID); err != nil {
			return fmt.Errorf("seed: insert user %s: %w", a.email, err)
		}
	}

	schema, err := json.Marshal(defaultFormSchema)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO forms (name, active, hall_id, schema_json) VALUES (?,?,NULL,?)`,
		"Hall Admission Form", true, string(schema)); err != nil {
		return fmt.Errorf("seed: insert default form: %w", err)
	}

	// Global notice, visible to every hall.
	if _, err := db.ExecContext(ctx,
		`INSERT INTO notifications (title, body, hall_id) VALUES (?,?,NULL)`,
		"Welcome to UniHall", "Admission form is now open."); err != nil {
		return fmt.Errorf("seed: insert notification: %w", err)
	}
	return nil
}
