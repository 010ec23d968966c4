package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/JORO-NIMO/rms/app/config"
	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/models"
	"github.com/JORO-NIMO/rms/app/routes/auth"
)

func main() {
	schoolCode := flag.String("school-code", "DEMO", "4-character school code")
	schoolName := flag.String("school-name", "Demo Secondary School", "school name")
	email := flag.String("email", "admin@rms.local", "admin email")
	password := flag.String("password", "admin123", "admin password")
	name := flag.String("name", "Admin", "admin display name")
	flag.Parse()

	config.Init()
	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	school, err := database.GetSchoolByCode(db, *schoolCode)
	if err == sql.ErrNoRows {
		school = &models.School{Code: *schoolCode, Name: *schoolName}
		if err := database.CreateSchool(db, school); err != nil {
			log.Fatal("Failed to create school: ", err)
		}
		fmt.Printf("School created: %s (%s)\n", school.Name, school.Code)
	} else if err != nil {
		log.Fatal("Failed to look up school: ", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{
		Email:    *email,
		Password: hashed,
		Name:     *name,
		Role:     string(models.AdminRole),
		SchoolID: school.ID,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	fmt.Printf("User created successfully: %s (%s) at %s\n", user.Name, user.Email, school.Code)
}
