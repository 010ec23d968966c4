package models

// Gender defines the accepted gender values for a student.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// UserRole defines the roles a user can hold.
type UserRole string

const (
	AdminRole   UserRole = "admin"
	TeacherRole UserRole = "teacher"
)
