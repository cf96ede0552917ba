package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Role-specific payloads. Exactly one of User.Student/Faculty/Admin is set,
// selected by User.Role.

type StudentProfile struct {
	StudentID  string `bson:"student_id" json:"studentId"`
	Department string `bson:"department" json:"department"`
	Year       string `bson:"year" json:"year"`
}

type FacultyProfile struct {
	EmployeeID  string `bson:"employee_id" json:"employeeId"`
	Department  string `bson:"department" json:"department"`
	Designation string `bson:"designation" json:"designation"`
}

type AdminProfile struct {
	Permissions []string `bson:"permissions" json:"permissions"`
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	Contact      string        `bson:"contact" json:"contact"`
	Role         Role          `bson:"role" json:"role"`
	ProfilePhoto string        `bson:"profile_photo,omitempty" json:"profilePhoto,omitempty"`
	Bio          string        `bson:"bio" json:"bio"`
	Skills       []string      `bson:"skills" json:"skills"`
	Campus       string        `bson:"campus" json:"campus"`

	Student *StudentProfile `bson:"student,omitempty" json:"student,omitempty"`
	Faculty *FacultyProfile `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Admin   *AdminProfile   `bson:"admin,omitempty" json:"admin,omitempty"`

	Followers []bson.ObjectID `bson:"followers" json:"followers"`
	Following []bson.ObjectID `bson:"following" json:"following"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Department returns the department for roles that carry one.
func (u *User) Department() string {
	switch {
	case u.Student != nil:
		return u.Student.Department
	case u.Faculty != nil:
		return u.Faculty.Department
	}
	return ""
}
