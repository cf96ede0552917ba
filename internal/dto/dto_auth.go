package dto

// ===== Requests =====

// RegisterRequest is bound from the multipart registration form. The optional
// profilePhoto file part is handled separately by the handler.
type RegisterRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Contact  string `form:"contact" json:"contact"`
	Role     string `form:"role" json:"role"`

	// student
	StudentID  string `form:"studentId" json:"studentId,omitempty"`
	Department string `form:"department" json:"department,omitempty"`
	Year       string `form:"year" json:"year,omitempty"`

	// faculty
	EmployeeID        string `form:"employeeId" json:"employeeId,omitempty"`
	FacultyDepartment string `form:"facultyDepartment" json:"facultyDepartment,omitempty"`
	Designation       string `form:"designation" json:"designation,omitempty"`

	// admin
	AdminCode string `form:"adminCode" json:"adminCode,omitempty"`

	// set by the handler after a successful upload
	ProfilePhotoURL string `form:"-" json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries partial-update semantics: nil means "leave
// untouched". Email and role are not updatable.
type UpdateProfileRequest struct {
	Name        *string   `json:"name"`
	Contact     *string   `json:"contact"`
	Bio         *string   `json:"bio"`
	Skills      *[]string `json:"skills"`
	StudentID   *string   `json:"studentId"`
	Department  *string   `json:"department"`
	Year        *string   `json:"year"`
	EmployeeID  *string   `json:"employeeId"`
	Designation *string   `json:"designation"`
}

// ===== Responses =====

// UserResponse is the outward projection of a user. The password hash never
// appears here.
type UserResponse struct {
	ID           string   `json:"id" example:"66c6248b98c56c39f018e7d2"`
	Name         string   `json:"name" example:"Asha Patil"`
	Email        string   `json:"email" example:"asha@sigce.edu"`
	Contact      string   `json:"contact"`
	Role         string   `json:"role" example:"student"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Campus       string   `json:"campus" example:"SIGCE Campus"`

	StudentID   string `json:"studentId,omitempty"`
	Department  string `json:"department,omitempty"`
	Year        string `json:"year,omitempty"`
	EmployeeID  string `json:"employeeId,omitempty"`
	Designation string `json:"designation,omitempty"`

	Permissions []string `json:"permissions,omitempty"`
}

type AuthResponse struct {
	Message string       `json:"message" example:"Login successful"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ProfileResponse struct {
	Message string       `json:"message" example:"Profile updated successfully"`
	User    UserResponse `json:"user"`
}

// ===== Error Response =====

type ErrorResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
}
