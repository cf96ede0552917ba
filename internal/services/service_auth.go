package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/models"
	"github.com/bhupatisharma/swish/internal/repository"
)

const bcryptCost = 10

// AuthService is the identity store: registration, credential verification and
// profile updates.
type AuthService struct {
	Users     repository.UserRepository
	AdminCode string
	Campus    string
}

func NewAuthService(users repository.UserRepository, adminCode, campus string) *AuthService {
	return &AuthService{Users: users, AdminCode: adminCode, Campus: campus}
}

// Register creates a user with role-specific defaults. Admin registration
// requires the out-of-band admin code.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("email", "Email is required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password", "Password is required")
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role", "Role must be student, faculty or admin")
	}
	if role == models.RoleAdmin && req.AdminCode != s.AdminCode {
		return nil, apperrors.ErrInvalidAdminCode
	}

	if _, err := s.Users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Contact:      req.Contact,
		Role:         role,
		ProfilePhoto: req.ProfilePhotoURL,
		Bio:          "",
		Skills:       []string{},
		Campus:       s.Campus,
		Followers:    []bson.ObjectID{},
		Following:    []bson.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch role {
	case models.RoleStudent:
		user.Student = &models.StudentProfile{
			StudentID:  req.StudentID,
			Department: req.Department,
			Year:       req.Year,
		}
	case models.RoleFaculty:
		user.Faculty = &models.FacultyProfile{
			EmployeeID:  req.EmployeeID,
			Department:  req.FacultyDepartment,
			Designation: req.Designation,
		}
	case models.RoleAdmin:
		user.Admin = &models.AdminProfile{
			Permissions: []string{"manage_users", "moderate_content"},
		}
	}

	if _, err := s.Users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password return the same
// error so callers cannot tell which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile applies only the fields present in the request. Email and role
// cannot be changed here. Role-specific fields land in the document's variant
// subtree for the user's actual role; fields for another role are ignored.
func (s *AuthService) UpdateProfile(ctx context.Context, userID bson.ObjectID, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Contact != nil {
		set["contact"] = *req.Contact
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Skills != nil {
		set["skills"] = *req.Skills
	}

	if user.Student != nil {
		if req.StudentID != nil {
			set["student.student_id"] = *req.StudentID
		}
		if req.Department != nil {
			set["student.department"] = *req.Department
		}
		if req.Year != nil {
			set["student.year"] = *req.Year
		}
	}
	if user.Faculty != nil {
		if req.EmployeeID != nil {
			set["faculty.employee_id"] = *req.EmployeeID
		}
		if req.Department != nil {
			set["faculty.department"] = *req.Department
		}
		if req.Designation != nil {
			set["faculty.designation"] = *req.Designation
		}
	}

	if err := s.Users.UpdateFields(ctx, userID, set); err != nil {
		return nil, err
	}
	return s.Users.FindByID(ctx, userID)
}

func (s *AuthService) GetByID(ctx context.Context, userID bson.ObjectID) (*models.User, error) {
	return s.Users.FindByID(ctx, userID)
}
