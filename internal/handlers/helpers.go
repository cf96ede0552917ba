package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/models"
)

// fail is the single point where domain errors become HTTP responses.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusOf(err)).
		JSON(dto.ErrorResponse{Message: apperrors.MessageOf(err)})
}

// toUserResponse projects a user for the wire, flattening the role variant and
// dropping the password hash.
func toUserResponse(u *models.User) dto.UserResponse {
	res := dto.UserResponse{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		Contact:      u.Contact,
		Role:         string(u.Role),
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Skills:       u.Skills,
		Campus:       u.Campus,
	}
	if res.Skills == nil {
		res.Skills = []string{}
	}

	switch {
	case u.Student != nil:
		res.StudentID = u.Student.StudentID
		res.Department = u.Student.Department
		res.Year = u.Student.Year
	case u.Faculty != nil:
		res.EmployeeID = u.Faculty.EmployeeID
		res.Department = u.Faculty.Department
		res.Designation = u.Faculty.Designation
	case u.Admin != nil:
		res.Permissions = u.Admin.Permissions
	}
	return res
}
