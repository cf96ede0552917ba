package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/middleware"
	"github.com/bhupatisharma/swish/internal/services"
	"github.com/bhupatisharma/swish/internal/token"
	"github.com/bhupatisharma/swish/internal/uploads"
)

const maxPhotoSize = 5 * 1024 * 1024

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Multipart registration with role-specific fields and an optional profile photo
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Param        name               formData  string  true   "Display name"
// @Param        email              formData  string  true   "Email (login key)"
// @Param        password           formData  string  true   "Password"
// @Param        contact            formData  string  false  "Contact number"
// @Param        role               formData  string  false  "student | faculty | admin"
// @Param        studentId          formData  string  false  "Student ID (student role)"
// @Param        department         formData  string  false  "Department (student role)"
// @Param        year               formData  string  false  "Year of study (student role)"
// @Param        employeeId         formData  string  false  "Employee ID (faculty role)"
// @Param        facultyDepartment  formData  string  false  "Department (faculty role)"
// @Param        designation        formData  string  false  "Designation (faculty role)"
// @Param        adminCode          formData  string  false  "Admin registration code (admin role)"
// @Param        profilePhoto       formData  file    false  "Profile photo"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func RegisterHandler(auth *services.AuthService, tokens *token.Service, storage uploads.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		// Optional photo is stored before the user document exists, so every
		// failure from here on must destroy the asset again.
		var asset *uploads.Asset
		if file, err := c.FormFile("profilePhoto"); err == nil && file != nil {
			if file.Size > maxPhotoSize {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Message: "Profile photo must be 5MB or smaller"})
			}
			if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Message: "Only image files are allowed"})
			}

			src, err := file.Open()
			if err != nil {
				return fail(c, err)
			}
			asset, err = storage.Upload(c.Context(), file.Filename, src)
			src.Close()
			if err != nil {
				return fail(c, err)
			}
			req.ProfilePhotoURL = asset.URL
		}

		user, err := auth.Register(c.Context(), req)
		if err != nil {
			if asset != nil {
				if derr := storage.Destroy(context.WithoutCancel(c.Context()), asset.PublicID); derr != nil {
					log.Printf("orphaned profile photo %s: %v", asset.PublicID, derr)
				}
			}
			return fail(c, err)
		}

		tok, err := tokens.Issue(user.ID.Hex())
		if err != nil {
			return fail(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
			Message: "User created successfully",
			Token:   tok,
			User:    toUserResponse(user),
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func LoginHandler(auth *services.AuthService, tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		user, err := auth.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			return fail(c, err)
		}

		tok, err := tokens.Issue(user.ID.Hex())
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(dto.AuthResponse{
			Message: "Login successful",
			Token:   tok,
			User:    toUserResponse(user),
		})
	}
}

// UpdateProfileHandler godoc
// @Summary      Update own profile
// @Description  Partial update; omitted fields are left untouched. Email and role are immutable.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.UpdateProfileRequest  true  "Fields to change"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/profile [put]
func UpdateProfileHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := bson.ObjectIDFromHex(middleware.UserID(c))
		if err != nil {
			return fail(c, apperrors.ErrInvalidToken)
		}

		var req dto.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		user, err := auth.UpdateProfile(c.Context(), userID, req)
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(dto.ProfileResponse{
			Message: "Profile updated successfully",
			User:    toUserResponse(user),
		})
	}
}
