package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitstacklabs/fitness-api/internal/audit"
	domain "github.com/fitstacklabs/fitness-api/internal/domain/user"
	"github.com/fitstacklabs/fitness-api/internal/httperr"
	"github.com/fitstacklabs/fitness-api/internal/middleware"
	"github.com/fitstacklabs/fitness-api/internal/models"
	"github.com/fitstacklabs/fitness-api/internal/token"
	"github.com/fitstacklabs/fitness-api/internal/validators"
)

type UserHandler struct {
	repo   domain.Repository
	tokens *token.Service
	audit  *audit.Dispatcher
}

func NewUserHandler(repo domain.Repository, tokens *token.Service, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{repo: repo, tokens: tokens, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	MobileNo  string `json:"mobileNo" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// Pointer fields distinguish "absent" from "set to empty": omitted fields
// keep their stored value.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	MobileNo  *string `json:"mobileNo"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// --------- Handlers ---------

// Register validates format before uniqueness: format failures are cheaper
// and user-correctable first.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "Email Invalid")
		return
	}
	if !validators.IsMobileValid(req.MobileNo) {
		httperr.BadRequest(c, "Mobile number invalid")
		return
	}
	if !validators.IsPasswordValid(req.Password) {
		httperr.BadRequest(c, "Password must be atleast 8 characters")
		return
	}

	count, err := h.repo.CountUsersByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	if count > 0 {
		httperr.Conflict(c, "Email already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  string(hashed),
		MobileNo:  req.MobileNo,
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_registered",
		Entity: "user",
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Registered Successfully"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "Invalid Email")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "No email found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Email and password do not match")
		return
	}

	access, err := h.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *UserHandler) CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := h.repo.CountUsersByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Duplicate email found"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "No duplicate email found"})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.MobileNo != nil && !validators.IsMobileValid(*req.MobileNo) {
		httperr.BadRequest(c, "Mobile number invalid")
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.MobileNo != nil {
		user.MobileNo = *req.MobileNo
	}

	if err := h.repo.UpdateUser(c.Request.Context(), user); err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "profile_updated",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPasswordValid(req.NewPassword) {
		httperr.BadRequest(c, "Password must be atleast 8 characters")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	if err := h.repo.UpdateUserPassword(c.Request.Context(), userID, string(hashed)); err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "password_updated",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// SetAdmin promotes the target user. Promotion requires an already-privileged
// caller; the route is gated by RequireAdmin.
func (h *UserHandler) SetAdmin(c *gin.Context) {
	targetID := c.Param("id")

	user, err := h.repo.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	user.IsAdmin = true
	if err := h.repo.UpdateUser(c.Request.Context(), user); err != nil {
		httperr.Internal(c, err)
		return
	}

	callerID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "user_promoted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"updatedUser": user,
		"message":     "User updated successfully",
	})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
