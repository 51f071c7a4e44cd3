package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username or email already taken"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if !bind(c, &input) {
		return
	}

	usr, err := h.svc.RegisterUser(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr.ToDTO())
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bind(c, &input) {
		return
	}

	usr, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		IsAdmin:  usr.IsAdmin,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.Profile
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.svc.Profile(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary Update own profile
// @Description Changing the password requires old_password.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateUserInput true "Profile fields"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input or wrong old password"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input user.UpdateUserInput
	if !bind(c, &input) {
		return
	}
	usr, err := h.svc.UpdateProfile(c, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr.ToDTO())
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.UserDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToDTO())
	}
	c.JSON(http.StatusOK, out)
}
