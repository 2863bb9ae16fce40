package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/config"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
	"github.com/virtualzone/virtualzone-api/internal/user"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
	"github.com/virtualzone/virtualzone-api/pkg/token"
	"github.com/virtualzone/virtualzone-api/pkg/utils"
	pkgvalidator "github.com/virtualzone/virtualzone-api/pkg/validator"
)

// AuthController handles registration, login and session lifecycle.
type AuthController struct {
	users user.UserRepository
	repo  AuthRepository
	cfg   *config.Config
}

// NewAuthController creates a new auth controller.
func NewAuthController(users user.UserRepository, repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{users: users, repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Description New accounts start with the fan role; admins promote DTs.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=user.User}
// @Failure 400 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  pkgvalidator.ParseError(err),
		})
		return
	}

	if existing, err := ac.users.GetByUsername(req.Username); err != nil {
		responses.InternalServerError(c, "Failed to check username")
		return
	} else if existing != nil {
		responses.BadRequest(c, "Username already taken")
		return
	}
	if existing, err := ac.users.GetByEmail(strings.ToLower(req.Email)); err != nil {
		responses.InternalServerError(c, "Failed to check email")
		return
	} else if existing != nil {
		responses.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	u := user.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Role:     user.RoleUser,
		Status:   user.StatusActive,
	}
	if err := ac.users.Create(&u); err != nil {
		responses.InternalServerError(c, "Failed to create user")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Account created successfully", u)
}

// Login godoc
// @Summary Log in with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} responses.SuccessResponse{data=TokenPair}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  pkgvalidator.ParseError(err),
		})
		return
	}

	var u *user.User
	var err error
	if strings.Contains(req.LoginIdentifier, "@") {
		u, err = ac.users.GetByEmail(strings.ToLower(req.LoginIdentifier))
	} else {
		u, err = ac.users.GetByUsername(req.LoginIdentifier)
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if u.Status != user.StatusActive {
		responses.Forbidden(c, "Account is "+u.Status)
		return
	}

	pair, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", pair)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Description The presented refresh token is revoked and replaced.
// @Tags Auth
// @Accept json
// @Produce json
// @Param refresh body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} responses.SuccessResponse{data=TokenPair}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/refresh [post]
func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.cfg.JWT.RefreshTokenSecret)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up refresh token")
		return
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		responses.SendError(c, http.StatusUnauthorized, "Refresh token expired or revoked")
		return
	}

	u, err := ac.users.GetByID(claims.UserID)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if u == nil || u.Status != user.StatusActive {
		responses.SendError(c, http.StatusUnauthorized, "Account no longer active")
		return
	}

	// Rotate: the old token is single-use.
	if err := ac.repo.RevokeRefreshToken(req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}
	pair, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", pair)
}

// Logout godoc
// @Summary Log out, revoking all refresh tokens for the account
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err := ac.repo.RevokeAllForUser(userID); err != nil {
		responses.InternalServerError(c, "Failed to revoke sessions")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Get the authenticated account
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=user.User}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	u, err := ac.users.GetByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", u)
}

func (ac *AuthController) issueTokens(u *user.User) (*TokenPair, error) {
	access, err := token.GenerateJWT(u.ID, u.Role, ac.cfg.JWT.AccessTokenSecret,
		ac.cfg.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refreshMinutes := ac.cfg.JWT.RefreshTokenExpiryDays * 24 * 60
	refresh, err := token.GenerateJWT(u.ID, u.Role, ac.cfg.JWT.RefreshTokenSecret, refreshMinutes)
	if err != nil {
		return nil, err
	}
	if err := ac.repo.CreateRefreshToken(&RefreshToken{
		UserID:    u.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(time.Duration(refreshMinutes) * time.Minute),
	}); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
