package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
	"github.com/virtualzone/virtualzone-api/pkg/utils"
)

// UserController handles admin user-management requests.
type UserController struct {
	repo     UserRepository
	activity activity.ActivityRepository
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, activityRepo activity.ActivityRepository) *UserController {
	return &UserController{repo: repo, activity: activityRepo}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=user dt admin"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=30"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=user dt admin"`
	Avatar   *string `json:"avatar"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended banned inactive"`
}

// GetAllUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]User}
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if role := c.Query("role"); role != "" {
		filters["role"] = role
	}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if username := c.Query("username"); username != "" {
		filters["username"] = username
	}

	users, total, err := uc.repo.GetAll(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch users")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", users, total, page, limit)
}

// GetUserByID godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{user_id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	u, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", u)
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if existing, _ := uc.repo.GetByUsername(req.Username); existing != nil {
		responses.SendError(c, http.StatusConflict, "Username already exists")
		return
	}
	if existing, _ := uc.repo.GetByEmail(req.Email); existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}
	u := User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		Status:   StatusActive,
	}
	if err := uc.repo.Create(&u); err != nil {
		responses.InternalServerError(c, "Failed to create user")
		return
	}

	uc.activity.Append("admin", "user_created", fmt.Sprintf("Usuario %s creado con rol %s", u.Username, u.Role))
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", u)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{user_id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	u, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	if err := uc.repo.Update(u); err != nil {
		responses.InternalServerError(c, "Failed to update user")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User updated successfully", u)
}

// UpdateUserStatus godoc
// @Summary Change a user's status
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{user_id}/status [put]
func (uc *UserController) UpdateUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	u, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.UpdateStatus(uint(id), req.Status); err != nil {
		responses.InternalServerError(c, "Failed to update status")
		return
	}

	uc.activity.Append("admin", "user_status_changed", fmt.Sprintf("Usuario %s ahora está %s", u.Username, req.Status))
	responses.SendSuccess(c, http.StatusOK, "Status updated successfully", nil)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{user_id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	u, err := uc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete user")
		return
	}

	uc.activity.Append("admin", "user_deleted", fmt.Sprintf("Usuario %s eliminado", u.Username))
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
