package news

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// NewsController handles news articles, the posts feed and comment moderation.
type NewsController struct {
	repo NewsRepository
}

// NewNewsController creates a new news controller.
func NewNewsController(repo NewsRepository) *NewsController {
	return &NewsController{repo: repo}
}

type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type UpdateNewsRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
}

type CreateCommentRequest struct {
	Author  string `json:"author" binding:"required,min=2,max=50"`
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// GetAllNews godoc
// @Summary List news articles
// @Tags News
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param category query string false "Filter by category"
// @Success 200 {object} responses.PaginatedResponse{data=[]NewsItem}
// @Router /news [get]
func (nc *NewsController) GetAllNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if category := c.Query("category"); category != "" {
		filters["category"] = category
	}
	if author := c.Query("author"); author != "" {
		filters["author"] = author
	}

	items, total, err := nc.repo.GetAll(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch news")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", items, total, page, limit)
}

// GetPosts godoc
// @Summary Fan-facing posts feed
// @Description Returns the news collection projected into the post shape.
// @Tags News
// @Produce json
// @Success 200 {object} responses.PaginatedResponse{data=[]Post}
// @Router /posts [get]
func (nc *NewsController) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := nc.repo.GetAll(page, limit, map[string]interface{}{})
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch posts")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", ToPosts(items), total, page, limit)
}

// GetNewsByID godoc
// @Summary Get a news article
// @Tags News
// @Produce json
// @Param news_id path int true "News ID"
// @Success 200 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 404 {object} responses.ErrorResponse
// @Router /news/{news_id} [get]
func (nc *NewsController) GetNewsByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid news ID")
		return
	}
	n, err := nc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch news item")
		return
	}
	if n == nil {
		responses.NotFound(c, "News item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", n)
}

// CreateNews godoc
// @Summary Create a news article
// @Tags News
// @Accept json
// @Produce json
// @Param news body CreateNewsRequest true "Article data"
// @Success 201 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/news [post]
func (nc *NewsController) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	n := NewsItem{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Image:    req.Image,
		Category: req.Category,
		Date:     time.Now(),
	}
	if err := nc.repo.Create(&n); err != nil {
		responses.InternalServerError(c, "Failed to create news item")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "News item created successfully", n)
}

// UpdateNews godoc
// @Summary Update a news article
// @Tags News
// @Accept json
// @Produce json
// @Param news_id path int true "News ID"
// @Param news body UpdateNewsRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/news/{news_id} [put]
func (nc *NewsController) UpdateNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid news ID")
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	n, err := nc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch news item")
		return
	}
	if n == nil {
		responses.NotFound(c, "News item")
		return
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Excerpt != nil {
		n.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Author != nil {
		n.Author = *req.Author
	}
	if req.Image != nil {
		n.Image = *req.Image
	}
	if req.Category != nil {
		n.Category = *req.Category
	}

	if err := nc.repo.Update(n); err != nil {
		responses.InternalServerError(c, "Failed to update news item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News item updated successfully", n)
}

// DeleteNews godoc
// @Summary Delete a news article and its comments
// @Tags News
// @Param news_id path int true "News ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/news/{news_id} [delete]
func (nc *NewsController) DeleteNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid news ID")
		return
	}

	n, err := nc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch news item")
		return
	}
	if n == nil {
		responses.NotFound(c, "News item")
		return
	}

	if err := nc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete news item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News item deleted successfully", nil)
}

// GetComments godoc
// @Summary List approved comments for a news article
// @Tags Comments
// @Produce json
// @Param news_id path int true "News ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Comment}
// @Router /news/{news_id}/comments [get]
func (nc *NewsController) GetComments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid news ID")
		return
	}
	comments, err := nc.repo.GetComments(uint(id), CommentApproved)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch comments")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", comments)
}

// CreateComment godoc
// @Summary Post a comment on a news article
// @Description Comments enter the moderation queue as pending.
// @Tags Comments
// @Accept json
// @Produce json
// @Param news_id path int true "News ID"
// @Param comment body CreateCommentRequest true "Comment data"
// @Success 201 {object} responses.SuccessResponse{data=Comment}
// @Failure 404 {object} responses.ErrorResponse
// @Router /news/{news_id}/comments [post]
func (nc *NewsController) CreateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid news ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	n, err := nc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch news item")
		return
	}
	if n == nil {
		responses.NotFound(c, "News item")
		return
	}

	comment := Comment{
		NewsID:  uint(id),
		Author:  req.Author,
		Content: req.Content,
		Status:  CommentPending,
	}
	if err := nc.repo.CreateComment(&comment); err != nil {
		responses.InternalServerError(c, "Failed to create comment")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Comment submitted for moderation", comment)
}

// ReportComment godoc
// @Summary Report a comment
// @Description Marks the comment as reported and bumps its flag count.
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} responses.SuccessResponse{data=Comment}
// @Failure 404 {object} responses.ErrorResponse
// @Router /comments/{comment_id}/report [post]
func (nc *NewsController) ReportComment(c *gin.Context) {
	comment, ok := nc.loadComment(c)
	if !ok {
		return
	}
	comment.Reported = true
	comment.Flags++
	if err := nc.repo.UpdateComment(comment); err != nil {
		responses.InternalServerError(c, "Failed to report comment")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment reported", comment)
}

// GetAllComments godoc
// @Summary List comments across all articles for moderation
// @Tags Comments
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Param reported query bool false "Only reported comments"
// @Success 200 {object} responses.PaginatedResponse{data=[]Comment}
// @Security ApiKeyAuth
// @Router /admin/comments [get]
func (nc *NewsController) GetAllComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if reported := c.Query("reported"); reported != "" {
		filters["reported"] = reported == "true"
	}

	comments, total, err := nc.repo.GetAllComments(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch comments")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", comments, total, page, limit)
}

// ApproveComment godoc
// @Summary Approve a comment
// @Description Publishes the comment and clears any report mark.
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} responses.SuccessResponse{data=Comment}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/comments/{comment_id}/approve [put]
func (nc *NewsController) ApproveComment(c *gin.Context) {
	comment, ok := nc.loadComment(c)
	if !ok {
		return
	}
	comment.Status = CommentApproved
	comment.Reported = false
	if err := nc.repo.UpdateComment(comment); err != nil {
		responses.InternalServerError(c, "Failed to approve comment")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment approved", comment)
}

// HideComment godoc
// @Summary Hide a comment from the public site
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} responses.SuccessResponse{data=Comment}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/comments/{comment_id}/hide [put]
func (nc *NewsController) HideComment(c *gin.Context) {
	comment, ok := nc.loadComment(c)
	if !ok {
		return
	}
	comment.Status = CommentHidden
	if err := nc.repo.UpdateComment(comment); err != nil {
		responses.InternalServerError(c, "Failed to hide comment")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment hidden", comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags Comments
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/comments/{comment_id} [delete]
func (nc *NewsController) DeleteComment(c *gin.Context) {
	comment, ok := nc.loadComment(c)
	if !ok {
		return
	}
	if err := nc.repo.DeleteComment(comment.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete comment")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment deleted successfully", nil)
}

func (nc *NewsController) loadComment(c *gin.Context) (*Comment, bool) {
	id, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid comment ID")
		return nil, false
	}
	comment, err := nc.repo.GetCommentByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch comment")
		return nil, false
	}
	if comment == nil {
		responses.NotFound(c, "Comment")
		return nil, false
	}
	return comment, true
}
