package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teampulse/internal/models/request_models"
	"teampulse/internal/services"
	"teampulse/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// CreateFeedback godoc
// @Summary Create feedback for a team member
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackPayload true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	var req request_models.FeedbackPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	feedback, err := f.feedbackService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback created successfully")
}

// ListFeedback godoc
// @Summary List feedback for an employee
// @Tags Feedback
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /feedback/{id} [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	feedbacks, err := f.feedbackService.ListForEmployee(c.Request.Context(), principal, employeeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}

// UpdateFeedback godoc
// @Summary Update feedback (full replace)
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body request_models.FeedbackPayload true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/{id} [put]
func (f *FeedbackController) UpdateFeedback(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	var req request_models.FeedbackPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	feedback, err := f.feedbackService.Update(c.Request.Context(), principal, feedbackID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback updated successfully")
}

// AcknowledgeFeedback godoc
// @Summary Acknowledge feedback
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/{id}/acknowledge [post]
func (f *FeedbackController) AcknowledgeFeedback(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	feedback, err := f.feedbackService.Acknowledge(c.Request.Context(), principal, feedbackID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback acknowledged")
}

// DeleteFeedback godoc
// @Summary Delete feedback and its comments
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	if err := f.feedbackService.Delete(c.Request.Context(), principal, feedbackID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback deleted successfully")
}

// AddComment godoc
// @Summary Comment on feedback
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body request_models.CommentPayload true "Comment payload"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/{id}/comment [post]
func (f *FeedbackController) AddComment(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	var req request_models.CommentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	comment, err := f.feedbackService.AddComment(c.Request.Context(), principal, feedbackID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

// ListComments godoc
// @Summary List comments on feedback in chronological order
// @Tags Comments
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/{id}/comments [get]
func (f *FeedbackController) ListComments(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	comments, err := f.feedbackService.ListComments(c.Request.Context(), principal, feedbackID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}
