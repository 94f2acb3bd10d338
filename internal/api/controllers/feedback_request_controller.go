package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teampulse/internal/models/request_models"
	"teampulse/internal/services"
	"teampulse/pkg/utils"
)

type FeedbackRequestController struct {
	requestService services.FeedbackRequestServiceInterface
}

func NewFeedbackRequestController(requestService services.FeedbackRequestServiceInterface) *FeedbackRequestController {
	return &FeedbackRequestController{requestService: requestService}
}

// CreateRequest godoc
// @Summary Request feedback from your manager
// @Tags FeedbackRequests
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackRequestPayload true "Request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback-request [post]
func (f *FeedbackRequestController) CreateRequest(c *gin.Context) {
	var req request_models.FeedbackRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	request, err := f.requestService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Feedback request created successfully")
}

// ListRequests godoc
// @Summary List your team's feedback requests
// @Tags FeedbackRequests
// @Produce json
// @Param fulfilled query bool false "Fulfilled filter" default(false)
// @Success 200 {object} utils.APIResponse
// @Router /feedback-requests [get]
func (f *FeedbackRequestController) ListRequests(c *gin.Context) {
	fulfilled, err := strconv.ParseBool(c.DefaultQuery("fulfilled", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid fulfilled filter")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	requests, err := f.requestService.ListForManager(c.Request.Context(), principal, fulfilled)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Feedback requests fetched successfully")
}

// FulfillRequest godoc
// @Summary Mark a feedback request as fulfilled
// @Tags FeedbackRequests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback-request/{id}/fulfill [post]
func (f *FeedbackRequestController) FulfillRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	request, err := f.requestService.Fulfill(c.Request.Context(), principal, requestID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Feedback request fulfilled")
}
