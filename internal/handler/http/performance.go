package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	CreateGoal(w http.ResponseWriter, r *http.Request)
	UpdateGoalProgress(w http.ResponseWriter, r *http.Request)
	ListGoals(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)
	SubmitSelfReview(w http.ResponseWriter, r *http.Request)
	SubmitManagerReview(w http.ResponseWriter, r *http.Request)
	AcknowledgeReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	CreatePromotion(w http.ResponseWriter, r *http.Request)
	ListPromotions(w http.ResponseWriter, r *http.Request)
	ApprovePromotion(w http.ResponseWriter, r *http.Request)
	ImplementPromotion(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

func (h *performanceHandlerImpl) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create goal request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.performanceService.CreateGoal(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Goal created", resp)
}

func (h *performanceHandlerImpl) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdateGoalProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update goal request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.performanceService.UpdateGoalProgress(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal updated", resp)
}

func (h *performanceHandlerImpl) ListGoals(w http.ResponseWriter, r *http.Request) {
	resp, err := h.performanceService.ListGoals(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *performanceHandlerImpl) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteGoal(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal deleted", nil)
}

func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.performanceService.CreateReview(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review created", resp)
}

func (h *performanceHandlerImpl) SubmitSelfReview(w http.ResponseWriter, r *http.Request) {
	var req performance.SubmitSelfReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode self review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.performanceService.SubmitSelfReview(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Self review submitted", resp)
}

func (h *performanceHandlerImpl) SubmitManagerReview(w http.ResponseWriter, r *http.Request) {
	var req performance.SubmitManagerReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manager review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.performanceService.SubmitManagerReview(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager review submitted", resp)
}

func (h *performanceHandlerImpl) AcknowledgeReview(w http.ResponseWriter, r *http.Request) {
	var req performance.AcknowledgeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode acknowledge review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.performanceService.AcknowledgeReview(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review acknowledged", resp)
}

func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.performanceService.ListReviews(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *performanceHandlerImpl) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req performance.CreatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create promotion request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.performanceService.CreatePromotion(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Promotion created", resp)
}

func (h *performanceHandlerImpl) ListPromotions(w http.ResponseWriter, r *http.Request) {
	filter := performance.PromotionFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
		Type:       r.URL.Query().Get("type"),
	}

	resp, err := h.performanceService.ListPromotions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *performanceHandlerImpl) ApprovePromotion(w http.ResponseWriter, r *http.Request) {
	var req performance.ApprovePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode approve promotion request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.performanceService.ApprovePromotion(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Promotion approved", resp)
}

func (h *performanceHandlerImpl) ImplementPromotion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.performanceService.ImplementPromotion(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Promotion implemented", resp)
}
