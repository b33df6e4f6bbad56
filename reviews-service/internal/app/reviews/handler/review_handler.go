package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "reviews-service"
	welcomeMessage = "Welcome to the Reviews API"

	msgInvalidBody = "Invalid request body"
	msgFileRead    = "Error reading reviews from file."
	msgFileWrite   = "Error saving review to file."
)

type ReviewServiceInterface interface {
	GetReviews(ctx context.Context) ([]entity.Review, entity.Backend, error)
	CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, entity.Backend, error)
	ActiveBackend() (entity.Backend, bool)
}

type ReviewHandler struct {
	reviewService ReviewServiceInterface
}

func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

func (h *ReviewHandler) HealthCheck(c *gin.Context) {
	backend, primaryReady := h.reviewService.ActiveBackend()

	c.JSON(http.StatusOK, entity.HealthResponse{
		Status:       "ok",
		Service:      serviceName,
		Backend:      backend,
		PrimaryReady: primaryReady,
	})
}

// GetReviews отдает все отзывы JSON-массивом
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, backend, err := h.reviewService.GetReviews(c.Request.Context())
	if err != nil {
		h.respondError(c, backend, msgFileRead, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// SubmitReview создает отзыв
// MongoDB: 201 и сохраненный документ; файл: 200 и {"success": true}
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	req, err := decodeReviewRequest(c)
	if err != nil {
		h.respondError(c, "", msgInvalidBody, http.StatusBadRequest, fmt.Errorf("%w: %w", service.ErrValidation, err))
		return
	}

	review, backend, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		// Ошибка вставки в MongoDB отдается как 400
		h.respondError(c, backend, msgFileWrite, http.StatusBadRequest, err)
		return
	}

	if backend == entity.BackendMongoDB {
		c.JSON(http.StatusCreated, review)
		return
	}

	c.JSON(http.StatusOK, entity.SubmitResponse{Success: true})
}

// decodeReviewRequest принимает только тело из одного JSON-объекта
// Хвост после объекта, несколько объектов подряд, null и массивы отклоняются
func decodeReviewRequest(c *gin.Context) (*entity.CreateReviewRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid JSON")
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("request body must be a JSON object")
	}

	var req entity.CreateReviewRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	return &req, nil
}

// respondError переводит ошибку сервиса в HTTP-ответ
// Для файлового хранилища клиент получает фиксированное сообщение и 500, для MongoDB - текст ошибки и mongoStatus
func (h *ReviewHandler) respondError(c *gin.Context, backend entity.Backend, fileMessage string, mongoStatus int, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: msgInvalidBody})
	case errors.Is(err, service.ErrStorageUnavailable) && backend == entity.BackendFile:
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Message: fileMessage})
	case errors.Is(err, service.ErrStorageUnavailable):
		c.JSON(mongoStatus, entity.ErrorResponse{Message: service.StorageCause(err).Error()})
	default:
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Message: err.Error()})
	}
}
