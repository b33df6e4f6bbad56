package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reviewsapi/pkg/logger"
	"reviewsapi/pkg/metrics"
	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/infrastructure"
)

const (
	eventReviewCreated = "REVIEW_CREATED"
	// Отзыв к моменту публикации уже сохранен, ответ не должен ждать Kafka дольше этого
	defaultPublishTimeout = 3 * time.Second
)

// ReviewService обрабатывает бизнес-логику отзывов
// Хранилище выбирается заново на каждый вызов, кеша между запросами нет
type ReviewService struct {
	selector      RepositorySelector
	kafkaProducer  infrastructure.MessagePublisher
	now            func() time.Time
	publishTimeout time.Duration
}

// NewReviewService создает сервис отзывов
// kafkaProducer может быть nil - тогда события не публикуются
func NewReviewService(
	selector RepositorySelector,
	kafkaProducer infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		selector:      selector,
		kafkaProducer: kafkaProducer,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
		publishTimeout: defaultPublishTimeout,
	}
}

// GetReviews возвращает все отзывы в порядке хранилища
// Пустое хранилище - пустой срез, не nil
func (s *ReviewService) GetReviews(ctx context.Context) ([]entity.Review, entity.Backend, error) {
	repo, backend := s.selector.Select()

	reviews, err := repo.GetAll(ctx)
	if err != nil {
		return nil, backend, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	metrics.ReviewsListed.WithLabelValues(backend.String()).Inc()

	return reviews, backend, nil
}

// CreateReview сохраняет отзыв в активном хранилище
// 1. Проставляет дату создания
// 2. Сохраняет через выбранное хранилище
// 3. Отправляет событие REVIEW_CREATED в Kafka (если настроена)
func (s *ReviewService) CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, entity.Backend, error) {
	repo, backend := s.selector.Select()

	review := &entity.Review{
		Name:      req.Name,
		Email:     req.Email,
		Response:  req.Response,
		CreatedAt: s.now(),
	}

	if err := repo.Create(ctx, review); err != nil {
		return nil, backend, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	metrics.ReviewsCreated.WithLabelValues(backend.String()).Inc()

	event := entity.ReviewEvent{
		EventType: eventReviewCreated,
		ReviewID:  review.ID,
		Email:     review.Email,
		Backend:   backend,
		Timestamp: s.now(),
	}

	if err := s.publishReviewEvent(ctx, event); err != nil {
		// Отзыв уже сохранен, проблемы с Kafka не критичны
		logger.Warn().
			Err(err).
			Str("backend", backend.String()).
			Msg("Failed to publish review created event")
	}

	return review, backend, nil
}

// ActiveBackend - хранилище, которое получил бы запрос прямо сейчас
func (s *ReviewService) ActiveBackend() (entity.Backend, bool) {
	_, backend := s.selector.Select()
	return backend, s.selector.PrimaryReady()
}

// publishReviewEvent отправляет событие об отзыве в Kafka
// Ключ - ID отзыва, для файлового хранилища (без ID) - email
func (s *ReviewService) publishReviewEvent(ctx context.Context, event entity.ReviewEvent) error {
	if s.kafkaProducer == nil {
		return nil
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	key := event.ReviewID
	if key == "" {
		key = event.Email
	}

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.kafkaProducer.PublishMessage(publishCtx, key, eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}
