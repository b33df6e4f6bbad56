package mocks

import (
	"context"

	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/repository"

	"github.com/stretchr/testify/mock"
)

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetAll(ctx context.Context) ([]entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// MockSelector мок для выбора хранилища
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) Select() (repository.ReviewRepository, entity.Backend) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.Backend)
	}
	return args.Get(0).(repository.ReviewRepository), args.Get(1).(entity.Backend)
}

func (m *MockSelector) PrimaryReady() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
