package repository

import (
	"context"

	"reviewsapi/reviews-service/internal/app/reviews/entity"
)

// metricsService - значение label service для метрик хранилищ
const metricsService = "reviews-service"

// ReviewRepository определяет методы хранилища отзывов
// Реализации взаимозаменяемы: файл (FileReviewRepository) и MongoDB (MongoReviewRepository)
type ReviewRepository interface {
	// GetAll читает все отзывы заново при каждом вызове, порядок - родной для хранилища
	GetAll(ctx context.Context) ([]entity.Review, error)
	// Create сохраняет отзыв и заполняет присвоенные хранилищем поля
	Create(ctx context.Context, review *entity.Review) error
}
