package service

import (
	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/repository"
)

// RepositorySelector выбирает хранилище для очередного запроса
// Реализуется repository.BackendSelector
type RepositorySelector interface {
	Select() (repository.ReviewRepository, entity.Backend)
	PrimaryReady() bool
}
