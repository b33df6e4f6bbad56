package repository

import (
	"sync/atomic"

	"reviewsapi/pkg/metrics"
	"reviewsapi/reviews-service/internal/app/reviews/entity"
)

// BackendSelector выбирает хранилище для каждого запроса
//
// Основное хранилище фиксируется при старте. Пока подключение к MongoDB не подтверждено
// (MarkPrimaryReady), все запросы обслуживает файловое хранилище. Запросы, пришедшие
// до подтверждения, молча пишут в файл даже при основном MongoDB.
type BackendSelector struct {
	primary      entity.Backend
	file         ReviewRepository
	mongo        ReviewRepository
	primaryReady atomic.Bool
}

// NewBackendSelector создает селектор; mongo может быть nil, если основное хранилище - файл
func NewBackendSelector(primary entity.Backend, file, mongo ReviewRepository) *BackendSelector {
	s := &BackendSelector{
		primary: primary,
		file:    file,
		mongo:   mongo,
	}
	if primary == entity.BackendFile {
		s.primaryReady.Store(true)
	}
	metrics.SetPrimaryReady(metricsService, primary.String(), s.primaryReady.Load())
	return s
}

// MarkPrimaryReady фиксирует подтвержденное подключение к основному хранилищу
// Обратного перехода нет: потеря соединения после старта проявляется ошибками MongoDB
func (s *BackendSelector) MarkPrimaryReady() {
	s.primaryReady.Store(true)
	metrics.SetPrimaryReady(metricsService, s.primary.String(), true)
}

func (s *BackendSelector) PrimaryReady() bool {
	return s.primaryReady.Load()
}

func (s *BackendSelector) Primary() entity.Backend {
	return s.primary
}

// Select возвращает хранилище для текущего запроса
func (s *BackendSelector) Select() (ReviewRepository, entity.Backend) {
	if s.primary == entity.BackendMongoDB && s.mongo != nil && s.primaryReady.Load() {
		return s.mongo, entity.BackendMongoDB
	}
	return s.file, entity.BackendFile
}
