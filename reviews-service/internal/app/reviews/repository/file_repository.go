package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"reviewsapi/pkg/logger"
	"reviewsapi/pkg/metrics"
	"reviewsapi/reviews-service/internal/app/reviews/entity"
)

const (
	fileMode = 0o644
	// Всегда три знака миллисекунд: 2024-05-01T10:30:00.000Z
	fileDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// FileReviewRepository хранит все отзывы одним JSON-массивом в файле
//
// Create перечитывает массив, дописывает отзыв и перезаписывает файл целиком.
// Операция не атомарна и не защищена блокировкой: параллельные Create
// могут потерять запись (побеждает последний писатель), падение между
// чтением и записью теряет новый отзыв.
type FileReviewRepository struct {
	path string
}

// NewFileReviewRepository создает репозиторий и файл с пустым массивом, если файла еще нет
func NewFileReviewRepository(path string) (*FileReviewRepository, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create reviews directory: %w", err)
			}
		}
		if err := os.WriteFile(path, []byte("[]"), fileMode); err != nil {
			return nil, fmt.Errorf("failed to initialize reviews file: %w", err)
		}
		logger.Info().Str("path", path).Msg("Initialized empty reviews file")
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat reviews file: %w", err)
	}

	return &FileReviewRepository{path: path}, nil
}

// Path возвращает путь к файлу с отзывами
func (r *FileReviewRepository) Path() string {
	return r.path
}

// GetAll читает файл целиком, порядок совпадает с порядком добавления
// Поля, которых нет в entity.Review, в ответ не попадают (в самом файле они остаются)
func (r *FileReviewRepository) GetAll(_ context.Context) ([]entity.Review, error) {
	timer := metrics.NewStorageTimer(metricsService, entity.BackendFile.String(), metrics.StorageOpRead)
	defer timer.ObserveDuration()

	data, err := os.ReadFile(r.path)
	if err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendFile.String(), metrics.StorageOpRead)
		return nil, fmt.Errorf("failed to read reviews file: %w", err)
	}

	reviews := make([]entity.Review, 0)
	if err := json.Unmarshal(data, &reviews); err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendFile.String(), metrics.StorageOpRead)
		return nil, fmt.Errorf("failed to decode reviews file: %w", err)
	}

	return reviews, nil
}

// Create дописывает отзыв в конец массива
// Существующие элементы сохраняются как есть (json.RawMessage), включая поля, неизвестные entity.Review
func (r *FileReviewRepository) Create(_ context.Context, review *entity.Review) error {
	timer := metrics.NewStorageTimer(metricsService, entity.BackendFile.String(), metrics.StorageOpInsert)
	defer timer.ObserveDuration()

	if err := r.appendRecord(review); err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendFile.String(), metrics.StorageOpInsert)
		return err
	}

	return nil
}

func (r *FileReviewRepository) appendRecord(review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read reviews file: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode reviews file: %w", err)
	}

	record, err := json.Marshal(fileRecord{
		Name:     review.Name,
		Email:    review.Email,
		Response: review.Response,
		Date:     review.CreatedAt.UTC().Format(fileDateLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}
	records = append(records, record)

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reviews file: %w", err)
	}

	if err := os.WriteFile(r.path, out, fileMode); err != nil {
		return fmt.Errorf("failed to write reviews file: %w", err)
	}

	logger.Debug().
		Str("path", r.path).
		Int("total", len(records)).
		Msg("Review appended to file")

	return nil
}

// fileRecord - формат элемента массива в файле, без идентификатора
type fileRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Response string `json:"response"`
	Date     string `json:"date"`
}
