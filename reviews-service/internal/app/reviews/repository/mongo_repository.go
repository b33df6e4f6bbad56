package repository

import (
	"context"
	"fmt"
	"time"

	"reviewsapi/pkg/metrics"
	"reviewsapi/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewsCollection - коллекция с отзывами
const ReviewsCollection = "reviews"

// reviewDocument - формат документа в MongoDB
type reviewDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Response string             `bson:"response"`
	Date     time.Time          `bson:"date"`
}

func (d reviewDocument) toEntity() entity.Review {
	review := entity.Review{
		Name:      d.Name,
		Email:     d.Email,
		Response:  d.Response,
		CreatedAt: d.Date,
	}
	if !d.ID.IsZero() {
		review.ID = d.ID.Hex()
	}
	return review
}

type MongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository создает репозиторий отзывов поверх базы MongoDB
// Клиент подключается лениво, поэтому конструктор не обращается к серверу
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{
		collection: db.Collection(ReviewsCollection),
	}
}

// GetAll получает все отзывы без фильтра и сортировки
func (r *MongoReviewRepository) GetAll(ctx context.Context) ([]entity.Review, error) {
	timer := metrics.NewStorageTimer(metricsService, entity.BackendMongoDB.String(), metrics.StorageOpRead)
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendMongoDB.String(), metrics.StorageOpRead)
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendMongoDB.String(), metrics.StorageOpRead)
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	reviews := make([]entity.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, doc.toEntity())
	}

	return reviews, nil
}

// Create вставляет отзыв; _id назначает MongoDB, date по умолчанию - текущее время
func (r *MongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	timer := metrics.NewStorageTimer(metricsService, entity.BackendMongoDB.String(), metrics.StorageOpInsert)
	defer timer.ObserveDuration()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	doc := reviewDocument{
		Name:     review.Name,
		Email:    review.Email,
		Response: review.Response,
		Date:     review.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		metrics.RecordStorageError(metricsService, entity.BackendMongoDB.String(), metrics.StorageOpInsert)
		return fmt.Errorf("failed to create review: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid.Hex()
	}

	return nil
}
