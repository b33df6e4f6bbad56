package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/repository"
)

// StorageTest - общий набор проверок для всех реализаций repository.ReviewRepository
// Гарантирует, что файл и MongoDB взаимозаменяемы для сервиса
func StorageTest(t *testing.T, ctx context.Context, storeFactory func(t *testing.T) repository.ReviewRepository) {
	t.Run("GetAll on an empty store returns an empty slice and no error", func(t *testing.T) {
		store := storeFactory(t)

		reviews, err := store.GetAll(ctx)

		require.NoError(t, err)
		require.NotNil(t, reviews, "an empty store must serialize as [] rather than null")
		require.Empty(t, reviews)
	})

	t.Run("a created review is returned by GetAll with the same fields", func(t *testing.T) {
		store := storeFactory(t)
		createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		review := &entity.Review{Name: "Alice", Email: "a@x.com", Response: "Great!", CreatedAt: createdAt}

		require.NoError(t, store.Create(ctx, review))

		reviews, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		require.Equal(t, "Alice", reviews[0].Name)
		require.Equal(t, "a@x.com", reviews[0].Email)
		require.Equal(t, "Great!", reviews[0].Response)
		require.True(t, createdAt.Equal(reviews[0].CreatedAt), "expected %s, got %s", createdAt, reviews[0].CreatedAt)
		require.Equal(t, review.ID, reviews[0].ID, "the returned id must match what Create reported")
	})

	t.Run("Create stamps the creation time when it is not set", func(t *testing.T) {
		store := storeFactory(t)
		review := &entity.Review{Name: "Bob", Email: "b@x.com", Response: "Fine"}

		before := time.Now().Add(-time.Second)
		require.NoError(t, store.Create(ctx, review))

		require.False(t, review.CreatedAt.IsZero())
		require.True(t, review.CreatedAt.After(before))
	})

	t.Run("empty fields are stored as is", func(t *testing.T) {
		store := storeFactory(t)

		require.NoError(t, store.Create(ctx, &entity.Review{}))

		reviews, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		require.Empty(t, reviews[0].Name)
		require.Empty(t, reviews[0].Email)
		require.Empty(t, reviews[0].Response)
	})

	t.Run("two sequential creates are listed in creation order", func(t *testing.T) {
		store := storeFactory(t)

		require.NoError(t, store.Create(ctx, &entity.Review{Name: "first", Email: "1@x.com", Response: "one"}))
		require.NoError(t, store.Create(ctx, &entity.Review{Name: "second", Email: "2@x.com", Response: "two"}))

		reviews, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, "first", reviews[0].Name)
		require.Equal(t, "second", reviews[1].Name)
	})
}
