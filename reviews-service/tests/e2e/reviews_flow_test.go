//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"reviewsapi/reviews-service/internal/app/reviews/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL - запущенный сервис; по умолчанию порт MongoDB-режима
var BaseURL = getEnv("E2E_BASE_URL", "http://localhost:5000")

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestFullReviewFlow(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}
	email := "e2e-" + uuid.NewString() + "@example.com"

	// Create
	createReq := entity.CreateReviewRequest{Name: "E2E", Email: email, Response: "Looks good."}
	body, _ := json.Marshal(createReq)

	req, _ := http.NewRequest(http.MethodPost, BaseURL+"/submit-review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// 201 - MongoDB, 200 - файловое хранилище
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, resp.StatusCode)

	// Get
	resp, err = client.Get(BaseURL + "/get-reviews")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []entity.Review
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reviews))

	found := false
	for _, r := range reviews {
		if r.Email == email {
			found = true
			assert.Equal(t, "E2E", r.Name)
			assert.Equal(t, "Looks good.", r.Response)
		}
	}
	assert.True(t, found, "submitted review not listed")
}

func TestSubmitInvalidJSON(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Post(BaseURL+"/submit-review", "application/json", bytes.NewBufferString(`{"name":`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWelcome(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(BaseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(BaseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
