package entity

// CreateReviewRequest - запрос на создание отзыва
// Поля принимаются как есть, пустые строки допустимы
type CreateReviewRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Response string `json:"response"`
}

// ErrorResponse - ответ об ошибке
type ErrorResponse struct {
	Message string `json:"message"`
}

// SubmitResponse - ответ файлового хранилища на создание отзыва
type SubmitResponse struct {
	Success bool `json:"success"`
}

// HealthResponse - состояние сервиса и активного хранилища
type HealthResponse struct {
	Status       string  `json:"status"`
	Service      string  `json:"service"`
	Backend      Backend `json:"backend"`
	PrimaryReady bool    `json:"primary_ready"`
}
