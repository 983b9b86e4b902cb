package models

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Occupation string `json:"occupation"`
	ZipCode    string `json:"zip_code"`
}

// SigninRequest is the payload for POST /api/auth/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both auth endpoints on success.
type AuthResponse struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
	Token   string  `json:"token"`
}

// FeedbackRequest is the payload for POST /api/feedback.
type FeedbackRequest struct {
	MovieID int64   `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

// RecommendationsResponse carries the recommendation set for a user,
// decorated with catalog titles.
type RecommendationsResponse struct {
	Items  []RecommendedItem `json:"recommended_items"`
	Length int               `json:"length"`
}

// RecommendedItem is a single recommended movie.
type RecommendedItem struct {
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
}

// WatchlistResponse carries a profile's watchlist decorated with titles.
type WatchlistResponse struct {
	Items  []WatchlistItemView `json:"watchlist"`
	Length int                 `json:"length"`
}

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
