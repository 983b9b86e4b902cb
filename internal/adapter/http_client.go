package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/models"
)

// HTTPClientConfig holds the connection settings for the recommendation
// service gateway.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteCatalog struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPRemoteCatalog constructs a [RemoteCatalog] speaking HTTP/JSON to
// the recommendation service. The configured timeout bounds every call.
func NewHTTPRemoteCatalog(cfg HTTPClientConfig, log *logger.Logger) RemoteCatalog {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteCatalog{client: cli, logger: log}
}

// wireUserRecord mirrors one element of the GET /ml/users response. The
// remote side is not strict about field types, so the key is decoded as a
// raw message and coerced below.
type wireUserRecord struct {
	UserID     json.RawMessage `json:"user_id"`
	Age        json.RawMessage `json:"age"`
	Gender     string          `json:"gender"`
	Occupation string          `json:"occupation"`
}

type wireRatingRecord struct {
	UserID    json.RawMessage `json:"user_id"`
	MovieID   json.RawMessage `json:"item_id"`
	Rating    float64         `json:"rating"`
	Timestamp int64           `json:"timestamp"`
}

func (h *httpRemoteCatalog) GetAllUsers(ctx context.Context) ([]models.RemoteUserRecord, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/ml/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wire []wireUserRecord
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	records := make([]models.RemoteUserRecord, 0, len(wire))
	for _, w := range wire {
		userID, ok := rawInt64(w.UserID)
		if !ok {
			h.logger.Warn().Str("user_id", string(w.UserID)).Msg("dropping remote user record with unusable key")
			continue
		}
		records = append(records, models.RemoteUserRecord{
			UserID:     userID,
			Age:        rawString(w.Age),
			Gender:     w.Gender,
			Occupation: w.Occupation,
		})
	}

	return records, nil
}

func (h *httpRemoteCatalog) GetAllRatings(ctx context.Context) ([]models.RemoteRatingRecord, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/ml/ratings")
	if err != nil {
		return nil, fmt.Errorf("list ratings request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wire []wireRatingRecord
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("decode ratings response: %w", err)
	}

	records := make([]models.RemoteRatingRecord, 0, len(wire))
	for _, w := range wire {
		userID, okUser := rawInt64(w.UserID)
		movieID, okMovie := rawInt64(w.MovieID)
		if !okUser || !okMovie {
			h.logger.Warn().
				Str("user_id", string(w.UserID)).
				Str("item_id", string(w.MovieID)).
				Msg("dropping remote rating record with unusable keys")
			continue
		}
		records = append(records, models.RemoteRatingRecord{
			UserID:    userID,
			MovieID:   movieID,
			Rating:    w.Rating,
			Timestamp: w.Timestamp,
		})
	}

	return records, nil
}

func (h *httpRemoteCatalog) CreateUser(ctx context.Context, user models.RemoteUserCreate) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/ml/users/create")
	if err != nil {
		return 0, fmt.Errorf("create user request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var created struct {
		UserID int64 `json:"user_id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, fmt.Errorf("decode create user response: %w", err)
	}
	if created.UserID == 0 {
		return 0, fmt.Errorf("create user response carries no user key")
	}

	return created.UserID, nil
}

func (h *httpRemoteCatalog) Recommend(ctx context.Context, mlUserID int64) ([]int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/ml/recommend/" + strconv.FormatInt(mlUserID, 10))
	if err != nil {
		return nil, fmt.Errorf("recommend request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rec struct {
		RecommendedItems []int64 `json:"recommended_items"`
	}
	if err = json.Unmarshal(resp.Body(), &rec); err != nil {
		return nil, fmt.Errorf("decode recommend response: %w", err)
	}

	return rec.RecommendedItems, nil
}

func (h *httpRemoteCatalog) SubmitFeedback(ctx context.Context, event models.FeedbackEvent) (models.FeedbackAck, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post("/ml/feedback")
	if err != nil {
		return models.FeedbackAck{}, fmt.Errorf("feedback request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedbackAck{}, err
	}

	var ack models.FeedbackAck
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.FeedbackAck{}, fmt.Errorf("decode feedback response: %w", err)
	}

	return ack, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, resp.StatusCode(), body)
}

// rawString resolves a loosely typed JSON value to its text content:
// `"25"` and `25` both become "25".
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var unquoted string
	if err := json.Unmarshal(raw, &unquoted); err == nil {
		return unquoted
	}
	return s
}

func rawInt64(raw json.RawMessage) (int64, bool) {
	s := rawString(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
