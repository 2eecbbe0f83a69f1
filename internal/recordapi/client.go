package recordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"course-dashboard/internal/domain"
	"course-dashboard/internal/httpx"
)

// AppIDs names the service app that backs each collection.
type AppIDs struct {
	Instructors   string
	Participants  string
	Rooms         string
	Courses       string
	Registrations string
}

type Client struct {
	BaseURL string
	APIKey  string
	Apps    AppIDs
	HTTP    *http.Client
	Retry   httpx.RetryConfig
}

func New(baseURL, apiKey string, apps AppIDs, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Apps:    apps,
		HTTP: &http.Client{
			Timeout: timeout,
		},
		Retry: httpx.SingleAttempt(),
	}
}

// WithMaxAttempts enables transport retries with backoff when n > 1.
func (c *Client) WithMaxAttempts(n int) *Client {
	if n <= 1 {
		c.Retry = httpx.SingleAttempt()
		return c
	}
	c.Retry = httpx.DefaultRetryConfig()
	c.Retry.MaxAttempts = n
	return c
}

func (c *Client) ListInstructors(ctx context.Context) ([]domain.Instructor, error) {
	return listRecords[domain.InstructorFields](ctx, c, c.Apps.Instructors)
}

func (c *Client) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	return listRecords[domain.ParticipantFields](ctx, c, c.Apps.Participants)
}

func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return listRecords[domain.RoomFields](ctx, c, c.Apps.Rooms)
}

func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return listRecords[domain.CourseFields](ctx, c, c.Apps.Courses)
}

func (c *Client) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	return listRecords[domain.RegistrationFields](ctx, c, c.Apps.Registrations)
}

func (c *Client) recordsURL(appID string) (string, error) {
	if appID == "" {
		return "", errors.New("recordapi: missing app id")
	}
	u, err := url.Parse(c.BaseURL + "/apps/" + url.PathEscape(appID) + "/records")
	if err != nil {
		return "", errors.Wrap(err, "recordapi: invalid base url")
	}
	return u.String(), nil
}

func listRecords[F any](ctx context.Context, c *Client, appID string) ([]domain.Record[F], error) {
	endpoint, err := c.recordsURL(appID)
	if err != nil {
		return nil, err
	}

	_, body, err := httpx.DoWithRetry(ctx, c.HTTP, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Encoding", httpx.AcceptEncoding)
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}
		return req, nil
	}, c.Retry)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords[F](body)
	if err != nil {
		return nil, errors.Wrapf(err, "recordapi: decode app %s", appID)
	}
	return records, nil
}

// decodeRecords accepts either an object keyed by record id or a plain array.
// Object keys are walked in document order so the service order survives.
func decodeRecords[F any](body []byte) ([]domain.Record[F], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []domain.Record[F]{}, nil
	}

	if trimmed[0] == '[' {
		var out []domain.Record[F]
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []domain.Record[F]{}
		}
		return out, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Newf("unexpected top-level token %v", tok)
	}

	out := []domain.Record[F]{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Newf("unexpected key token %v", keyTok)
		}

		var rec domain.Record[F]
		if err := dec.Decode(&rec); err != nil {
			return nil, errors.Wrapf(err, "record %s", key)
		}
		if rec.ID == "" {
			rec.ID = key
		}
		out = append(out, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
