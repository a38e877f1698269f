package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
)

const defaultUserServiceTimeout = 5 * time.Second

// UserGW calls the identity service over its internal HTTP API
type UserGW struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewUserGW creates a new identity service gateway
func NewUserGW(cfg *models.Config) *UserGW {
	timeout := defaultUserServiceTimeout
	if cfg.UserService.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.UserService.TimeoutSeconds) * time.Second
	}

	return &UserGW{
		baseURL: cfg.UserService.URL,
		apiKey:  cfg.UserService.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// FindUserByID fetches a user from the identity service
func (g *UserGW) FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	url := fmt.Sprintf("%s/internal/users/%s", g.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Internal("failed to build user service request", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout("user service request timed out", err)
		}
		return nil, apperrors.Unavailable("user service is unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, apperrors.NotFound("user not found")
	default:
		return nil, apperrors.Internal(
			fmt.Sprintf("user service returned status %d", resp.StatusCode), nil)
	}

	var envelope struct {
		Data models.User `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.Internal("failed to decode user service response", err)
	}

	return &envelope.Data, nil
}
