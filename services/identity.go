package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"chirp/models"
)

// MaxResolveBatch - сколько id провайдер принимает за один запрос
const MaxResolveBatch = 100

// UserDirectory - доступ к внешнему identity-провайдеру
type UserDirectory interface {
	// ResolveMany возвращает известных провайдеру пользователей по их id.
	// Неизвестные id просто отсутствуют в результате, это не ошибка.
	ResolveMany(ctx context.Context, ids []string) (map[string]models.AuthorView, error)
	// ResolveByUsername ищет пользователя по точному username.
	// При отсутствии совпадений возвращает ErrUserNotFound.
	ResolveByUsername(ctx context.Context, username string) (*models.AuthorView, error)
}

// IdentityClient - HTTP-клиент identity-провайдера. Ничего не кеширует,
// каждый вызов ходит наружу.
type IdentityClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// identityRecord - сырая запись провайдера; наружу уходит только проекция
type identityRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	ImageURL  string `json:"image_url"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func filterUser(rec identityRecord) models.AuthorView {
	return models.AuthorView{
		ID:              rec.ID,
		Username:        rec.Username,
		ProfileImageURL: rec.ImageURL,
	}
}

func (c *IdentityClient) getUsers(ctx context.Context, query url.Values) ([]identityRecord, error) {
	reqURL := c.BaseURL + "/v1/users?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("identity provider http %d: %s", resp.StatusCode, raw)
	}

	var records []identityRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	return records, nil
}

func (c *IdentityClient) ResolveMany(ctx context.Context, ids []string) (map[string]models.AuthorView, error) {
	users := make(map[string]models.AuthorView, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	if len(ids) > MaxResolveBatch {
		ids = ids[:MaxResolveBatch]
	}

	query := url.Values{}
	for _, id := range ids {
		query.Add("user_id", id)
	}
	query.Set("limit", fmt.Sprintf("%d", MaxResolveBatch))

	records, err := c.getUsers(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		users[rec.ID] = filterUser(rec)
	}
	return users, nil
}

func (c *IdentityClient) ResolveByUsername(ctx context.Context, username string) (*models.AuthorView, error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("limit", "1")

	records, err := c.getUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrUserNotFound
	}

	user := filterUser(records[0])
	return &user, nil
}
