package services

import (
	"context"
	"fmt"

	"chirp/models"
)

// FeedFetchLimit - сколько последних постов попадает в ленту
const FeedFetchLimit = 100

// FeedService связывает хранилище постов, identity-провайдера и лимитер.
// Все зависимости инжектируются, чтобы тесты могли подставить свои.
type FeedService struct {
	store   PostRepository
	users   UserDirectory
	limiter Limiter
}

func NewFeedService(store PostRepository, users UserDirectory, limiter Limiter) *FeedService {
	return &FeedService{
		store:   store,
		users:   users,
		limiter: limiter,
	}
}

// SubmitPost - конвейер записи. Порядок шагов фиксированный: сначала
// аутентификация, потом валидация, потом лимитер, потом запись. Каждый
// шаг отсекает запрос до того, как следующий потратит ресурсы: запрос без
// автора не расходует квоту лимитера, отклоненный лимитером не пишет в БД.
func (s *FeedService) SubmitPost(ctx context.Context, callerID, content string) (*models.Post, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	ok, err := s.limiter.Allow(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	if !ok {
		return nil, ErrRateLimited
	}

	return s.store.Create(ctx, callerID, content)
}

// GetFeed - конвейер чтения: последние посты, один батч-запрос к
// identity-провайдеру по уникальным авторам, соединение с сохранением
// порядка хранилища. Если хоть один автор не разрешился или у него пустой
// username - падает весь запрос, частичную ленту не отдаем.
func (s *FeedService) GetFeed(ctx context.Context) ([]models.EnrichedPost, error) {
	posts, err := s.store.ListRecent(ctx, FeedFetchLimit)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

// GetPost возвращает один пост вместе с автором
func (s *FeedService) GetPost(ctx context.Context, id int64) (*models.EnrichedPost, error) {
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrich(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// GetAuthorFeed возвращает последние посты одного автора, найденного по username
func (s *FeedService) GetAuthorFeed(ctx context.Context, username string) ([]models.EnrichedPost, error) {
	author, err := s.users.ResolveByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.ListRecentByAuthor(ctx, author.ID, FeedFetchLimit)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

func (s *FeedService) enrich(ctx context.Context, posts []models.Post) ([]models.EnrichedPost, error) {
	if len(posts) == 0 {
		return []models.EnrichedPost{}, nil
	}

	// Уникальные id авторов, порядок первого появления
	seen := make(map[string]bool, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}

	authors, err := s.users.ResolveMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		author, ok := authors[p.AuthorID]
		if !ok || author.Username == "" {
			return nil, fmt.Errorf("%w: post %d, author %s", ErrAuthorNotFound, p.ID, p.AuthorID)
		}
		enriched = append(enriched, models.EnrichedPost{Post: p, Author: author})
	}
	return enriched, nil
}
