package services

import (
	"context"
	"errors"
	"time"

	"chirp/db"
	"chirp/models"

	"gorm.io/gorm"
)

// PostRepository - durable-хранилище постов, без бизнес-логики
type PostRepository interface {
	Create(ctx context.Context, authorID, content string) (*models.Post, error)
	ListRecent(ctx context.Context, limit int) ([]models.Post, error)
	ListRecentByAuthor(ctx context.Context, authorID string, limit int) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
}

// PostStore - реализация поверх gorm: запись в мастер, чтение с реплик
type PostStore struct{}

func NewPostStore() *PostStore {
	return &PostStore{}
}

func (s *PostStore) Create(ctx context.Context, authorID, content string) (*models.Post, error) {
	post := &models.Post{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := db.GetWriteDB(ctx).Create(post).Error; err != nil {
		return nil, &StoreError{Op: "create post", Err: err}
	}
	return post, nil
}

// ListRecent возвращает до limit последних постов, новые первыми.
// Совпадающие created_at упорядочены по id, то есть по порядку вставки.
func (s *PostStore) ListRecent(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.GetReadOnlyDB(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, &StoreError{Op: "list recent posts", Err: err}
	}
	return posts, nil
}

func (s *PostStore) ListRecentByAuthor(ctx context.Context, authorID string, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.GetReadOnlyDB(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, &StoreError{Op: "list posts by author", Err: err}
	}
	return posts, nil
}

func (s *PostStore) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := db.GetReadOnlyDB(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "get post", Err: err}
	}
	return &post, nil
}
