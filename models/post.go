package models

import "time"

// Post - модель поста (только эмодзи, до 140 символов)
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  string    `gorm:"size:64;index" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// AuthorView - проекция записи внешнего identity-провайдера.
// Наружу отдаются только эти три поля, остальное не выходит за пределы клиента.
type AuthorView struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

// EnrichedPost - пост вместе с данными автора для ленты
type EnrichedPost struct {
	Post   Post       `json:"post"`
	Author AuthorView `json:"author"`
}

// FeedResponse - ответ API для ленты
type FeedResponse struct {
	Posts []EnrichedPost `json:"posts"`
}
