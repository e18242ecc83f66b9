package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated - запрос на запись без идентификатора автора
	ErrUnauthenticated = errors.New("authentication required")
	// ErrRateLimited - автор исчерпал лимит постов в текущем окне
	ErrRateLimited = errors.New("too many requests")
	// ErrAuthorNotFound - автор поста не найден у identity-провайдера при сборке ленты
	ErrAuthorNotFound = errors.New("author not found")
	// ErrUserNotFound - поиск пользователя по username не дал результата
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound - пост с таким id отсутствует в хранилище
	ErrPostNotFound = errors.New("post not found")
)

// Коды причин для ValidationError
const (
	ReasonContentRequired = "content required"
	ReasonTooLong         = "too long"
	ReasonEmojiOnly       = "emoji only"
)

// ValidationError - нарушение формата контента, с кодом причины
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid content: " + e.Reason
}

// StoreError - сбой долговременного хранилища, прокидывается наверх без ретраев
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
