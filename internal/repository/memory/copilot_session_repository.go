package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CopilotSession holds the hosted assistant's conversation handle for a user.
// Tokens expire server side, so entries are kept for a bounded time only.
type CopilotSession struct {
	UserID          string
	ConversationID  string
	DirectLineToken string
}

type CopilotSessionRepository struct {
	cache *cache.Cache
}

func NewCopilotSessionRepository() *CopilotSessionRepository {
	// Default expiration of 1 hour, purge of expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CopilotSessionRepository{
		cache: c,
	}
}

func (r *CopilotSessionRepository) Save(session *CopilotSession) {
	r.cache.Set(session.UserID, session, cache.DefaultExpiration)
}

func (r *CopilotSessionRepository) Get(userID string) (*CopilotSession, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*CopilotSession), true
	}
	return nil, false
}

func (r *CopilotSessionRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
