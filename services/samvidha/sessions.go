package samvidha

import (
	"time"

	"samvidha-backend/lib/attendance"

	"github.com/hashicorp/golang-lru/v2/expirable"
	random "github.com/mazen160/go-random"
)

// sessionStore keeps the last scraped result per login for one
// browsing session. Entries age out on their own; nothing is
// persisted.
type sessionStore struct {
	cache *expirable.LRU[string, attendance.Result]
}

func newSessionStore(capacity int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: expirable.NewLRU[string, attendance.Result](capacity, nil, ttl),
	}
}

func (s *sessionStore) Put(result attendance.Result) (string, error) {
	token, err := random.String(32)
	if err != nil {
		return "", err
	}
	s.cache.Add(token, result)
	return token, nil
}

func (s *sessionStore) Get(token string) (attendance.Result, bool) {
	return s.cache.Get(token)
}
