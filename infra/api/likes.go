package api

import (
	"context"
	"sync"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// likeService implements app.LikeService. The API has no like endpoint, so
// likes live in memory for the session and are lost on restart.
type likeService struct {
	mu    sync.Mutex
	liked map[string]struct{}
}

func NewLikeService() *likeService {
	return &likeService{liked: make(map[string]struct{})}
}

// Like reports domain.ErrConflict when the entity is already liked.
func (s *likeService) Like(_ context.Context, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liked[entityID]; ok {
		return domain.ErrConflict
	}
	s.liked[entityID] = struct{}{}
	return nil
}

func (s *likeService) Unlike(_ context.Context, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.liked[entityID]; !ok {
		return domain.ErrConflict
	}
	delete(s.liked, entityID)
	return nil
}

// Seed records likes the server reported on fetched entities.
func (s *likeService) Seed(entities []domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		if e.IsLiked {
			s.liked[e.ID] = struct{}{}
		}
	}
}
