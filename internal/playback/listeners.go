package playback

import (
	"sync"

	"github.com/genricoloni/nowplaying/internal/domain"
)

// listenerSet holds playback listeners. Listeners are called without the lock held.
type listenerSet struct {
	mu   sync.Mutex
	list []domain.PlaybackListener
}

func (s *listenerSet) add(l domain.PlaybackListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.list {
		if existing == l {
			return
		}
	}
	s.list = append(s.list, l)
}

func (s *listenerSet) remove(l domain.PlaybackListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.list {
		if existing == l {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) notify() {
	s.mu.Lock()
	list := make([]domain.PlaybackListener, len(s.list))
	copy(list, s.list)
	s.mu.Unlock()

	for _, l := range list {
		l.PlaybackChanged()
	}
}
