package content

import (
	"sync"
	"time"

	util "github.com/saulo-duarte/hikma-lambda/internal/utils"
)

const maxPanels = 4096

// panel is the display state of one content section for one viewer.
type panel struct {
	gen     util.Generation
	topic   string
	content string
	loading bool
	touched time.Time
}

type panelKey struct {
	viewer   string
	category Category
}

// PanelStore keeps the last displayed content per viewer and section so that a
// slow response for an earlier topic never overwrites a newer selection.
type PanelStore struct {
	mu     sync.Mutex
	panels map[panelKey]*panel
	now    func() time.Time
}

func NewPanelStore() *PanelStore {
	return &PanelStore{
		panels: make(map[panelKey]*panel),
		now:    time.Now,
	}
}

// Select marks topic as the panel's selection. When the same topic is already
// displayed it returns the cached content and hit=true; otherwise it returns
// the token the eventual response must present to Resolve.
func (s *PanelStore) Select(viewer string, category Category, topic string) (token uint64, cached string, hit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := panelKey{viewer: viewer, category: category}
	p, ok := s.panels[key]
	if !ok {
		s.evictLocked()
		p = &panel{}
		s.panels[key] = p
	}
	p.touched = s.now()

	if !p.loading && p.topic == topic && p.content != "" {
		return 0, p.content, true
	}

	p.topic = topic
	p.content = ""
	p.loading = true
	return p.gen.Next(), "", false
}

// Resolve applies content if token is still the latest for the panel.
func (s *PanelStore) Resolve(viewer string, category Category, token uint64, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.panels[panelKey{viewer: viewer, category: category}]
	if !ok || !p.gen.IsCurrent(token) {
		return false
	}
	p.content = content
	p.loading = false
	return true
}

func (s *PanelStore) Snapshot(viewer string, category Category) PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := PanelState{Category: category}
	if p, ok := s.panels[panelKey{viewer: viewer, category: category}]; ok {
		state.Topic = p.topic
		state.Content = p.content
		state.Loading = p.loading
	}
	return state
}

func (s *PanelStore) evictLocked() {
	if len(s.panels) < maxPanels {
		return
	}
	var oldestKey panelKey
	var oldest time.Time
	first := true
	for k, p := range s.panels {
		if first || p.touched.Before(oldest) {
			oldestKey, oldest, first = k, p.touched, false
		}
	}
	delete(s.panels, oldestKey)
}
