package logic

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"boxgrip/internal/domain"
	"boxgrip/internal/selection"
)

// MemoryElementStore is an in-memory implementation of ElementStore.
// Boxes keep their insertion order, which is also the stacking order: the
// last box added is drawn on top and wins hit tests.
type MemoryElementStore struct {
	mu    sync.RWMutex
	boxes map[selection.ElementID]*domain.Box
	order []selection.ElementID
}

// NewMemoryElementStore creates a new memory-based element store
func NewMemoryElementStore() *MemoryElementStore {
	return &MemoryElementStore{
		boxes: make(map[selection.ElementID]*domain.Box),
	}
}

func (s *MemoryElementStore) Get(id selection.ElementID) (domain.Box, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boxes[id]
	if !ok {
		return domain.Box{}, false
	}
	return *b, true
}

// Layout returns a copy of every box in stacking order
func (s *MemoryElementStore) Layout() domain.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := domain.Layout{Boxes: make([]domain.Box, 0, len(s.order))}
	for _, id := range s.order {
		l.Boxes = append(l.Boxes, *s.boxes[id])
	}
	return l
}

func (s *MemoryElementStore) IDs() []selection.ElementID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

func (s *MemoryElementStore) Add(box domain.Box) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if box.ID == "" {
		return fmt.Errorf("add box: empty id")
	}
	if _, ok := s.boxes[box.ID]; ok {
		return fmt.Errorf("add box %s: %w", box.ID, ErrDuplicateBox)
	}
	box.Bounds = box.Bounds.Canon()
	s.boxes[box.ID] = &box
	s.order = append(s.order, box.ID)
	return nil
}

func (s *MemoryElementStore) Remove(id selection.ElementID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boxes[id]; !ok {
		return fmt.Errorf("remove box %s: %w", id, ErrUnknownBox)
	}
	delete(s.boxes, id)
	s.order = slices.DeleteFunc(s.order, func(x selection.ElementID) bool { return x == id })
	return nil
}

// HitTest returns the topmost box containing p
func (s *MemoryElementStore) HitTest(p image.Point) (selection.ElementID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		if p.In(s.boxes[id].Bounds) {
			return id, true
		}
	}
	return "", false
}

func (s *MemoryElementStore) Bounds(id selection.ElementID) (image.Rectangle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boxes[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return b.Bounds, true
}

// Move translates a box. Unknown ids are ignored.
func (s *MemoryElementStore) Move(id selection.ElementID, dx, dy int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boxes[id]; ok {
		b.Bounds = b.Bounds.Add(image.Pt(dx, dy))
	}
}

func (s *MemoryElementStore) SetSelected(id selection.ElementID, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boxes[id]; ok {
		b.Selected = selected
	}
}

func (s *MemoryElementStore) SetCursor(id selection.ElementID, c selection.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boxes[id]; ok {
		b.Cursor = c
	}
}

func (s *MemoryElementStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
