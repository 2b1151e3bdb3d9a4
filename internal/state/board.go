package state

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BoardState is the replicated board document. Objects are keyed by unique
// IDs so the same op can arrive more than once (direct send plus host relay)
// without duplicating anything; a Lamport clock orders ops across sites.
type BoardState struct {
	siteID string
	clock  Clock

	mu      sync.RWMutex
	strokes map[string]*Stroke
	shapes  map[string]*Shape
	deleted map[string]bool // tombstones, so a late re-insert of a deleted object stays dead
	order   []string        // draw order (z-order) of live object IDs
}

// NewBoardState creates an empty board with a fresh site identity.
func NewBoardState() *BoardState {
	return &BoardState{
		siteID:  uuid.NewString(),
		strokes: make(map[string]*Stroke),
		shapes:  make(map[string]*Shape),
		deleted: make(map[string]bool),
	}
}

// SiteID returns this board's site identity.
func (bs *BoardState) SiteID() string { return bs.siteID }

// InsertStroke adds a locally drawn stroke and returns the op to broadcast.
func (bs *BoardState) InsertStroke(s Stroke) Op {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Time.IsZero() {
		s.Time = time.Now()
	}
	bs.strokes[s.ID] = &s
	bs.order = append(bs.order, s.ID)
	log.Printf("[BOARD] Local stroke added: %s (%d points)", s.ID, len(s.Points))

	return Op{Type: OpInsertStroke, Stroke: &s, Lamport: bs.clock.Tick(), Site: bs.siteID}
}

// InsertShape adds a locally recognized shape and returns the op to broadcast.
func (bs *BoardState) InsertShape(s Shape) Op {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Time.IsZero() {
		s.Time = time.Now()
	}
	bs.shapes[s.ID] = &s
	bs.order = append(bs.order, s.ID)
	log.Printf("[BOARD] Local shape added: %s (%s)", s.ID, s.Geom.Kind)

	return Op{Type: OpInsertShape, Shape: &s, Lamport: bs.clock.Tick(), Site: bs.siteID}
}

// Delete removes one object by ID and returns the op to broadcast.
func (bs *BoardState) Delete(id string) Op {
	bs.mu.Lock()
	bs.removeLocked(id)
	bs.mu.Unlock()

	return Op{Type: OpDelete, Target: id, Lamport: bs.clock.Tick(), Site: bs.siteID}
}

// Clear removes every object owned by ownerID ("all" wipes the board) and
// returns the op to broadcast.
func (bs *BoardState) Clear(ownerID string) Op {
	bs.mu.Lock()
	bs.clearLocked(ownerID)
	bs.mu.Unlock()

	return Op{Type: OpClear, OwnerID: ownerID, Lamport: bs.clock.Tick(), Site: bs.siteID}
}

// Apply merges a remote op into the board. It reports whether the board
// changed, which is the caller's cue to refresh the view and relay the op.
func (bs *BoardState) Apply(op Op) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.clock.Update(op.Lamport)

	switch op.Type {
	case OpInsertStroke:
		if op.Stroke == nil {
			return false
		}
		if bs.deleted[op.Stroke.ID] || bs.strokes[op.Stroke.ID] != nil {
			log.Printf("[BOARD] Stroke %s already seen, ignoring", op.Stroke.ID)
			return false
		}
		s := *op.Stroke
		bs.strokes[s.ID] = &s
		bs.order = append(bs.order, s.ID)
		return true

	case OpInsertShape:
		if op.Shape == nil {
			return false
		}
		if bs.deleted[op.Shape.ID] || bs.shapes[op.Shape.ID] != nil {
			log.Printf("[BOARD] Shape %s already seen, ignoring", op.Shape.ID)
			return false
		}
		s := *op.Shape
		bs.shapes[s.ID] = &s
		bs.order = append(bs.order, s.ID)
		return true

	case OpDelete:
		return bs.removeLocked(op.Target)

	case OpClear:
		return bs.clearLocked(op.OwnerID)
	}
	return false
}

func (bs *BoardState) removeLocked(id string) bool {
	_, hasStroke := bs.strokes[id]
	_, hasShape := bs.shapes[id]
	bs.deleted[id] = true
	if !hasStroke && !hasShape {
		return false
	}
	delete(bs.strokes, id)
	delete(bs.shapes, id)
	bs.dropFromOrder(func(oid string) bool { return oid == id })
	log.Printf("[BOARD] Object removed: %s", id)
	return true
}

func (bs *BoardState) clearLocked(ownerID string) bool {
	changed := false
	owned := func(owner string) bool { return ownerID == "all" || owner == ownerID }
	for id, s := range bs.strokes {
		if owned(s.OwnerID) {
			delete(bs.strokes, id)
			bs.deleted[id] = true
			changed = true
		}
	}
	for id, s := range bs.shapes {
		if owned(s.OwnerID) {
			delete(bs.shapes, id)
			bs.deleted[id] = true
			changed = true
		}
	}
	if changed {
		bs.dropFromOrder(func(id string) bool {
			return bs.strokes[id] == nil && bs.shapes[id] == nil
		})
	}
	return changed
}

func (bs *BoardState) dropFromOrder(gone func(string) bool) {
	kept := bs.order[:0]
	for _, id := range bs.order {
		if !gone(id) {
			kept = append(kept, id)
		}
	}
	bs.order = kept
}

// Strokes returns the live strokes in draw order.
func (bs *BoardState) Strokes() []Stroke {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	out := make([]Stroke, 0, len(bs.strokes))
	for _, id := range bs.order {
		if s := bs.strokes[id]; s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Shapes returns the live recognized shapes in draw order.
func (bs *BoardState) Shapes() []Shape {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	out := make([]Shape, 0, len(bs.shapes))
	for _, id := range bs.order {
		if s := bs.shapes[id]; s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Ops rebuilds insert ops for the full live document, for syncing a peer that
// joined late.
func (bs *BoardState) Ops() []Op {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	out := make([]Op, 0, len(bs.order))
	for _, id := range bs.order {
		if s := bs.strokes[id]; s != nil {
			stroke := *s
			out = append(out, Op{Type: OpInsertStroke, Stroke: &stroke, Lamport: bs.clock.Tick(), Site: bs.siteID})
		} else if s := bs.shapes[id]; s != nil {
			shape := *s
			out = append(out, Op{Type: OpInsertShape, Shape: &shape, Lamport: bs.clock.Tick(), Site: bs.siteID})
		}
	}
	return out
}

// ObjectCount returns the number of live objects.
func (bs *BoardState) ObjectCount() int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return len(bs.strokes) + len(bs.shapes)
}
