package state

import (
	"time"

	"sketchboard/internal/geometry"
	"sketchboard/internal/recognize"
)

// Stroke is a freehand path as drawn, in chronological sample order.
type Stroke struct {
	ID      string           `json:"id"`
	OwnerID string           `json:"owner_id"`
	Points  []geometry.Point `json:"points"`
	Color   string           `json:"color"`
	Width   float32          `json:"width"`
	Time    time.Time        `json:"time"`
}

// Shape is a recognized primitive that replaced a freehand stroke. Geom
// carries the classifier verdict; color and width come from the tool state
// the stroke was drawn with.
type Shape struct {
	ID      string             `json:"id"`
	OwnerID string             `json:"owner_id"`
	Geom    recognize.Analysis `json:"geom"`
	Color   string             `json:"color"`
	Width   float32            `json:"width"`
	Time    time.Time          `json:"time"`
}

type OpType string

const (
	OpInsertStroke OpType = "insert_stroke"
	OpInsertShape  OpType = "insert_shape"
	OpDelete       OpType = "delete"
	OpClear        OpType = "clear"
)

// Op is one board mutation, complete enough to replay on a remote peer.
type Op struct {
	Type    OpType  `json:"type"`
	Stroke  *Stroke `json:"stroke,omitempty"`
	Shape   *Shape  `json:"shape,omitempty"`
	Target  string  `json:"target,omitempty"`   // object ID for OpDelete
	OwnerID string  `json:"owner_id,omitempty"` // owner for OpClear
	Lamport int64   `json:"lamport"`
	Site    string  `json:"site"`
}
