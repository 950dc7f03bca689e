// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"math"
	"sync"

	"github.com/ik5/foxaudio/audio"
	"github.com/ik5/foxaudio/formats"
	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

// Engine is a pure Go native.Engine. It keeps the state the real engine
// exposes through its API (objects, properties, play cursors, playback
// states) and never produces audio.
//
// All methods are safe for concurrent use. Event callbacks run on the
// goroutine calling StudioSystemUpdate, without the engine lock held.
type Engine struct {
	mu sync.Mutex

	clock    Clock
	registry *audio.Registry
	log      *zap.Logger

	next uintptr

	systems  map[native.System]*system
	sounds   map[native.Sound]*sound
	channels map[native.Channel]*channel
	groups   map[native.ChannelGroup]*group
	studios  map[native.StudioSystem]*studio
	banks    map[native.Bank]*bank
	events   map[native.EventDescription]*eventDesc
	insts    map[native.EventInstance]*instance
	buses    map[native.Bus]*bus
	vcas     map[native.VCA]*vca
}

var _ native.Engine = (*Engine)(nil)

type Option func(*Engine)

// WithClock replaces the wall clock that drives play cursors.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRegistry replaces the format registry used to probe sounds.
func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		clock:    SystemClock{},
		registry: formats.Default(),
		log:      Logger(),

		systems:  make(map[native.System]*system),
		sounds:   make(map[native.Sound]*sound),
		channels: make(map[native.Channel]*channel),
		groups:   make(map[native.ChannelGroup]*group),
		studios:  make(map[native.StudioSystem]*studio),
		banks:    make(map[native.Bank]*bank),
		events:   make(map[native.EventDescription]*eventDesc),
		insts:    make(map[native.EventInstance]*instance),
		buses:    make(map[native.Bus]*bus),
		vcas:     make(map[native.VCA]*vca),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// alloc returns the next object value. Values are shared by every object
// kind so a handle of one kind never resolves as another. Caller holds mu.
func (e *Engine) alloc() uintptr {
	e.next++
	return e.next
}

// Live reports the number of live objects of every kind, for leak checks.
func (e *Engine) Live() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return map[string]int{
		"system":            len(e.systems),
		"sound":             len(e.sounds),
		"channel":           len(e.channels),
		"channel_group":     len(e.groups),
		"studio_system":     len(e.studios),
		"bank":              len(e.banks),
		"event_description": len(e.events),
		"event_instance":    len(e.insts),
		"bus":               len(e.buses),
		"vca":               len(e.vcas),
	}
}

func validFloat(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validVector(v native.Vector) bool {
	return validFloat(v.X) && validFloat(v.Y) && validFloat(v.Z)
}

func validAttributes(a native.Attributes3D) bool {
	return validVector(a.Position) && validVector(a.Velocity) &&
		validVector(a.Forward) && validVector(a.Up)
}
