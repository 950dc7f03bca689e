// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ik5/foxaudio/handle"
	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Manager.
type State int32

const (
	StateUninitialized State = iota
	StateInitialized
	StateUnloaded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateUnloaded:
		return "unloaded"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Manager owns one native engine instance and every resource created
// through it. Call Init once, Update every frame and Unload at shutdown.
// An unloaded Manager cannot be initialized again.
type Manager struct {
	engine  native.Engine
	log     *zap.Logger
	files   *FileLoader
	metrics *Metrics

	mu        sync.Mutex
	state     State
	status    atomic.Int32 // state, readable without mu
	cfg       Config
	core      native.System
	studio    native.StudioSystem
	master    *ChannelGroup
	listeners []*Listener

	sounds    *handle.Registry[*Sound]
	groups    *handle.Registry[*ChannelGroup]
	banks     *handle.Registry[*Bank]
	events    *handle.Registry[*EventDescription]
	instances *handle.Registry[*EventInstance]
}

type Option func(*Manager)

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithFileLoader sets the loader used by the path based Load methods.
func WithFileLoader(f *FileLoader) Option {
	return func(m *Manager) { m.files = f }
}

func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

func New(engine native.Engine, opts ...Option) *Manager {
	m := &Manager{
		engine:    engine,
		log:       Logger(),
		sounds:    handle.NewRegistry[*Sound](),
		groups:    handle.NewRegistry[*ChannelGroup](),
		banks:     handle.NewRegistry[*Bank](),
		events:    handle.NewRegistry[*EventDescription](),
		instances: handle.NewRegistry[*EventInstance](),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.metrics.watch(m)

	return m
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Mode reports the mode the Manager was initialized with.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg.Mode
}

// Engine returns the native engine the Manager drives.
func (m *Manager) Engine() native.Engine {
	return m.engine
}

// FileLoader returns the loader used by the path based Load methods.
func (m *Manager) FileLoader() *FileLoader {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.files
}

// stateError is the error for any operation other than Init outside the
// initialized state. Caller holds mu.
func (m *Manager) stateError() error {
	return stateErr(m.state)
}

func stateErr(s State) error {
	switch s {
	case StateInitialized:
		return nil
	case StateUnloaded:
		return ErrUnloaded
	default:
		return ErrNotInitialized
	}
}

// setState moves the Manager to s. Caller holds mu.
func (m *Manager) setState(s State) {
	m.state = s
	m.status.Store(int32(s))
}

// ready fails once the Manager is no longer initialized. Wrappers call it
// before every native call so stale handles never reach a released
// system.
func (m *Manager) ready() error {
	return stateErr(State(m.status.Load()))
}

// systems returns the native systems, failing outside the initialized
// state.
func (m *Manager) systems() (native.System, native.StudioSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitialized {
		return 0, 0, m.stateError()
	}

	return m.core, m.studio, nil
}

// studioSystem returns the studio system, failing in core mode.
func (m *Manager) studioSystem() (native.StudioSystem, error) {
	_, studio, err := m.systems()
	if err != nil {
		return 0, err
	}
	if studio == 0 {
		return 0, ErrStudioNotLoaded
	}

	return studio, nil
}

// check converts a native result into an error, counting failures.
func (m *Manager) check(op string, res native.Result) error {
	if res != native.OK {
		m.metrics.nativeError(res)
	}

	return nativeError(op, res)
}

// Init creates and initializes the native systems. Zero fields of cfg are
// replaced by DefaultConfig values. On failure everything created so far
// is released and the Manager stays uninitialized.
func (m *Manager) Init(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateInitialized:
		return ErrAlreadyInitialized
	case StateUnloaded:
		return ErrUnloaded
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	var err error
	if cfg.Mode == ModeCoreAndStudio {
		err = m.initStudio(cfg)
	} else {
		err = m.initCore(cfg)
	}
	if err != nil {
		m.log.Error("audio init failed", zap.Stringer("mode", cfg.Mode), zap.Error(err))
		return err
	}

	g, res := m.engine.SystemMasterChannelGroup(m.core)
	if err := m.check("master channel group", res); err != nil {
		m.releaseSystems()
		return err
	}
	master, err := m.wrapGroup(g, false)
	if err != nil {
		m.releaseSystems()
		return err
	}
	master.system = true
	m.master = master

	if m.files == nil {
		m.files = NewFileLoader(cfg.RootDir)
	}
	m.cfg = cfg
	m.setState(StateInitialized)

	m.log.Info("audio initialized",
		zap.Stringer("mode", cfg.Mode),
		zap.Int("max_channels", cfg.MaxChannels),
		zap.Uint32("dsp_buffer_length", cfg.DSPBufferLength),
		zap.Int("dsp_buffer_count", cfg.DSPBufferCount),
	)

	return nil
}

// initCore creates the core system. Caller holds mu.
func (m *Manager) initCore(cfg Config) error {
	sys, res := m.engine.SystemCreate()
	if err := m.check("create system", res); err != nil {
		return err
	}

	res = m.engine.SystemSetDSPBufferSize(sys, cfg.DSPBufferLength, cfg.DSPBufferCount)
	if err := m.check("set dsp buffer size", res); err != nil {
		m.engine.SystemRelease(sys)
		return err
	}

	if err := m.preInit(cfg, sys, 0); err != nil {
		m.engine.SystemRelease(sys)
		return err
	}

	res = m.engine.SystemInit(sys, cfg.MaxChannels, cfg.CoreFlags)
	if err := m.check("init system", res); err != nil {
		m.engine.SystemRelease(sys)
		return err
	}

	m.core = sys
	return nil
}

// initStudio creates the studio system and the core system under it.
// Caller holds mu.
func (m *Manager) initStudio(cfg Config) error {
	s, res := m.engine.StudioSystemCreate()
	if err := m.check("create studio system", res); err != nil {
		return err
	}

	fail := func(err error) error {
		m.engine.StudioSystemRelease(s)
		return err
	}

	core, res := m.engine.StudioSystemCoreSystem(s)
	if err := m.check("studio core system", res); err != nil {
		return fail(err)
	}

	res = m.engine.SystemSetDSPBufferSize(core, cfg.DSPBufferLength, cfg.DSPBufferCount)
	if err := m.check("set dsp buffer size", res); err != nil {
		return fail(err)
	}

	if err := m.preInit(cfg, core, s); err != nil {
		return fail(err)
	}

	res = m.engine.StudioSystemInitialize(s, cfg.MaxChannels, cfg.StudioFlags, cfg.CoreFlags)
	if err := m.check("initialize studio system", res); err != nil {
		return fail(err)
	}

	m.studio, m.core = s, core
	return nil
}

// preInit runs the configured hook on the created, not yet initialized
// systems. Caller holds mu.
func (m *Manager) preInit(cfg Config, core native.System, studio native.StudioSystem) error {
	if cfg.PreInit == nil {
		return nil
	}
	if err := cfg.PreInit(m.engine, core, studio); err != nil {
		return fmt.Errorf("pre-init: %w", err)
	}

	return nil
}

// releaseSystems releases the native systems. Caller holds mu.
func (m *Manager) releaseSystems() error {
	var err error
	if m.studio != 0 {
		err = m.check("release studio system", m.engine.StudioSystemRelease(m.studio))
	} else if m.core != 0 {
		err = m.check("release system", m.engine.SystemRelease(m.core))
	}
	m.studio, m.core = 0, 0

	return err
}

// Update pumps the engine once. In CoreAndStudio mode the studio update
// also updates the core system. Event callbacks run on the calling
// goroutine.
func (m *Manager) Update() error {
	core, studio, err := m.systems()
	if err != nil {
		return err
	}

	m.metrics.update()
	if studio != 0 {
		return m.check("studio update", m.engine.StudioSystemUpdate(studio))
	}

	return m.check("update", m.engine.SystemUpdate(core))
}

// Unload disposes every resource still alive, dependents first, then
// releases the native systems. The Manager cannot be used afterwards.
func (m *Manager) Unload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitialized {
		return m.stateError()
	}
	m.setState(StateUnloaded)
	m.listeners = nil

	errs := []error{
		disposeLeaked(m, "event_instance", m.instances),
		disposeLeaked(m, "bank", m.banks),
		disposeLeaked(m, "sound", m.sounds),
	}

	m.master.dispose()
	m.master = nil
	errs = append(errs, disposeLeaked(m, "channel_group", m.groups))

	m.events.Each(func(h handle.Handle, _ *EventDescription) bool {
		m.events.Release(h)
		return true
	})

	errs = append(errs, m.releaseSystems())

	m.log.Info("audio unloaded", zap.Stringer("mode", m.cfg.Mode))

	return errors.Join(errs...)
}

type disposer interface {
	Dispose() error
}

// disposeLeaked disposes every wrapper still registered in r.
func disposeLeaked[T disposer](m *Manager, kind string, r *handle.Registry[T]) error {
	n := r.Len()
	if n == 0 {
		return nil
	}

	m.log.Warn("disposing leaked resources", zap.String("kind", kind), zap.Int("count", n))

	var errs []error
	r.Each(func(_ handle.Handle, v T) bool {
		if err := v.Dispose(); err != nil {
			errs = append(errs, err)
		}
		return true
	})

	return errors.Join(errs...)
}
