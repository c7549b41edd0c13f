package arbor

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrNoScene is returned when a scene index does not refer to an added scene.
var ErrNoScene = errors.New("arbor: no such scene")

const defaultTPS = 60

// Engine owns the scenes of a program and the loop state around them: which
// scene is current and whether the program should close. It implements
// ebiten.Game; Run drives it, or callers can use Step directly.
type Engine struct {
	scenes  []*Scene
	current int
	logger  *zap.Logger

	tps           int
	width, height int
	showFPS       bool
	fps           fpsCounter

	started bool
	closed  bool
	ended   bool
}

// NewEngine creates an engine with no scenes. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, tps: defaultTPS}
}

// AddScene appends s and returns its index. The first scene added becomes
// current.
func (e *Engine) AddScene(s *Scene) int {
	if s == nil {
		panic("arbor: cannot add nil scene")
	}
	e.scenes = append(e.scenes, s)
	return len(e.scenes) - 1
}

// SetCurrentScene switches to the scene at index. If the engine is already
// running, the old scene is ended and the new one started.
func (e *Engine) SetCurrentScene(index int) error {
	if index < 0 || index >= len(e.scenes) {
		return fmt.Errorf("set current scene %d: %w", index, ErrNoScene)
	}
	if index == e.current {
		return nil
	}
	if e.started {
		e.scenes[e.current].End()
		e.scenes[index].Start()
	}
	e.logger.Info("scene changed", zap.Int("from", e.current), zap.Int("to", index))
	e.current = index
	return nil
}

// CurrentScene returns the current scene, or nil if none was added.
func (e *Engine) CurrentScene() *Scene {
	if len(e.scenes) == 0 {
		return nil
	}
	return e.scenes[e.current]
}

// Close asks the engine to stop. The current scene is ended on the next
// Update (or Step) and Update then returns ebiten.Termination.
func (e *Engine) Close() {
	e.closed = true
}

// ShouldClose reports whether Close has been called.
func (e *Engine) ShouldClose() bool {
	return e.closed
}

// Step runs one tick of the current scene with the given delta time. The
// scene is started on the first step. Step returns false once the engine
// has been closed and the scene ended.
func (e *Engine) Step(dt float64) bool {
	if e.closed {
		e.finish()
		return false
	}
	s := e.CurrentScene()
	if s == nil {
		return true
	}
	if !e.started {
		e.started = true
		s.Start()
		e.logger.Info("engine started", zap.Int("scene", e.current), zap.Int("actors", s.NumActors()))
	}
	s.Update(dt)
	return true
}

// finish ends the current scene exactly once.
func (e *Engine) finish() {
	if e.ended {
		return
	}
	e.ended = true
	if s := e.CurrentScene(); s != nil && e.started {
		s.End()
	}
	e.logger.Info("engine stopped")
}

// --- ebiten.Game ---

// Update implements ebiten.Game. It ticks the current scene with
// dt = 1/TPS.
func (e *Engine) Update() error {
	if !e.Step(1.0 / float64(e.tps)) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	if s := e.CurrentScene(); s != nil {
		s.Draw(screen)
	}
	if e.showFPS {
		e.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The configured size is used when set,
// otherwise the outside size.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.width > 0 && e.height > 0 {
		return e.width, e.height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window configured by cfg and runs the engine until it is
// closed or the window is closed.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = defaultTPS
	}
	e.tps = cfg.TPS
	e.width, e.height = cfg.Width, cfg.Height
	e.showFPS = cfg.ShowFPS
	if s := e.CurrentScene(); s != nil && cfg.Debug {
		s.SetDebugMode(true)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(e)
	e.finish()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
