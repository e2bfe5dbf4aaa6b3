// Package viewport implements the camera and magnification state of the cube
// viewer, independent of the rendering backend.
package viewport

import (
	"errors"
	"math"
)

var (
	ErrDisposed        = errors.New("viewport disposed")
	ErrAlreadyAttached = errors.New("viewport already attached")
	errNilRenderer     = errors.New("renderer must not be nil")
)

// Renderer draws the scene to a render target.
type Renderer interface {
	// Size returns the render target size in pixels.
	Size() (width, height int)
	Render(cam CameraParams, cube *Cube) error
	// Release frees the render target. It is called once.
	Release() error
}

// Logger is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers fn to be called after every state change.
func WithOnChange(fn func(ViewState)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithLogger sets the logger used for frame errors.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// Controller owns the view state, the camera and the cube.
//
// Controller is not safe for concurrent use. All methods must be called from
// the thread driving the frame loop and the input events.
type Controller struct {
	cfg      Config
	state    ViewState
	cam      CameraParams
	cube     Cube
	renderer Renderer

	onChange func(ViewState)
	logger   Logger

	removeWheel func()
	cancelFrame func()
	attached    bool
	disposed    bool
	lastErr     string
}

// New creates a Controller with the state initialized to the configured defaults.
func New(cfg Config, r Renderer, opts ...Option) (*Controller, error) {
	if r == nil {
		return nil, errNilRenderer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		renderer: r,
		cube:     newCube(cfg),
		logger:   nopLogger{},
		cam: CameraParams{
			Near: cfg.Near,
			Far:  cfg.Far,
		},
	}
	for _, o := range opts {
		o(c)
	}
	c.state = newViewState(
		cfg.Distance.Clamp(cfg.Distance.Default),
		c.clampFocalLength(cfg.FocalLength.Default),
	)
	c.syncCamera()
	return c, nil
}

// Attach starts listening to src and schedules Tick on sched.
func (c *Controller) Attach(src WheelSource, sched FrameScheduler) error {
	if c.disposed {
		return ErrDisposed
	}
	if c.attached {
		return ErrAlreadyAttached
	}
	c.attached = true
	c.removeWheel = src.OnWheel(func(e WheelEvent) {
		c.OnScroll(e.PixelDeltaY())
	})
	c.cancelFrame = sched.Schedule(c.frame)
	return nil
}

func (c *Controller) frame() {
	if err := c.Tick(); err != nil {
		if errors.Is(err, ErrDisposed) {
			return
		}
		// Same error repeats every frame.
		if msg := err.Error(); msg != c.lastErr {
			c.lastErr = msg
			c.logger.Printf("render failed: %v", err)
		}
		return
	}
	c.lastErr = ""
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Camera returns the camera parameters applied by the last Tick.
func (c *Controller) Camera() CameraParams {
	return c.cam
}

// Cube returns the rendered cube.
func (c *Controller) Cube() Cube {
	return c.cube
}

// Config returns the configuration the controller was created with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool {
	return c.disposed
}

// SetDistance sets the subject distance, clamped to the distance range.
func (c *Controller) SetDistance(d float64) {
	if c.disposed || math.IsNaN(d) {
		return
	}
	c.update(c.cfg.Distance.Clamp(d), c.state.FocalLength)
}

// SetFocalLength sets the focal length, clamped to the focal length range.
func (c *Controller) SetFocalLength(f int) {
	if c.disposed {
		return
	}
	c.update(c.state.Distance, c.clampFocalLength(float64(f)))
}

// SetFocalLengthFloat sets the focal length from an unvalidated input value.
// v is rounded to the nearest integer after clamping. NaN is ignored.
func (c *Controller) SetFocalLengthFloat(v float64) {
	if c.disposed || math.IsNaN(v) {
		return
	}
	c.update(c.state.Distance, c.clampFocalLength(v))
}

// OnScroll moves the camera by deltaY scaled by the scroll factor.
func (c *Controller) OnScroll(deltaY float64) {
	if c.disposed || math.IsNaN(deltaY) {
		return
	}
	c.update(
		c.cfg.Distance.Clamp(c.state.Distance+deltaY*c.cfg.ScrollFactor),
		c.state.FocalLength,
	)
}

// Range bounds are integers, so rounding does not leave the range.
func (c *Controller) clampFocalLength(f float64) int {
	return int(math.Round(c.cfg.FocalLength.Clamp(f)))
}

func (c *Controller) update(distance float64, focalLength int) {
	c.state = newViewState(distance, focalLength)
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func (c *Controller) syncCamera() {
	c.cam.Aspect = aspectOf(c.renderer.Size())
	c.cam.PositionZ = c.state.Distance
	c.cam.FOV = float64(c.state.FocalLength)
	c.cam.updateProjectionMatrix()
}

// Tick advances the cube rotation, applies the state to the camera and
// renders one frame.
func (c *Controller) Tick() error {
	if c.disposed {
		return ErrDisposed
	}
	c.cube.step(c.cfg.RotationStep)
	c.syncCamera()
	return c.renderer.Render(c.cam, &c.cube)
}

// Dispose stops the frame loop, removes the wheel listener and releases the
// render target. Calls after the first one are no-op.
func (c *Controller) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
	if c.removeWheel != nil {
		c.removeWheel()
		c.removeWheel = nil
	}
	return c.renderer.Release()
}
