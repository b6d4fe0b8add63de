package camera

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies a camera instance. Ids are unique per process and never zero.
type ID uint64

// cameraCount is an atomic counter used to generate unique camera ids.
var cameraCount atomic.Uint64

// TargetKind distinguishes what a camera renders into.
type TargetKind int

const (
	// TargetWindow renders into a window (primary or a specific one).
	TargetWindow TargetKind = iota
	// TargetImage renders into an off-screen image. Such cameras never receive pointer input
	// automatically; drive them through a manual active-camera record.
	TargetImage
)

// RenderTarget describes where a camera's output goes.
type RenderTarget struct {
	Kind TargetKind
	// Primary selects the host's primary window, whatever its id.
	Primary bool
	// Window is the target window when Kind is TargetWindow and Primary is false.
	Window common.WindowID
}

// PrimaryWindowTarget targets the host's primary window.
func PrimaryWindowTarget() RenderTarget {
	return RenderTarget{Kind: TargetWindow, Primary: true}
}

// WindowTarget targets a specific window.
func WindowTarget(id common.WindowID) RenderTarget {
	return RenderTarget{Kind: TargetWindow, Window: id}
}

// ImageTarget targets an off-screen image.
func ImageTarget() RenderTarget {
	return RenderTarget{Kind: TargetImage}
}

// Viewport is a sub-rectangle of the render target, in logical pixels.
type Viewport struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
}

type cameraImpl struct {
	mu *sync.Mutex

	id     ID
	order  int
	target RenderTarget

	viewport    Viewport
	hasViewport bool
	targetSize  mgl32.Vec2

	transform  Transform
	projection Projection

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines the interface for a camera instance.
// The camera holds its transform, projection, render target and viewport, and recomputes
// view/projection matrices whenever any of them change.
type Camera interface {
	// ID returns the camera's unique id.
	//
	// Returns:
	//   - ID: the camera id
	ID() ID

	// Order returns the draw order. Higher values are drawn later (on top).
	//
	// Returns:
	//   - int: the draw order
	Order() int

	// SetOrder sets the draw order.
	//
	// Parameters:
	//   - order: higher values draw later
	SetOrder(order int)

	// Target returns the render target.
	//
	// Returns:
	//   - RenderTarget: the render target
	Target() RenderTarget

	// SetTarget sets the render target.
	//
	// Parameters:
	//   - target: the new render target
	SetTarget(target RenderTarget)

	// Viewport returns the explicit viewport, if one is set.
	//
	// Returns:
	//   - Viewport: the viewport
	//   - bool: false if the camera covers its whole target
	Viewport() (Viewport, bool)

	// SetViewport restricts rendering to a sub-rectangle of the target.
	//
	// Parameters:
	//   - vp: the viewport in logical pixels
	SetViewport(vp Viewport)

	// ClearViewport makes the camera cover its whole target again.
	ClearViewport()

	// TargetSize returns the last known logical size of the render target.
	//
	// Returns:
	//   - mgl32.Vec2: logical size, zero if unknown
	TargetSize() mgl32.Vec2

	// SetTargetSize records the logical size of the render target and refreshes the projection's
	// aspect ratio / area from the resulting viewport size.
	//
	// Parameters:
	//   - size: logical size of the target
	SetTargetSize(size mgl32.Vec2)

	// LogicalViewportRect returns the viewport rectangle in logical target coordinates.
	//
	// Returns:
	//   - common.Rect: the viewport rectangle
	//   - bool: false if the target size is unknown
	LogicalViewportRect() (common.Rect, bool)

	// LogicalViewportSize returns the viewport size in logical pixels.
	//
	// Returns:
	//   - mgl32.Vec2: the viewport size
	//   - bool: false if the target size is unknown
	LogicalViewportSize() (mgl32.Vec2, bool)

	// Transform returns the camera's world transform.
	//
	// Returns:
	//   - Transform: position and rotation
	Transform() Transform

	// SetTransform replaces the camera's world transform and recomputes matrices.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t Transform)

	// Projection returns a copy of the camera's projection.
	//
	// Returns:
	//   - Projection: PerspectiveProjection or OrthographicProjection
	Projection() Projection

	// SetProjection replaces the camera's projection and recomputes matrices.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Projection)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Update recomputes all matrices from the current transform and projection.
	Update()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera targeting the primary window with a default perspective projection
// and an identity transform at the origin.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		id:         ID(cameraCount.Add(1)),
		target:     PrimaryWindowTarget(),
		transform:  NewTransform(mgl32.Vec3{}),
		projection: DefaultPerspective(),
	}
	for _, option := range options {
		option(c)
	}
	c.syncProjection()
	c.updateMatrices()
	return c
}

func (c *cameraImpl) ID() ID {
	return c.id
}

func (c *cameraImpl) Order() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

func (c *cameraImpl) SetOrder(order int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
}

func (c *cameraImpl) Target() RenderTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) SetTarget(target RenderTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *cameraImpl) Viewport() (Viewport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport, c.hasViewport
}

func (c *cameraImpl) SetViewport(vp Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = vp
	c.hasViewport = true
	c.syncProjection()
	c.updateMatrices()
}

func (c *cameraImpl) ClearViewport() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = Viewport{}
	c.hasViewport = false
	c.syncProjection()
	c.updateMatrices()
}

func (c *cameraImpl) TargetSize() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetSize
}

func (c *cameraImpl) SetTargetSize(size mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.targetSize == size {
		return
	}
	c.targetSize = size
	c.syncProjection()
	c.updateMatrices()
}

func (c *cameraImpl) LogicalViewportRect() (common.Rect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewportRect()
}

func (c *cameraImpl) LogicalViewportSize() (mgl32.Vec2, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.viewportRect()
	if !ok {
		return mgl32.Vec2{}, false
	}
	return r.Size(), true
}

func (c *cameraImpl) Transform() Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *cameraImpl) SetTransform(t Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform = t
	c.updateMatrices()
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = p
	c.syncProjection()
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Mat4ToArray(c.viewMatrix)
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Mat4ToArray(c.projectionMatrix)
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Mat4ToArray(c.viewProjectionMatrix)
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

// viewportRect resolves the logical viewport rectangle. Without an explicit viewport the camera
// covers its whole target. Caller must hold the mutex.
func (c *cameraImpl) viewportRect() (common.Rect, bool) {
	if c.hasViewport {
		return common.NewRect(c.viewport.Position, c.viewport.Size), true
	}
	if c.targetSize[0] <= 0 || c.targetSize[1] <= 0 {
		return common.Rect{}, false
	}
	return common.NewRect(mgl32.Vec2{}, c.targetSize), true
}

// syncProjection pushes the current viewport size into the projection.
// Caller must hold the mutex.
func (c *cameraImpl) syncProjection() {
	if c.projection == nil {
		return
	}
	if r, ok := c.viewportRect(); ok {
		c.projection = c.projection.withViewportSize(r.Size())
	}
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.transform.ViewMatrix()
	if c.projection != nil {
		c.projectionMatrix = c.projection.Matrix()
	} else {
		c.projectionMatrix = mgl32.Ident4()
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
