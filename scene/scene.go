// Package scene runs behaviours attached to objects, one frame at a time.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"hungrytiger.com/server/engine"
)

// Object is a named node of the scene with its own transform.
type Object struct {
	Name      string
	Transform *engine.Transform

	behaviours []engine.Behaviour
}

// NewObject creates an object at pos.
func NewObject(name string, pos mgl32.Vec3) *Object {
	return &Object{Name: name, Transform: engine.NewTransform(pos)}
}

// Attach adds a behaviour to the object. Behaviours run in attach order.
func (o *Object) Attach(b engine.Behaviour) *Object {
	o.behaviours = append(o.behaviours, b)
	return o
}

// Behaviours returns the attached behaviours.
func (o *Object) Behaviours() []engine.Behaviour {
	return o.behaviours
}

// Scene is an ordered set of objects.
type Scene struct {
	objects    []*Object
	byName     map[string]*Object
	mainCamera *Object
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{byName: make(map[string]*Object)}
}

// Add inserts an object. A later object with the same name shadows the
// earlier one for Find.
func (s *Scene) Add(o *Object) *Object {
	s.objects = append(s.objects, o)
	s.byName[o.Name] = o
	return o
}

// Find returns the object called name, or nil.
func (s *Scene) Find(name string) *Object {
	return s.byName[name]
}

// SetMainCamera marks the object used as the default camera.
func (s *Scene) SetMainCamera(o *Object) {
	s.mainCamera = o
}

// MainCamera returns the default camera, or nil when there is none.
func (s *Scene) MainCamera() engine.Viewpoint {
	if s.mainCamera == nil {
		return nil
	}
	return s.mainCamera.Transform
}

// Start calls Start on every behaviour that has one. A failing behaviour
// does not stop the others; all failures are returned together.
func (s *Scene) Start() error {
	var err error
	for _, o := range s.objects {
		for _, b := range o.behaviours {
			st, ok := b.(engine.Starter)
			if !ok {
				continue
			}
			if serr := st.Start(); serr != nil {
				err = multierr.Append(err, errors.Wrapf(serr, "start %s", o.Name))
			}
		}
	}
	return err
}

// Tick runs one frame: every Update, then every LateUpdate.
func (s *Scene) Tick(dt float32) {
	if dt <= 0 {
		return
	}
	for _, o := range s.objects {
		for _, b := range o.behaviours {
			if u, ok := b.(engine.Updater); ok {
				u.Update(dt)
			}
		}
	}
	for _, o := range s.objects {
		for _, b := range o.behaviours {
			if lu, ok := b.(engine.LateUpdater); ok {
				lu.LateUpdate(dt)
			}
		}
	}
}
