package arbor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// actorEntry is one actor in a scene file.
type actorEntry struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind,omitempty"`
	Position [2]float64     `yaml:"position,omitempty"`
	Rotation float64        `yaml:"rotation,omitempty"`
	Size     *[2]float64    `yaml:"size,omitempty"`
	Speed    float64        `yaml:"speed,omitempty"`
	Target   string         `yaml:"target,omitempty"`
	Collider *colliderEntry `yaml:"collider,omitempty"`
	Children []actorEntry   `yaml:"children,omitempty"`
}

// colliderEntry selects a collider shape and its dimensions.
type colliderEntry struct {
	Shape  string  `yaml:"shape"`
	Radius float64 `yaml:"radius,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// sceneFile is the top-level YAML structure for a scene.
type sceneFile struct {
	Actors []actorEntry `yaml:"actors"`
}

// sceneBuilder carries name lookups across the two loading passes.
type sceneBuilder struct {
	input   InputSource
	byName  map[string]*Actor
	targets map[*Actor]string
}

// LoadScene parses a YAML scene description and returns a Scene holding the
// described actors. Player actors read from input. Enemy targets are resolved
// by actor name after every actor has been built, so an enemy may reference
// an actor declared later in the file.
//
//	actors:
//	  - name: hero
//	    kind: player
//	    position: [100, 100]
//	    speed: 120
//	    collider: {shape: circle, radius: 8}
//	  - name: grunt
//	    kind: enemy
//	    position: [300, 200]
//	    speed: 60
//	    target: hero
func LoadScene(data []byte, input InputSource) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if len(file.Actors) == 0 {
		return nil, fmt.Errorf("parse scene: no actors")
	}

	b := &sceneBuilder{
		input:   input,
		byName:  make(map[string]*Actor),
		targets: make(map[*Actor]string),
	}
	scene := NewScene()
	for i := range file.Actors {
		a, err := b.build(&file.Actors[i])
		if err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
		scene.AddActor(a)
	}
	for a, name := range b.targets {
		target, ok := b.byName[name]
		if !ok {
			return nil, fmt.Errorf("parse scene: actor %q targets unknown actor %q", a.Name, name)
		}
		if target == a {
			return nil, fmt.Errorf("parse scene: actor %q targets itself", a.Name)
		}
		a.Motion.SetTarget(target)
	}
	return scene, nil
}

func (b *sceneBuilder) build(e *actorEntry) (*Actor, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("actor without a name")
	}
	if _, dup := b.byName[e.Name]; dup {
		return nil, fmt.Errorf("duplicate actor name %q", e.Name)
	}

	x, y := e.Position[0], e.Position[1]
	var a *Actor
	switch e.Kind {
	case "", ActorKindBasic.String():
		a = NewActor(e.Name, x, y)
	case ActorKindPlayer.String():
		a = NewPlayer(e.Name, x, y, e.Speed, b.input)
	case ActorKindEnemy.String():
		a = NewEnemy(e.Name, x, y, e.Speed, nil)
		if e.Target != "" {
			b.targets[a] = e.Target
		}
	default:
		return nil, fmt.Errorf("actor %q has unknown kind %q", e.Name, e.Kind)
	}
	b.byName[e.Name] = a

	if e.Target != "" && a.Kind != ActorKindEnemy {
		return nil, fmt.Errorf("actor %q of kind %s cannot have a target", e.Name, a.Kind)
	}
	if e.Rotation != 0 {
		a.SetRotation(e.Rotation)
	}
	if e.Size != nil {
		a.SetScale(e.Size[0], e.Size[1])
	}
	if e.Collider != nil {
		c, err := buildCollider(e.Name, e.Collider)
		if err != nil {
			return nil, err
		}
		a.Collider = c
	}

	for i := range e.Children {
		child, err := b.build(&e.Children[i])
		if err != nil {
			return nil, err
		}
		a.AddChild(child)
	}
	return a, nil
}

func buildCollider(owner string, c *colliderEntry) (Collider, error) {
	switch c.Shape {
	case "circle":
		if c.Radius <= 0 {
			return nil, fmt.Errorf("actor %q: circle collider needs a positive radius", owner)
		}
		return &CircleCollider{Radius: c.Radius}, nil
	case "box":
		if c.Width <= 0 || c.Height <= 0 {
			return nil, fmt.Errorf("actor %q: box collider needs a positive width and height", owner)
		}
		return &BoxCollider{Width: c.Width, Height: c.Height}, nil
	default:
		return nil, fmt.Errorf("actor %q has unknown collider shape %q", owner, c.Shape)
	}
}
