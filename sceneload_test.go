package arbor

import (
	"strings"
	"testing"
)

const chaseScene = `
actors:
  - name: grunt
    kind: enemy
    position: [300, 200]
    speed: 60
    target: hero
    collider: {shape: box, width: 16, height: 16}
  - name: hero
    kind: player
    position: [100, 100]
    speed: 120
    size: [2, 2]
    collider: {shape: circle, radius: 8}
    children:
      - name: sword
        position: [12, 0]
        rotation: 1.5
`

func TestLoadScene(t *testing.T) {
	input := fixedInput(0, 0)
	s, err := LoadScene([]byte(chaseScene), input)
	if err != nil {
		t.Fatal(err)
	}
	if s.NumActors() != 2 {
		t.Fatalf("NumActors = %d, want 2", s.NumActors())
	}

	grunt, hero := s.Actors()[0], s.Actors()[1]
	if grunt.Kind != ActorKindEnemy || hero.Kind != ActorKindPlayer {
		t.Errorf("kinds = %v, %v", grunt.Kind, hero.Kind)
	}
	if grunt.Motion.Target() != hero {
		t.Error("grunt should target hero")
	}
	if grunt.Motion.Speed != 60 || hero.Motion.Speed != 120 {
		t.Errorf("speeds = %v, %v", grunt.Motion.Speed, hero.Motion.Speed)
	}
	if hero.Motion.input != input {
		t.Error("player should read the given input")
	}
	if hero.Size() != (Vec2{2, 2}) {
		t.Errorf("hero size = %v", hero.Size())
	}
	if c, ok := hero.Collider.(*CircleCollider); !ok || c.Radius != 8 {
		t.Errorf("hero collider = %#v", hero.Collider)
	}
	if c, ok := grunt.Collider.(*BoxCollider); !ok || c.Width != 16 || c.Height != 16 {
		t.Errorf("grunt collider = %#v", grunt.Collider)
	}

	sword := s.Find("sword")
	if sword == nil || sword.Parent != hero {
		t.Fatal("sword should be a child of hero")
	}
	assertMatrix(t, "sword rotation", sword.rotation, NewRotation(1.5))

	s.Update(0)
	// hero is scaled 2x, so the sword's (12, 0) offset doubles.
	assertVec(t, "sword world", sword.WorldPosition(), Vec2{124, 100})
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"invalid yaml", "actors: [", "parse scene"},
		{"empty", "actors: []", "no actors"},
		{"unnamed", "actors:\n  - kind: actor", "without a name"},
		{"unknown kind", "actors:\n  - name: a\n    kind: dragon", `unknown kind "dragon"`},
		{"duplicate", "actors:\n  - name: a\n  - name: a", `duplicate actor name "a"`},
		{"nested duplicate", "actors:\n  - name: a\n    children:\n      - name: a", "duplicate"},
		{"unknown target", "actors:\n  - name: e\n    kind: enemy\n    target: ghost", `unknown actor "ghost"`},
		{"self target", "actors:\n  - name: e\n    kind: enemy\n    target: e", "targets itself"},
		{"target on player", "actors:\n  - name: p\n    kind: player\n    target: p", "cannot have a target"},
		{"bad shape", "actors:\n  - name: a\n    collider: {shape: hexagon}", `unknown collider shape "hexagon"`},
		{"bad radius", "actors:\n  - name: a\n    collider: {shape: circle}", "positive radius"},
		{"bad box", "actors:\n  - name: a\n    collider: {shape: box, width: 2}", "positive width and height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene([]byte(tt.yaml), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSceneDefaultKind(t *testing.T) {
	s, err := LoadScene([]byte("actors:\n  - name: rock\n    position: [1, 2]"), nil)
	if err != nil {
		t.Fatal(err)
	}
	rock := s.Actors()[0]
	if rock.Kind != ActorKindBasic || rock.LocalPosition() != (Vec2{1, 2}) {
		t.Errorf("rock = kind %v at %v", rock.Kind, rock.LocalPosition())
	}
}
