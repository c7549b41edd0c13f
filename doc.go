// Package arbor is a small 2D scene-graph engine for [Ebitengine].
//
// Arbor provides a transform hierarchy of actors, a scene that drives their
// lifecycle each tick, pairwise collision detection and a thin engine that
// runs a scene in an ebiten window.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// an [Engine] for you:
//
//	scene := arbor.NewScene()
//	hero := arbor.NewPlayer("hero", 100, 100, 120, arbor.NewKeyboardInput())
//	scene.AddActor(hero)
//	scene.AddActor(arbor.NewEnemy("grunt", 300, 200, 60, hero))
//
//	e := arbor.NewEngine(nil)
//	e.AddScene(scene)
//	if err := arbor.Run(e, arbor.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// For headless use, call [Engine.Step] with an explicit delta time, or drive
// a [Scene] directly with [Scene.Start], [Scene.Update] and [Scene.End].
//
// # Transforms
//
// Every [Actor] keeps a translation, a rotation and a scale as [Matrix3]
// values. Its local transform is T·R·S and its world transform is the
// parent's world transform times the local one, recomputed by
// [Actor.UpdateTransforms] after the update pass of each tick.
//
//	sword := arbor.NewActor("sword", 12, 0)
//	hero.AddChild(sword)
//	hero.SetSize(arbor.Vec2{X: 2, Y: 2}) // sword now sits 24 units away
//
// Matrices are stored row-major and multiply column vectors (M·p), with the
// translation in the third column. The rotation for angle θ is
// [[cos θ, sin θ, 0], [-sin θ, cos θ, 0], [0, 0, 1]] and [Actor.Forward] is
// its first column.
//
// # Collisions
//
// After transforms are propagated the scene tests every ordered pair of
// distinct root actors and calls [Actor.HandleCollision] on the first of
// each colliding pair. The default [ExactPositionPolicy] treats actors at
// the same world position as colliding; [ColliderPolicy] defers to each
// actor's [Collider] shape instead:
//
//	scene.SetCollisionPolicy(arbor.ColliderPolicy)
//	hero.Collider = &arbor.CircleCollider{Radius: 8}
//
// Collisions can also be forwarded to an [EventSink]; the arbor/ecs module
// provides one backed by [Donburi] events.
//
// # Configuration
//
// [LoadRunConfig] reads window and logging settings from TOML, [NewLogger]
// builds a [zap] logger from them and [LoadScene] builds a scene from YAML.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [zap]: https://github.com/uber-go/zap
package arbor
