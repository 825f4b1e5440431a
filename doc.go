// Package skitter is a small interactive 2D scene for [Ebitengine]: one
// enemy sprite that jumps away from the mouse cursor while the left button
// is held over it.
//
// # Quick start
//
//	if err := skitter.Run(skitter.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # World
//
// The window, camera, and enemy are entities in a [Donburi] world built by
// [NewWorld]. The scene is designed around exactly one of each; [Driver]
// reports any other count as an error wrapping [ErrPrecondition] instead of
// guessing which one to use.
//
// # Frame driver
//
// Each tick, [Driver.Update] checks in order: the button is down, the cursor
// is in the window, the camera maps the cursor to world space
// ([Camera.ViewportToWorld]), and the enemy's [Box] strictly contains that
// point. When all hold, the enemy center is mirrored through itself away
// from the point ([Repel]) and a [RepelEvent] is published.
//
// # Frontends
//
// [Game] implements ebiten.Game. The term subpackage drives the same world
// from a terminal with tcell mouse events, and the audio subpackage plays a
// chirp for each RepelEvent.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package skitter
