// Package blit is a minimal real-time presentation loop built on a software
// framebuffer.
//
// A [Pipeline] owns a [Surface] sized to its [Display], reads entities from a
// [Donburi] world, and runs the same seven steps once per tick:
//
//  1. sample the [Keyboard] and [Pointer] devices into per-class queues
//  2. translate the drained events (direction keys steer [RolePlayer]
//     entities, '1'..'5' pick a background color, pointer motion accumulates)
//  3. integrate positions
//  4. resolve boundary bounces
//  5. clear the surface
//  6. composite every entity that has a [Sprite]
//  7. commit the surface to the display
//
// # Quick start
//
//	world := donburi.NewWorld()
//	ball, _ := blit.DiscRaster(16, blit.Red)
//	blit.Spawn(world, blit.Entity{
//		Position: blit.Position{X: 10, Y: 10},
//		Velocity: &blit.Velocity{DX: 2, DY: 1},
//		Sprite:   ball,
//		Role:     blit.RolePlayer,
//	})
//
//	p, err := blit.NewPipeline(world, blit.PipelineConfig{
//		Display: blit.NewDigestDisplay(320, 200),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = blit.Run(ctx, p, blit.RunOptions{TPS: 60})
//
// Window and terminal displays live in the ebitenhost and termhost packages.
// The ecs package republishes input and bounce events as Donburi events.
//
// # Boundaries
//
// Nothing in the loop is an error that stops it: out-of-range pixels are
// ignored, sprites are clipped at the surface edge, positions saturate, and
// a failed commit is logged before the next tick starts. Setup problems
// (no display, bad resolution, undecodable sprite) are returned from the
// constructors instead.
//
// [Donburi]: https://github.com/yohamta/donburi
package blit
