// Package folio is a scroll-driven single-page portfolio for [Ebitengine].
//
// Folio lays out a page of sections, scrolls it through a [Viewport], and
// keeps several navigation consumers in sync with the scroll position: the
// main navigation, the tools sub-navigation, a timeline with "past" flags,
// and a focus effect that dims every section except the one under the
// viewport's center line. A magnetic particle field runs in the hero section.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := folio.NewScene(folio.DefaultSceneConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	folio.Run(scene, folio.RunConfig{Title: "Portfolio", Width: 1280, Height: 800})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Active-section resolution
//
// A [Resolver] samples element bounds from a [Document] and decides which
// [Anchor] is active under a [TriggerPolicy]. Listeners registered with
// [Resolver.OnChange] fire only when the active id changes. Two policies are
// supported: top-offset (the last anchor whose top edge is above a trigger
// line) and center-line (the anchor spanning the viewport's middle).
//
//	r := folio.NewResolver(folio.ResolverConfig{
//		Name:    "nav",
//		Anchors: folio.MustAnchors(folio.Anchor{ID: "hero"}, folio.Anchor{ID: "about-me"}),
//		Policy:  folio.DefaultTriggerPolicy(),
//	})
//	r.OnChange(func(c folio.ActivationChange) { fmt.Println(c.ID) })
//	r.Evaluate(viewport)
//
// # Navigation
//
// A [Navigator] converts "go to section X" into a smooth scroll animated with
// [gween]. When the target lives on another route it switches to the home
// route first and defers the scroll until the new page has been laid out.
//
// # Particles
//
// A [ParticleField] draws into any [Canvas] and advances on a [FrameClock].
// [ImageCanvas] renders into an offscreen ebiten image; the headless package
// provides a canvas backed by [gg] for PNG output without a window.
//
// # ECS
//
// Scene events can be forwarded into a [Donburi] world with the adapter in
// folio/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gg]: https://github.com/fogleman/gg
// [Donburi]: https://github.com/yohamta/donburi
package folio
