// Package lockerroom is an interactive 3D locker room portfolio built on
// [Ebitengine].
//
// A [Session] owns everything: the zone [Registry] and the interactive
// objects built from it, the perspective [Camera], hover tracking, the
// selection [Controller], content panels and ambient motion. The host frame
// loop feeds it pointer and keyboard input and calls [Session.Update] once
// per tick; [Game] does that for an Ebitengine window.
//
// # Quick start
//
//	cfg, err := lockerroom.LoadConfig("room.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, err := lockerroom.NewSession(cfg,
//		lockerroom.WithLogger(lockerroom.NewLogger(os.Stderr, cfg.LogLevel)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//	lockerroom.Run(s)
//
// # Interaction
//
// The session moves through four modes:
//
//	FreeLook --click zone--> TransitioningIn --arrive--> Focused
//	Focused --Escape / close--> TransitioningOut --arrive--> FreeLook
//
// Dragging turns the camera in free look. Hover and click only work in free
// look; requests in other modes are ignored. Arriving at a zone shows the
// panel named "<zoneID>Panel" and hides every other panel.
//
// # Configuration
//
// [LoadConfig] reads any format viper understands and applies LOCKERROOM_*
// environment overrides, e.g. LOCKERROOM_ROOM_RADIUS=14.
//
// # ECS integration
//
// Pass an [EntityStore] with [WithEntityStore] to receive every
// [InteractionEvent]. The ecs subpackage provides a Donburi-backed store.
//
// # Automated runs
//
// [LoadTestScript] parses a JSON script of start, click, move, drag, escape,
// wait and screenshot steps. Attach it with [Session.SetTestRunner]; the
// window closes when the script finishes.
//
// [Ebitengine]: https://ebitengine.org
package lockerroom
