// Package ecs provides ECS adapters for lockerroom session events.
//
// The primary adapter is [NewDonburiStore], which bridges session events
// (start, hover, select, focus, release, panel changes) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session, err := lockerroom.NewSession(cfg, lockerroom.WithEntityStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
