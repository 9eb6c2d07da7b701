// Package storage provides the persisted key/value store shared by the
// session manager, cart synchronizer, and navigation state machine.
//
// # Overview
//
// The store is the Go counterpart of origin-scoped browser storage: a
// synchronous string-keyed map of JSON-serialized values. Two backends ship:
//
//   - FileStore: one file per key under a state directory (the durable store)
//   - MemStore: an in-memory map for tests and diskless runs
//
// # Error Handling
//
// Nothing in this package returns an error. A read that fails for any reason
// (missing file, permission problem, corrupt JSON) reports the value as
// absent, and a write that fails is silently dropped. The coordinator layered
// on top is specified to keep its last good in-memory state when persistence
// misbehaves, so surfacing storage errors would only add dead branches to
// every caller.
//
// # Serialization
//
// Callers go through ReadJSON/WriteJSON rather than encoding values
// themselves, keeping storage-format concerns out of the coordinator and
// making the whole layer swappable with MemStore in tests.
//
// # Keys
//
//   - session.user: the persisted User object (may carry extra profile fields)
//   - session.token: the bearer token presented to the backend
//   - cart.items: the cart collection, for guest-mode durability
//   - nav.last_page: the page left most recently, for back-after-reload
//   - prefs.locale: "ar" or "en", written by the locale collaborator
//   - prefs.theme: UI theme name
package storage
