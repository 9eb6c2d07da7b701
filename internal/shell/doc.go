// Package shell is the navigation-and-session state coordinator for the
// partmart client: the single owner of which page is active, who the current
// user is, what is in the cart and wishlist, and which pages the user may
// reach.
//
// # Architecture
//
// The Shell is an explicit application-state object constructed once at
// startup - there are no package-level singletons. Screens receive it through
// four narrow capability interfaces (Navigator, SessionStore, CartStore,
// WishlistStore) so each screen declares only what it needs.
//
// Effects follow the same shape the Bubble Tea event loop uses: a mutator
// applies its state change synchronously (the optimistic update), and returns
// a Cmd - a deferred function the loop runs off the main goroutine. The Cmd's
// resulting Msg is fed back into Shell.Apply, which installs or discards the
// backend's answer. Call order therefore equals mutation order, while Apply
// order equals resolution order; the two may differ under rapid edits, which
// is why reconciliation messages carry sequence numbers.
//
// # Ownership and Concurrency
//
// Mutators and Apply run on the event loop goroutine only. Cmds never touch
// the Shell; they capture the gateway, a context, and plain values. That
// split is the whole concurrency story: no locks, no shared mutable state.
//
// # Reconciliation Policy
//
// Cart mutations are optimistic. A well-formed success response ({items:[..]})
// replaces the entire in-memory cart - the server is authoritative on success.
// Failures, malformed payloads, and stale responses (an older request's answer
// arriving after a newer request was issued for the same item) leave the
// optimistic state standing. Whole-cart fetches (login reconciliation) carry
// their own sequence so a cleared or re-fetched cart cannot be resurrected by
// a stray late response.
//
// # Failure Surface
//
// Nothing here throws or returns errors to screens. Storage problems read as
// absent values, network problems keep the last good state, and policy
// violations turn into silent redirects by the route guard.
package shell
