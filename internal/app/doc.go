// Package app is the composition root for the PartMart client.
//
// Run wires configuration, the persistent key-value store, the marketplace
// gateway client, the state coordinator, and the TUI:
//
//  1. Load config from ~/.config/partmart/config.toml
//  2. Open the file-backed store under the configured state directory
//  3. Create the HTTP gateway client with a lazy token source
//  4. Build the shell coordinator seeded from the store and deep link
//  5. Restore the persisted session (guard decisions wait for this)
//  6. Start the TUI and block until the user quits or the context cancels
//
// Fatal errors are limited to config parsing and client construction.
// Storage failures degrade to defaults, and gateway failures surface as
// stale-but-usable state in the coordinator rather than as startup errors.
package app
