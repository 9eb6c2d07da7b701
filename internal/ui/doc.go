// Package ui renders the PartMart terminal storefront with Bubble Tea.
//
// The UI owns no cross-page state. Every navigation, session, cart, and
// wishlist operation goes through the shell coordinator; screens read it back
// through its accessors after each Update pass. Coordinator effects
// (shell.Cmd) are lifted into tea.Cmds so the Bubble Tea runtime executes
// them off the Update goroutine and feeds the results back through Apply.
package ui
