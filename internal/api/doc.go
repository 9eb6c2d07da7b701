// Package api implements the HTTP client for the partmart backend: profile
// and logout on the session side, fetch/add/update/remove/clear on the cart
// side.
//
// The Gateway interface is what the shell consumes; *Client is the real
// implementation. Responses can be slow, fail, or arrive malformed - callers
// own that policy (the shell keeps optimistic state on any error), so the
// client only translates transport and decode failures into errors and never
// retries mutations. The profile fetch is the one retried call because it
// runs once per boot and a transient failure there costs the whole session
// restore.
//
// Every request carries Accept/User-Agent headers, a fresh X-Request-ID, and
// a bearer token when the TokenSource yields one.
package api
