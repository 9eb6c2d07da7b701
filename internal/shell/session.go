package shell

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/partmart/partmart/internal/auth"
	"github.com/partmart/partmart/internal/storage"
)

// RestoreSession reconciles the locally cached identity with the backend.
// The persisted user is accepted only when it carries all of id, name, email,
// and a known role; anything less yields a guest, never a partial identity.
// sessionChecked becomes true regardless of the outcome. When a user was
// restored and the cached token has not visibly expired, the returned Cmds
// include the asynchronous profile refresh and the cart refetch: restore is a
// user transition like login, so the persisted local cart is only a stand-in
// until the backend copy replaces it.
func (s *Shell) RestoreSession() []Cmd {
	var u User
	if storage.ReadJSON(s.store, storage.KeyUser, &u) &&
		u.ID != "" && u.Name != "" && u.Email != "" && validRole(u.Role) {
		u.Name = stripSeedSuffix(u.Name)
		s.setUser(&u)
	}
	s.sessionChecked = true

	var cmds []Cmd
	if s.enforceRoute() {
		cmds = append(cmds, s.scrollRetryCmd())
	}
	if s.user != nil && !auth.Expired(s.token, time.Now()) {
		cmds = append(cmds, s.fetchProfileCmd(), s.refreshCartCmd())
	}
	return cmds
}

// CompleteLogin installs the authenticated identity, returns the user to the
// page the guard interrupted (or home), and refetches the cart so the backend
// copy replaces whatever the guest accumulated.
func (s *Shell) CompleteLogin(u User, token string) []Cmd {
	s.sessionSeq++
	s.token = strings.TrimSpace(token)
	if s.token != "" {
		storage.WriteJSON(s.store, storage.KeyToken, s.token)
	} else {
		s.store.Remove(storage.KeyToken)
	}

	installed := u
	s.setUser(&installed)

	dest := s.returnTo
	if dest == "" {
		dest = PageHome
	}
	s.returnTo = ""

	cmds := []Cmd{s.refreshCartCmd()}
	if nav := s.Navigate(dest); nav != nil {
		cmds = append(cmds, nav)
	}
	return cmds
}

// Logout is a pure state transition: the backend call is best-effort and its
// outcome ignored, the persisted identity is deleted, and the user lands on
// the home page. Responses still in flight for the departed account - the
// profile refresh and any cart reconciliation - are invalidated so a late
// success cannot reinstate its state.
func (s *Shell) Logout() []Cmd {
	gw, ctx := s.gateway, s.ctx
	notify := Cmd(func() Msg { return logoutMsg{err: gw.Logout(ctx)} })

	s.sessionSeq++
	s.token = ""
	s.store.Remove(storage.KeyToken)
	s.user = nil
	s.store.Remove(storage.KeyUser)
	s.itemSeq = make(map[string]uint64)
	s.fetchSeq++

	cmds := []Cmd{notify}
	if nav := s.Navigate(PageHome); nav != nil {
		cmds = append(cmds, nav)
	}
	return cmds
}

func (s *Shell) fetchProfileCmd() Cmd {
	gw, ctx, seq := s.gateway, s.ctx, s.sessionSeq
	return func() Msg {
		profile, err := gw.FetchProfile(ctx)
		return profileMsg{seq: seq, profile: profile, err: err}
	}
}

// applyProfile maps a successful profile response onto the user. Failures
// are swallowed: the previously restored (or absent) user stands. A response
// from an earlier session - the user logged out or back in while the fetch
// was in flight - is stale and dropped.
func (s *Shell) applyProfile(m profileMsg) Cmd {
	if m.seq != s.sessionSeq {
		return nil
	}
	if m.err != nil || m.profile == nil {
		return nil
	}
	p := m.profile

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = joinNameParts(p.FirstName, p.MiddleName, p.LastName)
	}

	role := p.Role
	if len(p.Roles) > 0 {
		role = p.Roles[0]
	}

	u := User{
		ID:         p.ID,
		Name:       name,
		Email:      p.Email,
		Role:       RoleFromBackend(role),
		FirstName:  p.FirstName,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		Phone:      p.PhoneNumber,
		Avatar:     p.Avatar,
	}
	s.setUser(&u)

	if s.enforceRoute() {
		return s.scrollRetryCmd()
	}
	return nil
}

// setUser installs u as the current user and persists it, merging onto any
// previously persisted object so profile fields the User type does not carry
// survive the write.
func (s *Shell) setUser(u *User) {
	s.user = u
	if u == nil {
		s.store.Remove(storage.KeyUser)
		return
	}

	merged := map[string]any{}
	storage.ReadJSON(s.store, storage.KeyUser, &merged)

	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	for k, v := range fields {
		merged[k] = v
	}
	storage.WriteJSON(s.store, storage.KeyUser, merged)
}
