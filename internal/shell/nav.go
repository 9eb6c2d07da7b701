package shell

import (
	"strings"

	"github.com/partmart/partmart/internal/storage"
)

// CurrentPage returns the page currently displayed.
func (s *Shell) CurrentPage() string { return s.currentPage }

// PrevPage returns the page on top of the history stack, or the page restored
// from the last-page key right after a reload. Empty means nowhere to go.
func (s *Shell) PrevPage() string { return s.prevPage }

// ReturnTo returns the page recorded by the guard before a login redirect.
func (s *Shell) ReturnTo() string { return s.returnTo }

// Navigate moves to page: the page being left is pushed onto the history
// stack and persisted under the last-page key, the address bar is updated,
// and the view is scrolled to the top - once immediately and once more via
// the returned Cmd, to win races with late layout. The route guard runs on
// the result and may redirect.
func (s *Shell) Navigate(page string) Cmd {
	page = strings.TrimSpace(page)
	if page == "" {
		return nil
	}
	s.applyTransition(page)
	s.enforceRoute()
	return s.scrollRetryCmd()
}

// GoBack pops the history stack. With an empty stack it falls back to the
// prevPage that survived a reload, once; with neither it stays put. Staying
// put is the documented degraded mode, not an error.
func (s *Shell) GoBack() Cmd {
	if n := len(s.history); n > 0 {
		page := s.history[n-1]
		s.history = s.history[:n-1]
		s.currentPage = page
		if n-1 > 0 {
			s.prevPage = s.history[n-2]
			storage.WriteJSON(s.store, storage.KeyLastPage, s.prevPage)
		} else {
			s.prevPage = ""
			s.store.Remove(storage.KeyLastPage)
		}
		s.bar.SetPage(page)
		s.scroll.ScrollToTop()
		s.enforceRoute()
		return s.scrollRetryCmd()
	}
	if s.prevPage != "" {
		// Consume the restored value before navigating; the transition
		// recomputes prevPage so it keeps mirroring the stack top.
		dest := s.prevPage
		s.prevPage = ""
		return s.Navigate(dest)
	}
	return nil
}

// Search stores the transient filters and moves to the catalog page.
func (s *Shell) Search(filters SearchFilters) Cmd {
	f := filters
	s.filters = &f
	return s.Navigate(PageProducts)
}

// TakeSearchFilters hands the pending filters to the receiving screen,
// consuming them.
func (s *Shell) TakeSearchFilters() (SearchFilters, bool) {
	if s.filters == nil {
		return SearchFilters{}, false
	}
	f := *s.filters
	s.filters = nil
	return f, true
}

// applyTransition performs the raw page change without guard evaluation.
func (s *Shell) applyTransition(page string) {
	if s.currentPage != "" {
		s.history = append(s.history, s.currentPage)
		storage.WriteJSON(s.store, storage.KeyLastPage, s.currentPage)
	}
	s.prevPage = s.currentPage
	s.currentPage = page
	s.bar.SetPage(page)
	s.scroll.ScrollToTop()
}

// enforceRoute applies the guard to the current page, redirecting at most
// twice (login and home are open routes, so this always settles). It reports
// whether a redirect happened.
func (s *Shell) enforceRoute() bool {
	redirected := false
	for i := 0; i < 2; i++ {
		switch Decide(s.routes, s.currentPage, s.user, s.sessionChecked) {
		case DecisionLogin:
			s.returnTo = s.currentPage
			s.applyTransition(PageLogin)
			redirected = true
		case DecisionHome:
			s.applyTransition(PageHome)
			redirected = true
		default:
			return redirected
		}
	}
	return redirected
}
