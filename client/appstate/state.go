// Package appstate holds the storefront UI page state machine. The current
// page is an explicit value advanced by a pure reducer, so every transition
// is enumerable and testable. State lives purely in memory and resets on
// reload.
package appstate

import (
	catalogdomain "github.com/merqado/storefront/internal/catalog/domain"
)

// Page identifies which view is mounted.
type Page string

const (
	PageHome             Page = "home"
	PageSearch           Page = "search"
	PageCategories       Page = "categories"
	PageCategoryProducts Page = "categoryProducts"
	PageFavorites        Page = "favorites"
	PageCart             Page = "cart"
	PageOrders           Page = "orders"
	PageProfile          Page = "profile"
	PageCheckout         Page = "checkout"
	PageSuccess          Page = "success"
	PageAdmin            Page = "admin"
	PageProductDetail    Page = "productDetail"
	PageOffers           Page = "offers"

	// Pre-auth shell pages
	PageLogin          Page = "login"
	PageForgotPassword Page = "forgotPassword"
	PageResetPassword  Page = "resetPassword"
)

// State is the full UI state. Zero value is not meaningful; use NewState.
type State struct {
	Page Page

	SelectedProductID  uint
	SelectedCategoryID uint

	SearchTerm    string
	SearchResults []catalogdomain.Product
	SearchLoading bool
}

// NewState returns the initial state for an authenticated session.
func NewState() State {
	return State{Page: PageHome, SearchResults: []catalogdomain.Product{}}
}

// InitialPage maps the browser location path to the pre-auth shell page.
// Unknown paths land on login.
func InitialPage(path string) Page {
	switch path {
	case "/forgot-password":
		return PageForgotPassword
	case "/reset-password":
		return PageResetPassword
	default:
		return PageLogin
	}
}

// Event is a user navigation action.
type Event interface {
	isEvent()
}

// Navigate switches to a page directly, e.g. from the menu.
type Navigate struct {
	To Page
}

// SelectProduct opens the product detail page.
type SelectProduct struct {
	ProductID uint
}

// SelectCategory opens the product listing for one category.
type SelectCategory struct {
	CategoryID uint
}

// SubmitSearch starts a search for the given term. An empty term is ignored.
type SubmitSearch struct {
	Term string
}

// SearchFinished delivers the results of an in-flight search. A failed
// search delivers nil results, which read as an empty list.
type SearchFinished struct {
	Results []catalogdomain.Product
}

func (Navigate) isEvent()       {}
func (SelectProduct) isEvent()  {}
func (SelectCategory) isEvent() {}
func (SubmitSearch) isEvent()   {}
func (SearchFinished) isEvent() {}

// Reduce advances the state by one event. It is pure and total: unknown
// events return the state unchanged.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Navigate:
		s.Page = ev.To
		return s

	case SelectProduct:
		s.SelectedProductID = ev.ProductID
		s.Page = PageProductDetail
		return s

	case SelectCategory:
		s.SelectedCategoryID = ev.CategoryID
		s.Page = PageCategoryProducts
		return s

	case SubmitSearch:
		if ev.Term == "" {
			return s
		}
		s.SearchTerm = ev.Term
		s.SearchLoading = true
		s.Page = PageSearch
		return s

	case SearchFinished:
		results := ev.Results
		if results == nil {
			results = []catalogdomain.Product{}
		}
		s.SearchResults = results
		s.SearchTerm = ""
		s.SearchLoading = false
		return s

	default:
		return s
	}
}
