// Package shop is the thin event adapter between browser requests and the
// session's command handlers. It owns no state of its own beyond a short
// catalog cache; every page request rebuilds a session from scratch the way
// each storefront page load does.
package shop

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ushop/internal/catalog"
	"ushop/internal/session"
	"ushop/internal/storage"
	"ushop/internal/view"
)

type Server struct {
	fetcher session.CatalogFetcher
	store   storage.Store
	groups  *catalog.Groups
	opts    session.Options
}

func NewServer(fetcher session.CatalogFetcher, store storage.Store, groups *catalog.Groups, opts session.Options) *Server {
	return &Server{
		fetcher: fetcher,
		store:   store,
		groups:  groups,
		opts:    opts,
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleListing)
	mux.HandleFunc("GET /product/{id}", s.handleDetail)
	mux.HandleFunc("GET /cart", s.handleCart)
	mux.HandleFunc("GET /wishlist", s.handleWishlist)

	mux.HandleFunc("POST /cart/add", s.handleCartAdd)
	mux.HandleFunc("POST /cart/remove", s.handleCartRemove)
	mux.HandleFunc("POST /cart/quantity", s.handleCartQuantity)
	mux.HandleFunc("POST /wishlist/toggle", s.handleWishlistToggle)
	mux.HandleFunc("POST /wishlist/move", s.handleWishlistMove)

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
}

// newSession rebuilds the page store. A failed catalog fetch renders the
// dedicated unavailable page rather than a bare 500.
func (s *Server) newSession(ctx context.Context, w http.ResponseWriter) *session.Session {
	sess, err := session.New(ctx, s.fetcher, s.store, s.groups, s.opts)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			slog.ErrorContext(ctx, "catalog unavailable", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			if terr := Unavailable.Execute(w, nil); terr != nil {
				slog.ErrorContext(ctx, "unavailable template execute error", "error", terr)
			}
			return nil
		}
		slog.ErrorContext(ctx, "failed to build session", "error", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return nil
	}
	return sess
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.newSession(ctx, w)
	if sess == nil {
		return
	}

	query := r.URL.Query()
	if term := strings.TrimSpace(query.Get("q")); term != "" {
		sess.Search(term)
	} else if banner := query.Get("category"); banner != "" {
		sess.InitListing()
		sess.FilterByParent(banner)
	} else if criteria := criteriaFromQuery(query); !criteria.Empty() {
		sess.ApplyFilters(criteria)
	} else {
		sess.InitListing()
	}

	if page := query.Get("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			sess.View.GoTo(n)
		}
	}

	data := listingData{
		ListingPage: sess.Listing(),
		Query:       query,
	}
	if err := Listing.Execute(w, data); err != nil {
		slog.ErrorContext(ctx, "listing template execute error", "error", err)
	}
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.newSession(ctx, w)
	if sess == nil {
		return
	}

	page, err := sess.InitDetail(catalog.ParseID(r.PathValue("id")))
	if err != nil {
		slog.ErrorContext(ctx, "failed to build detail page", "error", err)
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}
	if page.NotFound {
		w.WriteHeader(http.StatusNotFound)
	}
	if err := Detail.Execute(w, page); err != nil {
		slog.ErrorContext(ctx, "detail template execute error", "error", err)
	}
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.newSession(ctx, w)
	if sess == nil {
		return
	}
	if err := Cart.Execute(w, sess.InitCart()); err != nil {
		slog.ErrorContext(ctx, "cart template execute error", "error", err)
	}
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.newSession(ctx, w)
	if sess == nil {
		return
	}
	if err := Wishlist.Execute(w, sess.InitWishlist()); err != nil {
		slog.ErrorContext(ctx, "wishlist template execute error", "error", err)
	}
}

// Mutations redirect back to where the action came from; the next page load
// re-renders from the freshly persisted collections.

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session, id catalog.ID) error {
		return sess.AddToCart(id)
	})
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session, id catalog.ID) error {
		return sess.Cart.Remove(id)
	})
}

func (s *Server) handleCartQuantity(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "quantity must be a number", http.StatusBadRequest)
		return
	}
	s.mutate(w, r, func(sess *session.Session, id catalog.ID) error {
		return sess.Cart.UpdateQuantity(id, quantity)
	})
}

func (s *Server) handleWishlistToggle(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session, id catalog.ID) error {
		_, err := sess.Wishlist.Toggle(id)
		return err
	})
}

func (s *Server) handleWishlistMove(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(sess *session.Session, id catalog.ID) error {
		return sess.MoveToCart(id)
	})
}

func (s *Server) mutate(w http.ResponseWriter, r *http.Request, command func(*session.Session, catalog.ID) error) {
	ctx := r.Context()
	id := catalog.ParseID(r.FormValue("id"))
	if id == "" {
		http.Error(w, "missing product id", http.StatusBadRequest)
		return
	}

	sess := s.newSession(ctx, w)
	if sess == nil {
		return
	}

	if err := command(sess, id); err != nil {
		slog.ErrorContext(ctx, "storefront command failed", "id", id, "error", err)
		http.Error(w, "could not update your items", http.StatusInternalServerError)
		return
	}

	back := r.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func criteriaFromQuery(query map[string][]string) view.Criteria {
	var criteria view.Criteria
	criteria.Parents = query["cat"]
	criteria.Brands = query["brand"]

	min, minErr := strconv.ParseFloat(first(query["min"]), 64)
	max, maxErr := strconv.ParseFloat(first(query["max"]), 64)
	if minErr == nil || maxErr == nil {
		if maxErr != nil || max <= 0 {
			max = maxPrice
		}
		if minErr != nil {
			min = 0
		}
		if min > 0 || max < maxPrice {
			criteria.Price = &view.PriceRange{Min: min, Max: max}
		}
	}

	if rating, err := strconv.ParseFloat(first(query["rating"]), 64); err == nil {
		criteria.MinRating = &rating
	}
	return criteria
}

// maxPrice stands in for an open upper bound when only a minimum is given.
const maxPrice = 1e9

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
