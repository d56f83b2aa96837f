// Package store holds the single in-memory snapshot of storefront state:
// session, catalog, cart and UI flags. Mutations are synchronous; the product
// and auth operations reach the backend first and patch local state only after
// the backend confirms.
package store

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/account"
	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/api"
	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/cart"
	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/catalog"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
)

const defaultRating = 4.5

const (
	adminAvatarURL = "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg"
	userAvatarURL  = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"
)

// CatalogAPI is the slice of the backend the store needs for products.
type CatalogAPI interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Create(ctx context.Context, in catalog.NewProduct) (catalog.Product, error)
	Update(ctx context.Context, id catalog.ID, patch catalog.Patch) (catalog.Product, error)
	Delete(ctx context.Context, id catalog.ID) error
}

// AuthAPI is the slice of the backend the store needs for accounts.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.LoginResponse, error)
	Register(ctx context.Context, name, email, password string) (api.RegisterResponse, error)
}

type Store struct {
	catalogAPI CatalogAPI
	authAPI    AuthAPI
	logger     *log.Logger

	mu           sync.Mutex
	user         *account.User
	products     []catalog.Product
	items        []cart.Item
	cartOpen     bool
	loading      bool
	testimonials []Testimonial
}

// New builds the store. It is constructed once at startup and handed to
// consumers by reference; there is no hidden re-initialization.
func New(catalogAPI CatalogAPI, authAPI AuthAPI, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		catalogAPI:   catalogAPI,
		authAPI:      authAPI,
		logger:       logger,
		testimonials: defaultTestimonials(),
	}
}

// FetchProducts replaces the whole catalog snapshot with whatever the backend
// returns. Fetch failures are logged and swallowed: the previous snapshot is
// kept and an empty slice is returned, so a dead backend never blanks a
// catalog that is already on screen. Writes below do NOT share this behavior.
func (s *Store) FetchProducts(ctx context.Context) []catalog.Product {
	products, err := s.catalogAPI.List(ctx)
	if err != nil {
		s.logger.Printf("fetch products: %v", err)
		return []catalog.Product{}
	}
	if products == nil {
		products = []catalog.Product{}
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return s.Products()
}

// ReplaceProducts swaps in a caller-provided snapshot. A nil slice is ignored.
func (s *Store) ReplaceProducts(products []catalog.Product) {
	if products == nil {
		return
	}
	cp := make([]catalog.Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}

// AddProduct creates the product on the backend and appends the server-assigned
// result to the snapshot. Rating and review count always start at their
// defaults regardless of what the caller filled in. On failure the snapshot is
// untouched and the error is returned for the UI to surface.
func (s *Store) AddProduct(ctx context.Context, in catalog.NewProduct) (catalog.Product, error) {
	in.Rating = defaultRating
	in.Reviews = 0

	created, err := s.catalogAPI.Create(ctx, in)
	if err != nil {
		s.logger.Printf("add product: %v", err)
		return catalog.Product{}, err
	}

	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateProduct sends a partial update and replaces the matching snapshot entry
// with the full product echoed back by the backend — not a client-side merge of
// the patch.
func (s *Store) UpdateProduct(ctx context.Context, id catalog.ID, patch catalog.Patch) (catalog.Product, error) {
	updated, err := s.catalogAPI.Update(ctx, id, patch)
	if err != nil {
		s.logger.Printf("update product %s: %v", id, err)
		return catalog.Product{}, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteProduct deletes on the backend, then drops the matching entry locally.
func (s *Store) DeleteProduct(ctx context.Context, id catalog.ID) error {
	if err := s.catalogAPI.Delete(ctx, id); err != nil {
		s.logger.Printf("delete product %s: %v", id, err)
		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()
	return nil
}

// Products returns a copy of the current catalog snapshot.
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FeaturedProducts filters the current snapshot on every call rather than
// caching a list that could go stale across catalog mutations.
func (s *Store) FeaturedProducts() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Login authenticates against the backend and installs the session on success.
// The backend is only the source of truth for the credential check and the
// role; display identity falls back to locally assembled values when the
// response does not carry them. Nothing is set on any failure path.
func (s *Store) Login(ctx context.Context, email, password string) (account.User, error) {
	res, err := s.authAPI.Login(ctx, email, password)
	if err != nil {
		s.logger.Printf("login %s: %v", email, err)
		return account.User{}, err
	}
	if !res.Success || res.Role == "" {
		if res.Message != "" {
			return account.User{}, errors.New(res.Message)
		}
		return account.User{}, ErrInvalidCredentials
	}

	user := sessionUser(email, res)
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

func sessionUser(email string, res api.LoginResponse) account.User {
	u := account.User{
		ID:     uuid.NewString(),
		Name:   "User",
		Email:  email,
		Role:   account.RoleUser,
		Avatar: userAvatarURL,
	}
	if res.Role == string(account.RoleAdmin) {
		u.Name = "Admin"
		u.Role = account.RoleAdmin
		u.Avatar = adminAvatarURL
	}
	if res.ID != nil {
		u.ID = strconv.FormatInt(*res.ID, 10)
	}
	if res.Name != "" {
		u.Name = res.Name
	}
	return u
}

// Register creates a new user account. It does not log the user in; the
// storefront sends them to the login page afterwards.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.authAPI.Register(ctx, name, email, password); err != nil {
		s.logger.Printf("register %s: %v", email, err)
		return err
	}
	return nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// User returns the current session user, if any.
func (s *Store) User() (account.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return account.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// AddToCart adds one unit of the product, merging with an existing entry by
// product id. Cart state is local-only and never reaches the backend.
func (s *Store) AddToCart(p catalog.Product) {
	s.mu.Lock()
	s.items = cart.Add(s.items, p)
	s.mu.Unlock()
}

func (s *Store) RemoveFromCart(id catalog.ID) {
	s.mu.Lock()
	s.items = cart.Remove(s.items, id)
	s.mu.Unlock()
}

func (s *Store) UpdateQuantity(id catalog.ID, quantity int) {
	s.mu.Lock()
	s.items = cart.SetQuantity(s.items, id, quantity)
	s.mu.Unlock()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Cart returns a copy of the current cart contents.
func (s *Store) Cart() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Total(s.items)
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Count(s.items)
}

// Checkout empties a non-empty cart and reports the order total. No order is
// submitted anywhere; payment stays outside the storefront.
func (s *Store) Checkout() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return 0, ErrEmptyCart
	}
	total := cart.Total(s.items)
	s.items = nil
	return total, nil
}

func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	s.cartOpen = open
	s.mu.Unlock()
}

func (s *Store) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Testimonials returns static marketing content seeded at construction.
func (s *Store) Testimonials() []Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}
