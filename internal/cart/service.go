package cart

import (
	"context"
	"fmt"
	"log"
	"sort"

	"kasir/internal/api"
	"kasir/internal/journal"
	"kasir/internal/models"
)

// Service drives the transaction screen: it owns the cart, caches the
// product list the cart validates against, and runs the checkout flow
// against the backend collaborators. The product cache is read-only shared
// state from the cart's point of view; it is only ever replaced wholesale by
// RefreshProducts.
type Service struct {
	cart      *Cart
	products  map[string]models.Product
	source    api.ProductSource
	shifts    api.ShiftProvider
	submitter api.CheckoutSubmitter
	journal   journal.Journal
}

// NewService creates a Service. The journal may be nil; journaling is a
// best-effort audit trail and never fails a checkout.
func NewService(source api.ProductSource, shifts api.ShiftProvider, submitter api.CheckoutSubmitter, jrnl journal.Journal) *Service {
	return &Service{
		cart:      New(),
		products:  make(map[string]models.Product),
		source:    source,
		shifts:    shifts,
		submitter: submitter,
		journal:   jrnl,
	}
}

// Cart exposes the underlying cart for rendering.
func (s *Service) Cart() *Cart {
	return s.cart
}

// RefreshProducts replaces the product cache with the backend's latest
// catalog. Called at screen load and after every successful checkout.
func (s *Service) RefreshProducts(ctx context.Context) error {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh products: %w", err)
	}
	cache := make(map[string]models.Product, len(products))
	for _, p := range products {
		cache[p.ID] = p
	}
	s.products = cache
	return nil
}

// Products returns the cached catalog sorted by name.
func (s *Service) Products() []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddItem resolves a product from the cache and puts it in the cart.
func (s *Service) AddItem(productID string) error {
	p, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("product %s not found", productID)
	}
	return s.cart.AddItem(p)
}

// IncreaseQuantity increments a cart line by one, bounded by its snapshot.
func (s *Service) IncreaseQuantity(productID string) error {
	return s.cart.IncreaseQuantity(productID)
}

// DecreaseQuantity decrements a cart line by one with a floor of one.
func (s *Service) DecreaseQuantity(productID string) error {
	return s.cart.DecreaseQuantity(productID)
}

// RemoveItem deletes a cart line.
func (s *Service) RemoveItem(productID string) error {
	return s.cart.RemoveItem(productID)
}

// Checkout submits the cart as a finalized transaction.
//
// The flow is: empty-cart and re-entry guards, shift lookup for non-admin
// actors, local stock re-validation against the cached product list, then a
// single submit. Stock here is only the client's latest snapshot; the server
// remains the final authority and its rejection message is surfaced
// verbatim. On success the cart is cleared, the receipt journaled, and the
// product list refreshed to pull updated stock. On failure the cart is left
// exactly as submitted and nothing is retried.
func (s *Service) Checkout(ctx context.Context, paymentMethod string, actor models.User) (*models.Receipt, error) {
	if s.cart.Status() == StatusSubmitting {
		return nil, ErrCheckoutInProgress
	}
	if s.cart.Empty() {
		return nil, ErrEmptyCart
	}

	shiftID := ""
	if !actor.IsAdmin() {
		id, err := s.shifts.CurrentShiftID(ctx)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, ErrNoActiveShift
		}
		shiftID = id
	}

	if err := s.revalidateStock(); err != nil {
		return nil, err
	}

	lines := s.cart.Lines()
	items := make([]models.CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.CheckoutItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	req := models.CheckoutRequest{
		TotalAmount:   s.cart.Total(),
		PaymentMethod: paymentMethod,
		Items:         items,
		ShiftID:       shiftID,
	}

	if err := s.cart.beginSubmit(); err != nil {
		return nil, err
	}
	receipt, err := s.submitter.SubmitCheckout(ctx, req)
	if err != nil {
		s.cart.failSubmit()
		return nil, err
	}
	s.cart.completeSubmit()

	if s.journal != nil {
		if jerr := s.journal.Append(receipt); jerr != nil {
			log.Printf("Warning: failed to journal receipt %s: %v", receipt.ID, jerr)
		}
	}
	if rerr := s.RefreshProducts(ctx); rerr != nil {
		log.Printf("Warning: failed to refresh products after checkout: %v", rerr)
	}
	return receipt, nil
}

// revalidateStock compares every cart line against the latest known product
// stock before the backend is contacted. A product missing from the cache is
// treated as having no stock.
func (s *Service) revalidateStock() error {
	var conflicts []StockConflict
	for _, line := range s.cart.Lines() {
		available := 0
		if p, ok := s.products[line.ProductID]; ok {
			available = p.Stock
		}
		if line.Quantity > available {
			conflicts = append(conflicts, StockConflict{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: available,
			})
		}
	}
	if len(conflicts) > 0 {
		return &StockConflictError{Conflicts: conflicts}
	}
	return nil
}
