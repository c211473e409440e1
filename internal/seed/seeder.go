package seed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/models"
)

// Store is the narrow store contract the planner needs: count a collection
// and batch-insert documents. *database.Store satisfies it.
type Store interface {
	Count(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []interface{}) error
}

// Seeder creates one consistent set of interlinked sample records across all
// collections, but only when the store is observed completely empty.
//
// Stages run strictly in dependency order (catalogs, products, users,
// orders, invoices, coupons, reviews); a stage failure aborts the remaining
// stages without rolling back what is already inserted. This is a known
// limitation of sample-data seeding, not a correctness concern for
// production traffic.
type Seeder struct {
	store Store
}

// NewSeeder creates a Seeder over the given store.
func NewSeeder(store Store) *Seeder {
	return &Seeder{store: store}
}

// SeedIfEmpty runs the emptiness check and, if no tracked collection holds
// any record, inserts the sample data set. Call only after a successful
// connection.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	empty, err := s.isEmpty(ctx)
	if err != nil {
		return fmt.Errorf("emptiness check: %w", err)
	}
	if !empty {
		log.Info().Msg("Store already has data, skipping sample seed")
		return nil
	}
	return s.seed(ctx)
}

// isEmpty counts every tracked collection concurrently and reports whether
// the sum is zero. The counts are independent reads, so they may race each
// other freely.
func (s *Seeder) isEmpty(ctx context.Context) (bool, error) {
	collections := database.TrackedCollections()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
		first error
	)
	for _, name := range collections {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			n, err := s.store.Count(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && first == nil {
				first = fmt.Errorf("count %s: %w", name, err)
				return
			}
			total += n
		}(name)
	}
	wg.Wait()

	if first != nil {
		return false, first
	}
	return total == 0, nil
}

// seed inserts the sample data set stage by stage. Each stage's writes are
// acknowledged before the next stage starts, because later stages consume
// identifiers produced earlier.
func (s *Seeder) seed(ctx context.Context) error {
	catalogs := sampleCatalogs()
	if err := s.insert(ctx, database.CollectionCatalogs, toDocs(catalogs)); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}
	log.Info().Int("count", len(catalogs)).Msg("Sample catalogs created")

	products := sampleProducts()
	if err := s.insert(ctx, database.CollectionProducts, toDocs(products)); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Info().Int("count", len(products)).Msg("Sample products created")

	// One credential is hashed once and shared by every seeded account.
	// Sample data only; real accounts get individual hashes at registration.
	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash sample credential: %w", err)
	}
	users := sampleUsers(string(hash))
	if err := s.insert(ctx, database.CollectionUsers, toDocs(users)); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Info().Int("count", len(users)).Msg("Sample users created")

	baseUser := pickUser(users, 1)
	secondUser := pickUser(users, 2)

	now := time.Now().UTC()
	orders := sampleOrders(products, baseUser, secondUser, now)
	if err := s.insert(ctx, database.CollectionOrders, toDocs(orders)); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	log.Info().Int("count", len(orders)).Msg("Sample orders created")

	invoices := deriveInvoices(orders, baseUser, secondUser)
	if err := s.insert(ctx, database.CollectionInvoices, toDocs(invoices)); err != nil {
		return fmt.Errorf("seed invoices: %w", err)
	}
	log.Info().Int("count", len(invoices)).Msg("Sample invoices created")

	coupons := sampleCoupons()
	if err := s.insert(ctx, database.CollectionCoupons, toDocs(coupons)); err != nil {
		return fmt.Errorf("seed coupons: %w", err)
	}
	log.Info().Int("count", len(coupons)).Msg("Sample coupons created")

	reviews := sampleReviews(products)
	if err := s.insert(ctx, database.CollectionReviews, toDocs(reviews)); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	log.Info().Int("count", len(reviews)).Msg("Sample reviews created")

	log.Info().Msg("Store initialized with sample data")
	return nil
}

func (s *Seeder) insert(ctx context.Context, collection string, docs []interface{}) error {
	return s.store.InsertMany(ctx, collection, docs)
}

// pickUser returns the user at idx, falling back to the first seeded user
// when fewer records exist.
func pickUser(users []models.User, idx int) models.User {
	if idx < len(users) {
		return users[idx]
	}
	return users[0]
}

// deriveInvoices produces exactly one invoice per order, reconciling every
// amount from the order itself. The first seeded order carries a fixed
// discount; finalAmount = productTotal - discountAmount for all of them.
func deriveInvoices(orders []models.Order, baseUser, secondUser models.User) []models.Invoice {
	invoices := make([]models.Invoice, 0, len(orders))
	for i, order := range orders {
		owner := secondUser
		var discount int64
		if i == 0 {
			owner = baseUser
			discount = firstOrderDiscount
		}
		invoices = append(invoices, models.Invoice{
			OrderID:        order.ID.Hex(),
			OrderDate:      order.OrderDate,
			PaymentDate:    order.OrderDate,
			FullName:       owner.FullName,
			Email:          owner.Email,
			ProductTotal:   order.TotalAmount,
			DiscountAmount: discount,
			FinalAmount:    order.TotalAmount - discount,
			PaymentMethod:  order.PaymentMethod,
		})
	}
	return invoices
}

// toDocs converts a typed slice to the []interface{} the store expects.
func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
