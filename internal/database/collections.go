package database

// Collection names. The seed planner counts every one of these before
// writing anything.
const (
	CollectionCatalogs = "catalogs"
	CollectionProducts = "products"
	CollectionUsers    = "users"
	CollectionCoupons  = "coupons"
	CollectionInvoices = "invoices"
	CollectionOrders   = "orders"
	CollectionReviews  = "reviews"
)

// TrackedCollections lists every collection the emptiness check covers.
func TrackedCollections() []string {
	return []string{
		CollectionCatalogs,
		CollectionProducts,
		CollectionUsers,
		CollectionCoupons,
		CollectionInvoices,
		CollectionOrders,
		CollectionReviews,
	}
}
