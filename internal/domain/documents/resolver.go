package documents

import (
	"context"

	"shopadmin/internal/core/id"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/pkg/logger"
)

// NameResolver looks up display names for the catalog records a document refers to.
// References are weak: a missing or unreadable record resolves to "".
type NameResolver struct {
	accounts account.Repository
	products product.Repository
}

// NewNameResolver creates a new NameResolver.
func NewNameResolver(accounts account.Repository, products product.Repository) *NameResolver {
	return &NameResolver{
		accounts: accounts,
		products: products,
	}
}

// CustomerName returns the username of the referenced account.
func (r *NameResolver) CustomerName(ctx context.Context, customerID id.ID) string {
	if id.IsNil(customerID) || r.accounts == nil {
		return ""
	}
	acc, err := r.accounts.GetByID(ctx, customerID)
	if err != nil || acc == nil {
		logger.Debug(ctx, "customer not resolved", "customer_id", customerID, "error", err)
		return ""
	}
	return acc.Username
}

// ProductName returns the name of the referenced catalog item.
func (r *NameResolver) ProductName(ctx context.Context, productID id.ID) string {
	if id.IsNil(productID) || r.products == nil {
		return ""
	}
	p, err := r.products.GetByID(ctx, productID)
	if err != nil || p == nil {
		logger.Debug(ctx, "product not resolved", "product_id", productID, "error", err)
		return ""
	}
	return p.Name
}
