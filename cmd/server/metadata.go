package main

import (
	"slices"

	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/infrastructure/storage/memory"
	"shopadmin/internal/metadata"
)

// setupMetadataRegistry initializes and populates the metadata registry.
func setupMetadataRegistry() *metadata.Registry {
	reg := metadata.NewRegistry()

	register := func(entity any, name string, typ metadata.EntityType, label, collection string, mutable bool) metadata.EntityDef {
		def := metadata.Inspect(entity, name, typ)
		def.Label = label
		def.Collection = collection
		def.Mutable = mutable
		return def
	}

	// --- Catalogs ---
	reg.Register(register(account.Account{}, "account", metadata.TypeCatalog, "Accounts", memory.Accounts, false))
	reg.Register(register(product.Product{}, "product", metadata.TypeCatalog, "Products", memory.Products, true))

	// --- Documents ---
	orders := register(order.Order{}, "order", metadata.TypeDocument, "Orders", memory.Orders, true)
	if status, ok := orders.Field("status"); ok {
		status.Type = metadata.TypeEnum
		status.Options = slices.Clone(order.KnownStatuses)
	}
	reg.Register(orders)

	// --- Registers ---
	reg.Register(register(metric.Metric{}, "metric", metadata.TypeRegister, "Metrics", memory.Metrics, false))

	return reg
}
