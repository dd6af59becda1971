package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
)

func TestInspect_Order(t *testing.T) {
	def := Inspect(order.Order{}, "order", TypeDocument)

	assert.Equal(t, "order", def.Name)
	assert.Equal(t, TypeDocument, def.Type)

	idField, ok := def.Field("id")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, idField.Type)
	assert.True(t, idField.ReadOnly)

	createdAt, ok := def.Field("createdAt")
	require.True(t, ok)
	assert.Equal(t, TypeDate, createdAt.Type)
	assert.True(t, createdAt.ReadOnly)

	code, ok := def.Field("orderId")
	require.True(t, ok)
	assert.Equal(t, TypeString, code.Type)
	assert.True(t, code.Required)

	customer, ok := def.Field("customerId")
	require.True(t, ok)
	assert.Equal(t, TypeReference, customer.Type)
	assert.Equal(t, "account", customer.ReferenceType)
	assert.Equal(t, "Customer ID", customer.Label)

	amount, ok := def.Field("amount")
	require.True(t, ok)
	assert.Equal(t, TypeMoney, amount.Type)
	assert.Equal(t, 2, amount.Scale)
}

func TestInspect_SkipsHiddenFields(t *testing.T) {
	def := Inspect(&account.Account{}, "", TypeCatalog)

	assert.Equal(t, "Account", def.Name)
	_, ok := def.Field("password")
	assert.False(t, ok)
	_, ok = def.Field("Password")
	assert.False(t, ok)

	username, ok := def.Field("username")
	require.True(t, ok)
	assert.True(t, username.Required)
}

func TestInspect_Product(t *testing.T) {
	def := Inspect(product.Product{}, "product", TypeCatalog)

	stock, ok := def.Field("stock")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, stock.Type)
	assert.False(t, stock.Required)
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(EntityDef{Name: "order"})
	reg.Register(EntityDef{Name: "account"})
	reg.Register(EntityDef{Name: "metric"})

	names := make([]string, 0)
	for _, def := range reg.List() {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"account", "metric", "order"}, names)

	_, ok := reg.Get("missing")
	assert.False(t, ok)
}

func TestGuessLabel(t *testing.T) {
	assert.Equal(t, "Customer Name", guessLabel("CustomerName"))
	assert.Equal(t, "ID", guessLabel("ID"))
	assert.Equal(t, "Product ID", guessLabel("ProductID"))
	assert.Equal(t, "Created At", guessLabel("CreatedAt"))
}
