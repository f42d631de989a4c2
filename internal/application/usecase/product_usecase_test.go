package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-api/internal/application/dto"
	"github.com/tu-usuario/stock-api/internal/application/usecase"
	"github.com/tu-usuario/stock-api/internal/domain"
	"github.com/tu-usuario/stock-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewProductUseCase(store.ProductRepository()), store
}

func ptrInt64(v int64) *int64 { return &v }

func ptrInt(v int) *int { return &v }

func ptrString(v string) *string { return &v }

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func createProductReq(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{Name: name, Quantity: ptrInt64(0), Price: ptrDecimal("9.99")}
}

func TestProductCreate_Valido(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Create(createProductReq("Widget"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Widget", out.Name)
	assert.Equal(t, int64(0), out.Quantity)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("9.99")))
	assert.False(t, out.CreatedAt.IsZero())
}

// Los campos requeridos y los rangos se reportan por campo en un ValidationError.
func TestProductCreate_ValidacionPorCampo(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "quantity")
	assert.Contains(t, verr.Fields, "price")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		Name:     "Widget",
		Quantity: ptrInt64(-1),
		Price:    ptrDecimal("-0.01"),
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")
	assert.Contains(t, verr.Fields, "price")
}

func TestProductGetByID_Inexistente_NotFound(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El listado devuelve los más recientes primero.
func TestProductList_MasRecientesPrimero(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.Create(createProductReq("Primero"))
	require.NoError(t, err)
	_, err = uc.Create(createProductReq("Segundo"))
	require.NoError(t, err)

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Segundo", items[0].Name)
	assert.Equal(t, "Primero", items[1].Name)
}

// PUT exige todos los campos editables; PATCH aplica solo los presentes.
func TestProductUpdate_CompletoYParcial(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(createProductReq("Widget"))
	require.NoError(t, err)

	// PUT sin price → error de campo
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: ptrString("Widget v2")}, false)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")

	// PATCH solo name
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: ptrString("Widget v2")}, true)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("9.99")), "price no enviado debe conservarse")

	// PUT completo
	out, err = uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  ptrString("Widget v3"),
		Price: ptrDecimal("19.99"),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "Widget v3", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestProductUpdate_Inexistente_NotFound(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: ptrString("X")}, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar un producto elimina también sus proveedores (cascada).
func TestProductDelete_CascadaSobreProveedores(t *testing.T) {
	store := memory.NewStore()
	productUC := usecase.NewProductUseCase(store.ProductRepository())
	supplierUC := usecase.NewSupplierUseCase(store.SupplierRepository(), store.ProductRepository())

	p, err := productUC.Create(createProductReq("Widget"))
	require.NoError(t, err)
	s, err := supplierUC.Create(dto.CreateSupplierRequest{
		Name:      "Acme",
		LeadTime:  ptrInt(5),
		ProductID: p.ID,
		Quantity:  ptrInt64(100),
		Cost:      ptrDecimal("2.00"),
	})
	require.NoError(t, err)

	require.NoError(t, productUC.Delete(p.ID))

	_, err = productUC.GetByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = supplierUC.GetByID(s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "los proveedores del producto deben caer en cascada")
}

func TestProductDelete_Inexistente_NotFound(t *testing.T) {
	uc, _ := newProductUC(t)
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
