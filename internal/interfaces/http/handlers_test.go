package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-api/internal/application/stock"
	"github.com/tu-usuario/stock-api/internal/application/usecase"
	"github.com/tu-usuario/stock-api/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/stock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type failPinger struct{}

func (failPinger) Ping(context.Context) error { return errors.New("connection refused") }

// envelope espejo del sobre {success, message, data, errors} para decodificar respuestas.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func buildTestApp(db apphttp.Pinger) *fiber.App {
	app := fiber.New()
	store := memory.NewStore()
	productUC := usecase.NewProductUseCase(store.ProductRepository())
	supplierUC := usecase.NewSupplierUseCase(store.SupplierRepository(), store.ProductRepository())
	updateStockUC := stock.NewUpdateStockUseCase(store.TxRunner())
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		UpdateStock: updateStockUC,
		DB:          db,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type productJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

type supplierJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func createProduct(t *testing.T, app *fiber.App, name string) productJSON {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/products/", fiber.Map{
		"name": name, "quantity": 0, "price": "9.99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p productJSON
	decodeData(t, env, &p)
	return p
}

func createSupplier(t *testing.T, app *fiber.App, name, productID string, quantity int64) supplierJSON {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/suppliers/", fiber.Map{
		"name": name, "quality": "standard", "lead_time": 5,
		"product_id": productID, "quantity": quantity, "cost": "2.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var s supplierJSON
	decodeData(t, env, &s)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación end-to-end (escenarios de la operación /update-stock/)
// ──────────────────────────────────────────────────────────────────────────────

// Producto creado con 0 → proveedor con 100 → retiro de 30 → 200 con
// Supplier.quantity=70 y Product.quantity=70.
func TestUpdateStockEndpoint_EscenarioExitoso(t *testing.T) {
	app := buildTestApp(okPinger{})
	p := createProduct(t, app, "Widget")
	s := createSupplier(t, app, "Acme", p.ID, 100)

	resp, env := doJSON(t, app, http.MethodPost, "/update-stock/", fiber.Map{
		"product_id": p.ID,
		"stock_updates": []fiber.Map{
			{"supplier_id": s.ID, "quantity": 30},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var out struct {
		Product        productJSON `json:"product"`
		TotalWithdrawn int64       `json:"total_withdrawn"`
	}
	decodeData(t, env, &out)
	assert.Equal(t, int64(30), out.TotalWithdrawn)
	assert.Equal(t, int64(70), out.Product.Quantity)

	// El proveedor quedó en 70
	respS, envS := doJSON(t, app, http.MethodGet, "/suppliers/"+s.ID+"/", nil)
	require.Equal(t, http.StatusOK, respS.StatusCode)
	var got supplierJSON
	decodeData(t, envS, &got)
	assert.Equal(t, int64(70), got.Quantity)
}

// Retiro de 150 con 100 disponibles → 400 y ningún cambio persistido.
func TestUpdateStockEndpoint_StockInsuficiente(t *testing.T) {
	app := buildTestApp(okPinger{})
	p := createProduct(t, app, "Widget")
	s := createSupplier(t, app, "Acme", p.ID, 100)

	resp, env := doJSON(t, app, http.MethodPost, "/update-stock/", fiber.Map{
		"product_id": p.ID,
		"stock_updates": []fiber.Map{
			{"supplier_id": s.ID, "quantity": 150},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "100", "el mensaje debe reportar el disponible")

	_, envS := doJSON(t, app, http.MethodGet, "/suppliers/"+s.ID+"/", nil)
	var got supplierJSON
	decodeData(t, envS, &got)
	assert.Equal(t, int64(100), got.Quantity)

	_, envP := doJSON(t, app, http.MethodGet, "/products/"+p.ID+"/", nil)
	var gotP productJSON
	decodeData(t, envP, &gotP)
	assert.Equal(t, int64(0), gotP.Quantity)
}

// product_id inexistente → 404 sin mutación.
func TestUpdateStockEndpoint_ProductoInexistente(t *testing.T) {
	app := buildTestApp(okPinger{})
	resp, env := doJSON(t, app, http.MethodPost, "/update-stock/", fiber.Map{
		"product_id": "11111111-1111-1111-1111-111111111111",
		"stock_updates": []fiber.Map{
			{"supplier_id": "22222222-2222-2222-2222-222222222222", "quantity": 10},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestUpdateStockEndpoint_ListaVacia(t *testing.T) {
	app := buildTestApp(okPinger{})
	p := createProduct(t, app, "Widget")

	resp, env := doJSON(t, app, http.MethodPost, "/update-stock/", fiber.Map{
		"product_id":    p.ID,
		"stock_updates": []fiber.Map{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD y sobre uniforme
// ──────────────────────────────────────────────────────────────────────────────

func TestProductEndpoints_CRUD(t *testing.T) {
	app := buildTestApp(okPinger{})

	// Listado vacío
	resp, env := doJSON(t, app, http.MethodGet, "/products/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)

	p := createProduct(t, app, "Widget")

	// Detalle
	resp, env = doJSON(t, app, http.MethodGet, "/products/"+p.ID+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got productJSON
	decodeData(t, env, &got)
	assert.Equal(t, "Widget", got.Name)

	// PATCH parcial
	resp, env = doJSON(t, app, http.MethodPatch, "/products/"+p.ID+"/", fiber.Map{"name": "Widget v2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, env, &got)
	assert.Equal(t, "Widget v2", got.Name)

	// DELETE
	resp, _ = doJSON(t, app, http.MethodDelete, "/products/"+p.ID+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, env = doJSON(t, app, http.MethodGet, "/products/"+p.ID+"/", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

// Un body inválido produce 400 con el mapa de errores por campo en el sobre.
func TestProductCreateEndpoint_ErroresPorCampo(t *testing.T) {
	app := buildTestApp(okPinger{})
	resp, env := doJSON(t, app, http.MethodPost, "/products/", fiber.Map{"name": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "quantity")
	assert.Contains(t, env.Errors, "price")
}

func TestSupplierEndpoints_FiltroYPorProducto(t *testing.T) {
	app := buildTestApp(okPinger{})
	p1 := createProduct(t, app, "Widget")
	p2 := createProduct(t, app, "Gadget")
	createSupplier(t, app, "Acme", p1.ID, 100)
	createSupplier(t, app, "Globex", p2.ID, 50)

	// Filtro por producto
	resp, env := doJSON(t, app, http.MethodGet, "/suppliers/?product_id="+p1.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []supplierJSON
	decodeData(t, env, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].Name)

	// Variante con filtro vacío → 400
	resp, env = doJSON(t, app, http.MethodGet, "/suppliers/?product_id=", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)

	// Proveedores de un producto
	resp, env = doJSON(t, app, http.MethodGet, "/products/"+p2.ID+"/suppliers/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, env, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Globex", items[0].Name)

	// Producto inexistente → 404
	resp, _ = doJSON(t, app, http.MethodGet, "/products/33333333-3333-3333-3333-333333333333/suppliers/", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sonda de salud
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthEndpoint(t *testing.T) {
	app := buildTestApp(okPinger{})
	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status    string            `json:"status"`
		Checks    map[string]string `json:"checks"`
		Timestamp string            `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "ok", body.Checks["application"])
	assert.Equal(t, "ok", body.Checks["database"])
	assert.NotEmpty(t, body.Timestamp)
}

// La sonda expone el detalle del fallo de la base de datos y responde 503.
func TestHealthEndpoint_BaseDeDatosCaida(t *testing.T) {
	app := buildTestApp(failPinger{})
	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Contains(t, body.Checks["database"], "connection refused")
}
