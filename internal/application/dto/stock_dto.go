package dto

// UpdateStockRequest body para POST /update-stock/.
// Las entradas se aplican estrictamente en el orden de la lista.
type UpdateStockRequest struct {
	ProductID    string             `json:"product_id"`
	StockUpdates []StockUpdateEntry `json:"stock_updates"`
}

// StockUpdateEntry un retiro {supplier_id, quantity}. Punteros para distinguir
// campo ausente de valor cero: quantity puede ser 0 pero no faltar.
type StockUpdateEntry struct {
	SupplierID *string `json:"supplier_id"`
	Quantity   *int64  `json:"quantity"`
}

// UpdateStockResponse resultado de una reconciliación exitosa: el producto con su
// total recalculado y la suma de los retiros aplicados.
type UpdateStockResponse struct {
	Product        ProductResponse `json:"product"`
	TotalWithdrawn int64           `json:"total_withdrawn"`
}
