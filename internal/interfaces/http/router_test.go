package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/application/usecase"
	"github.com/pasqualotto/controle-estoque/internal/domain"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/memory"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/pdf"
	apphttp "github.com/pasqualotto/controle-estoque/internal/interfaces/http"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
	pkgjwt "github.com/pasqualotto/controle-estoque/pkg/jwt"
)

func newAPI(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	s := memory.NewStore(nil)
	t.Cleanup(func() { _ = s.Close() })

	branchRepo := memory.NewBranchRepository(s)
	productRepo := memory.NewProductRepository(s)
	movRepo := memory.NewMovementRepository(s)
	stock := inventory.NewStockUseCase(memory.NewStockRepository(s), branchRepo)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		BranchUC:         usecase.NewBranchUseCase(branchRepo),
		ProductUC:        usecase.NewProductUseCase(productRepo, branchRepo, logger.Nop()),
		Ledger:           inventory.NewLedgerUseCase(productRepo, movRepo, logger.Nop()),
		RegisterMovement: inventory.NewRegisterMovementUseCase(memory.NewTxRunner(s), logger.Nop()),
		Stock:            stock,
		Report:           inventory.NewReportUseCase(stock, pdf.NewMarotoStockReport("test")),
		StoreName:        "memory",
		JWTSecret:        jwtSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any, auth string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func TestAPI_FlujoCompleto(t *testing.T) {
	app := newAPI(t, "")

	resp, body := call(t, app, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "memory", decode[dto.HealthResponse](t, body).Store)

	resp, body = call(t, app, http.MethodPost, "/api/branches/1/products",
		map[string]any{"code": "PROD001", "name": "Widget", "unit_price": "10.00"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	product := decode[dto.ProductResponse](t, body)
	assert.Equal(t, 1, product.BranchID)

	resp, _ = call(t, app, http.MethodPost, "/api/branches/1/products",
		map[string]any{"code": "PROD001", "name": "Outro", "unit_price": 1}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = call(t, app, http.MethodPost, "/api/branches/1/movements",
		map[string]any{"product_id": product.ID, "type": "Entrada", "quantity": 50, "sector": "Compras"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/branches/1/movements",
		map[string]any{"product_id": product.ID, "type": "Saída", "quantity": 20, "sector": "Oficina"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/branches/1/movements",
		map[string]any{"product_id": product.ID, "type": "Saida", "quantity": 31, "sector": "Oficina"}, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	shortage := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "INSUFFICIENT_STOCK", shortage.Code)
	require.NotNil(t, shortage.Available)
	assert.Equal(t, int64(30), *shortage.Available)

	resp, body = call(t, app, http.MethodGet, "/api/products/"+product.ID+"/stock", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(30), decode[dto.CurrentStockResponse](t, body).CurrentQuantity)

	resp, body = call(t, app, http.MethodGet, "/api/branches/1/stock", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[dto.StockViewResponse](t, body)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "300.00", view.Items[0].TotalValue.StringFixed(2))
	assert.Equal(t, 1, view.Stats.WithStock)

	resp, body = call(t, app, http.MethodGet, "/api/branches/1/movements?type=Entrada", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movs := decode[dto.MovementListResponse](t, body)
	require.Len(t, movs.Items, 1)
	assert.Equal(t, "PROD001", movs.Items[0].ProductCode)

	resp, body = call(t, app, http.MethodGet, "/api/stock/summary", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[map[string]dto.BranchSummaryResponse](t, body)
	assert.Equal(t, int64(30), summary["Lucas do Rio Verde"].TotalQuantity)

	resp, body = call(t, app, http.MethodGet, "/api/branches/1/products/by-code/PROD001", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, product.ID, decode[dto.ProductResponse](t, body).ID)

	resp, body = call(t, app, http.MethodGet, "/api/branches/1/stock/report.pdf", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, body = call(t, app, http.MethodDelete, "/api/products", dto.RemoveRequest{IDs: []string{product.ID}}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), decode[dto.RemoveResponse](t, body).Removed)

	resp, body = call(t, app, http.MethodGet, "/api/branches/1/movements", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.MovementListResponse](t, body).Items)
}

func TestAPI_Errores(t *testing.T) {
	app := newAPI(t, "")
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"filial inexistente", http.MethodGet, "/api/branches/9/products", nil, http.StatusNotFound, "NOT_FOUND"},
		{"filial no numérica", http.MethodGet, "/api/branches/x/stock", nil, http.StatusBadRequest, "VALIDATION"},
		{"precio inválido", http.MethodPost, "/api/branches/1/products",
			map[string]any{"code": "A", "name": "B", "unit_price": "0"}, http.StatusBadRequest, "VALIDATION"},
		{"precio con tres decimales", http.MethodPost, "/api/branches/1/products",
			map[string]any{"code": "A", "name": "B", "unit_price": "10.005"}, http.StatusBadRequest, "VALIDATION"},
		{"precio fuera de rango", http.MethodPost, "/api/branches/1/products",
			map[string]any{"code": "A", "name": "B", "unit_price": "1000000000"}, http.StatusBadRequest, "VALIDATION"},
		{"cantidad fuera de rango", http.MethodPost, "/api/branches/1/movements",
			map[string]any{"product_id": "nope", "type": "Entrada", "quantity": int64(math.MaxInt64), "sector": "A"}, http.StatusBadRequest, "VALIDATION"},
		{"movimiento sin producto", http.MethodPost, "/api/branches/1/movements",
			map[string]any{"product_id": "nope", "type": "Entrada", "quantity": 1, "sector": "A"}, http.StatusNotFound, "NOT_FOUND"},
		{"tipo inválido", http.MethodPost, "/api/branches/1/movements",
			map[string]any{"product_id": "nope", "type": "Ajuste", "quantity": 1, "sector": "A"}, http.StatusBadRequest, "VALIDATION"},
		{"availability inválida", http.MethodGet, "/api/stock?availability=talvez", nil, http.StatusBadRequest, "VALIDATION"},
		{"código inexistente", http.MethodGet, "/api/branches/1/products/by-code/ZZZ", nil, http.StatusNotFound, "NOT_FOUND"},
		{"producto inexistente", http.MethodGet, "/api/products/nope", nil, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := call(t, app, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, body).Code)
		})
	}

	resp, _ := call(t, app, http.MethodPost, "/api/branches/1/products", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_FindByCodeConCaracteresEscapados(t *testing.T) {
	app := newAPI(t, "")

	resp, body := call(t, app, http.MethodPost, "/api/branches/1/products",
		map[string]any{"code": "CAFÉ 01", "name": "Café torrado", "unit_price": "25.90"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[dto.ProductResponse](t, body)

	path := "/api/branches/1/products/by-code/" + url.PathEscape("CAFÉ 01")
	require.Equal(t, "/api/branches/1/products/by-code/CAF%C3%89%2001", path)
	resp, body = call(t, app, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, created.ID, decode[dto.ProductResponse](t, body).ID)

	resp, _ = call(t, app, http.MethodGet, "/api/branches/1/products/by-code/caf%C3%A9%2001", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type branchCheckerFunc func(ctx context.Context, id int) (*dto.BranchResponse, error)

func (f branchCheckerFunc) GetByID(ctx context.Context, id int) (*dto.BranchResponse, error) {
	return f(ctx, id)
}

func TestRequireBranch_MapeaErrores(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"almacenamiento caído", fmt.Errorf("get branch: %w", domain.ErrStorageUnavailable), http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{"error inesperado", errors.New("scan branch: columna desconocida"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			checker := branchCheckerFunc(func(context.Context, int) (*dto.BranchResponse, error) { return nil, tt.err })
			app.Get("/branches/:branchID", apphttp.RequireBranch(checker), func(c *fiber.Ctx) error {
				return c.SendStatus(http.StatusOK)
			})

			resp, body := call(t, app, http.MethodGet, "/branches/1", nil, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, body).Code)
		})
	}
}

func TestAPI_ConJWT(t *testing.T) {
	app := newAPI(t, testJWTSecret)
	operador := tokenForRole(t, pkgjwt.RoleOperador) // filial 2
	admin := tokenForRole(t, pkgjwt.RoleAdmin)

	resp, _ := call(t, app, http.MethodGet, "/api/branches", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, fmt.Sprintf("/api/branches/%d/stock", testBranchID), nil, operador)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/branches/1/stock", nil, operador)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/stock/summary", nil, operador)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodDelete, "/api/movements", dto.RemoveRequest{IDs: []string{"x"}}, operador)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodDelete, "/api/movements", dto.RemoveRequest{IDs: []string{"x"}}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decode[dto.RemoveResponse](t, body).Removed)

	resp, _ = call(t, app, http.MethodGet, "/api/branches/1/stock", nil, admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Productos por ID: el operador solo ve los de su filial.
	resp, body = call(t, app, http.MethodPost, "/api/branches/1/products",
		map[string]any{"code": "P1", "name": "Ajeno", "unit_price": "5.00"}, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	foreign := decode[dto.ProductResponse](t, body)

	resp, body = call(t, app, http.MethodPost, fmt.Sprintf("/api/branches/%d/products", testBranchID),
		map[string]any{"code": "P2", "name": "Propio", "unit_price": "5.00"}, operador)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	own := decode[dto.ProductResponse](t, body)

	resp, body = call(t, app, http.MethodGet, "/api/products/"+foreign.ID, nil, operador)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, body).Code)

	resp, _ = call(t, app, http.MethodGet, "/api/products/"+foreign.ID+"/stock", nil, operador)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products/"+own.ID, nil, operador)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products/"+own.ID+"/stock", nil, operador)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products/"+foreign.ID, nil, admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
