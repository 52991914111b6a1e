package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swapmarket/internal/delivery/api/middleware"
	"swapmarket/internal/delivery/api/response"
	"swapmarket/internal/delivery/api/validator"
	deliverycontext "swapmarket/internal/delivery/context"
	"swapmarket/internal/domain/entity"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/infra/storage"
	"swapmarket/internal/market"
	mockService "swapmarket/internal/mocks/service"
	mockUsecase "swapmarket/internal/mocks/usecase"
	"swapmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	products  *mockUsecase.MockProductUsecase
	profiles  *mockUsecase.MockProfileUsecase
	swaps     *mockUsecase.MockSwapRequestUsecase
	roles     *mockUsecase.MockUserRoleUsecase
	orders    *mockUsecase.MockOrderUsecase
	cart      *mockUsecase.MockCartUsecase
	dashboard *mockUsecase.MockDashboardUsecase
	devices   *mockUsecase.MockDeviceUsecase
	facade    *market.Facade
	user      *entity.User
}

func createTestFixtures(t *testing.T) *handlerFixtures {
	f := &handlerFixtures{
		products:  mockUsecase.NewMockProductUsecase(t),
		profiles:  mockUsecase.NewMockProfileUsecase(t),
		swaps:     mockUsecase.NewMockSwapRequestUsecase(t),
		roles:     mockUsecase.NewMockUserRoleUsecase(t),
		orders:    mockUsecase.NewMockOrderUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
		user:      &entity.User{ID: uuid.New(), Email: "buyer@example.com", Name: "Buyer"},
	}
	f.facade = market.NewFacade(market.FacadeParams{
		Products:  f.products,
		Profiles:  f.profiles,
		Swaps:     f.swaps,
		Roles:     f.roles,
		Orders:    f.orders,
		Cart:      f.cart,
		Dashboard: f.dashboard,
		Devices:   f.devices,
	})

	return f
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// signedIn stands in for the authentication middleware.
func (f *handlerFixtures) signedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetUser(c, f.user)

		return next(c)
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.Envelope, map[string]any) {
	t.Helper()

	var raw struct {
		response.Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	var data map[string]any
	if len(raw.Data) > 0 && raw.Data[0] == '{' {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}

	return raw.Envelope, data
}

func TestProductHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *handlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"name":"iPhone 13","price":"850000","category":"smartphones"}`,
			setup: func(f *handlerFixtures) {
				f.products.EXPECT().CreateProduct(mock.Anything, f.user.ID, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
					return in.Name == "iPhone 13" && in.Price.Equal(decimal.NewFromInt(850000)) && in.Category == entity.CategorySmartphones
				})).Return(&entity.Product{ID: uuid.New(), Name: "iPhone 13", OwnerID: f.user.ID}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown category",
			body:       `{"name":"Toaster","price":"10","category":"kitchen"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "missing price",
			body:       `{"name":"iPad","category":"tablets"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFixtures(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			h := NewProductHandler(ProductHandlerParams{Facade: f.facade})
			e := newTestEcho()
			e.POST("/products", h.CreateProduct, f.signedIn)

			rec := doJSON(e, http.MethodPost, "/products", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env, _ := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			} else {
				assert.True(t, env.Success)
			}
		})
	}
}

func TestProductHandler_ListProductsFilters(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name       string
		query      string
		want       entity.ProductFilter
		wantStatus int
	}{
		{name: "no filter", wantStatus: http.StatusOK},
		{
			name:       "all filters",
			query:      "?category=laptops&status=available&owner_id=" + ownerID.String() + "&limit=5",
			want:       entity.ProductFilter{Category: entity.CategoryLaptops, Status: entity.ProductAvailable, OwnerID: ownerID, Limit: 5},
			wantStatus: http.StatusOK,
		},
		{name: "bad category", query: "?category=cars", wantStatus: http.StatusBadRequest},
		{name: "bad owner", query: "?owner_id=nope", wantStatus: http.StatusBadRequest},
		{name: "negative limit", query: "?limit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFixtures(t)
			if tt.wantStatus == http.StatusOK {
				f.products.EXPECT().ListProducts(mock.Anything, tt.want).Return([]*entity.Product{}, nil)
			}

			h := NewProductHandler(ProductHandlerParams{Facade: f.facade})
			e := newTestEcho()
			e.GET("/products", h.ListProducts)

			rec := doJSON(e, http.MethodGet, "/products"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProductHandler_UpdateForeignProductIsNotFound(t *testing.T) {
	f := createTestFixtures(t)
	productID := uuid.New()
	f.products.EXPECT().UpdateProduct(mock.Anything, f.user.ID, productID, mock.MatchedBy(func(u entity.ProductUpdate) bool {
		return u.Status != nil && *u.Status == entity.ProductSold && u.Name == nil
	})).Return(nil, domainerrors.ErrProductNotFound)

	h := NewProductHandler(ProductHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.PATCH("/products/:id", h.UpdateProduct, f.signedIn)

	rec := doJSON(e, http.MethodPatch, "/products/"+productID.String(), `{"status":"sold"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, string(domainerrors.KindNotFound), env.Error.Kind)
}

func TestProductHandler_UploadImage(t *testing.T) {
	f := createTestFixtures(t)
	f.products.EXPECT().UploadImage(mock.Anything, f.user.ID, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
		return in.Filename == "phone.png" && in.Size == 4
	})).Return("https://cdn.example.com/products/phone.png", nil)

	h := NewProductHandler(ProductHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.POST("/products/images", h.UploadImage, f.signedIn)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "phone.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/images", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "https://cdn.example.com/products/phone.png", data["url"])
}

func TestProductHandler_ShareQRCode(t *testing.T) {
	f := createTestFixtures(t)
	productID := uuid.New()
	f.products.EXPECT().ShareQRCode(mock.Anything, productID).Return([]byte("png-bytes"), nil)

	h := NewProductHandler(ProductHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/products/:id/qrcode", h.ShareQRCode)

	rec := doJSON(e, http.MethodGet, "/products/"+productID.String()+"/qrcode", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestCartHandler_AddItemDefaultsQuantity(t *testing.T) {
	f := createTestFixtures(t)
	productID := uuid.New()
	f.cart.EXPECT().AddItem(mock.Anything, f.user.ID, productID, 1).
		Return(&entity.CartItem{ID: uuid.New(), ProductID: productID, Quantity: 1}, nil)

	h := NewCartHandler(CartHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.POST("/cart/items", h.AddItem, f.signedIn)

	rec := doJSON(e, http.MethodPost, "/cart/items", `{"product_id":"`+productID.String()+`"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartHandler_SetQuantityRejectsZero(t *testing.T) {
	f := createTestFixtures(t)

	h := NewCartHandler(CartHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.PATCH("/cart/items/:id", h.SetQuantity, f.signedIn)

	rec := doJSON(e, http.MethodPatch, "/cart/items/"+uuid.NewString(), `{"quantity":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOrderHandler_Checkout(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "placed", wantStatus: http.StatusCreated},
		{name: "empty cart", err: domainerrors.ErrCartEmpty, wantStatus: domainerrors.ErrCartEmpty.HTTPCode()},
		{name: "rolled back", err: domainerrors.ErrTransactionFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFixtures(t)
			var result *entity.CheckoutResult
			if tt.err == nil {
				result = &entity.CheckoutResult{TotalAmount: decimal.NewFromInt(3250000)}
			}
			f.orders.EXPECT().Checkout(mock.Anything, f.user.ID).Return(result, tt.err)

			h := NewOrderHandler(OrderHandlerParams{Facade: f.facade})
			e := newTestEcho()
			e.POST("/orders/checkout", h.Checkout, f.signedIn)

			rec := doJSON(e, http.MethodPost, "/orders/checkout", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestOrderHandler_CreateOrdersMapsLines(t *testing.T) {
	f := createTestFixtures(t)
	productID := uuid.New()
	f.orders.EXPECT().CreateOrders(mock.Anything, f.user.ID, []usecase.OrderLine{{ProductID: productID, Quantity: 2}}).
		Return(&entity.CheckoutResult{}, nil)

	h := NewOrderHandler(OrderHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.POST("/orders", h.CreateOrders, f.signedIn)

	rec := doJSON(e, http.MethodPost, "/orders", `{"lines":[{"product_id":"`+productID.String()+`","quantity":2}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	empty := doJSON(e, http.MethodPost, "/orders", `{"lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, empty.Code)
}

func TestSwapHandler_UpdateSwapStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "accept", body: `{"status":"accepted"}`, wantStatus: http.StatusOK},
		{name: "pending is not a resolution", body: `{"status":"pending"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFixtures(t)
			swapID := uuid.New()
			if tt.wantStatus == http.StatusOK {
				f.swaps.EXPECT().UpdateSwapStatus(mock.Anything, f.user.ID, swapID, entity.SwapAccepted).
					Return(&entity.SwapRequest{ID: swapID, Status: entity.SwapAccepted}, nil)
			}

			h := NewSwapHandler(SwapHandlerParams{Facade: f.facade})
			e := newTestEcho()
			e.PATCH("/swap-requests/:id/status", h.UpdateSwapStatus, f.signedIn)

			rec := doJSON(e, http.MethodPatch, "/swap-requests/"+swapID.String()+"/status", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSwapHandler_CreateRequiresMessage(t *testing.T) {
	f := createTestFixtures(t)

	h := NewSwapHandler(SwapHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.POST("/swap-requests", h.CreateSwapRequest, f.signedIn)

	rec := doJSON(e, http.MethodPost, "/swap-requests", `{"product_id":"`+uuid.NewString()+`","message":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Contains(t, env.Error.Details, "message")
}

func TestRoleHandler_UpdateRoleInvalidatesDashboard(t *testing.T) {
	f := createTestFixtures(t)
	target := uuid.New()
	f.roles.EXPECT().UpdateRole(mock.Anything, f.user.ID, &usecase.UpdateRoleInput{UserID: target, Role: entity.RoleAdmin}).
		Return(&entity.UserRole{UserID: target, Role: entity.RoleAdmin}, nil)
	f.dashboard.EXPECT().Invalidate().Return()

	h := NewRoleHandler(RoleHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.PUT("/admin/roles/:user_id", h.UpdateRole, f.signedIn)

	rec := doJSON(e, http.MethodPut, "/admin/roles/"+target.String(), `{"role":"admin"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleHandler_MyRole(t *testing.T) {
	f := createTestFixtures(t)
	f.roles.EXPECT().IsAdmin(mock.Anything, f.user.ID).Return(true, nil)

	h := NewRoleHandler(RoleHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/roles/me", h.MyRole, f.signedIn)

	rec := doJSON(e, http.MethodGet, "/roles/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "admin", data["role"])
	assert.Equal(t, true, data["is_admin"])
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		force      bool
		wantStatus int
	}{
		{name: "cached", wantStatus: http.StatusOK},
		{name: "forced", query: "?force=true", force: true, wantStatus: http.StatusOK},
		{name: "bad force", query: "?force=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFixtures(t)
			if tt.wantStatus == http.StatusOK {
				f.dashboard.EXPECT().FetchAll(mock.Anything, f.user.ID, tt.force).Return(&entity.DashboardBundle{}, nil)
			}

			h := NewDashboardHandler(DashboardHandlerParams{Facade: f.facade})
			e := newTestEcho()
			e.GET("/admin/dashboard", h.Dashboard, f.signedIn)

			rec := doJSON(e, http.MethodGet, "/admin/dashboard"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDashboardHandler_FetchFailureIsNotPartial(t *testing.T) {
	f := createTestFixtures(t)
	f.dashboard.EXPECT().FetchAll(mock.Anything, f.user.ID, false).Return(nil, domainerrors.ErrDataUnavailable)

	h := NewDashboardHandler(DashboardHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/admin/dashboard", h.Dashboard, f.signedIn)

	rec := doJSON(e, http.MethodGet, "/admin/dashboard", "")

	assert.Equal(t, domainerrors.ErrDataUnavailable.HTTPCode(), rec.Code)
	env, data := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Nil(t, data)
}

func TestDashboardHandler_HealthDegraded(t *testing.T) {
	f := createTestFixtures(t)
	f.dashboard.EXPECT().Health(mock.Anything).Return([]*entity.HealthCheck{
		{Name: "postgres", Healthy: true},
		{Name: "storage", Healthy: false, Error: "bucket unreachable"},
	})

	h := NewDashboardHandler(DashboardHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/admin/health", h.Health, f.signedIn)

	rec := doJSON(e, http.MethodGet, "/admin/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSessionHandler_GetSession(t *testing.T) {
	f := createTestFixtures(t)
	f.roles.EXPECT().GetCurrentRole(mock.Anything, f.user.ID).Return(entity.RoleUser)
	f.profiles.EXPECT().GetProfile(mock.Anything, f.user).Return(&entity.Profile{ID: f.user.ID, Email: f.user.Email}, nil)

	h := NewSessionHandler(SessionHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/session", h.GetSession, f.signedIn)

	rec := doJSON(e, http.MethodGet, "/session", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "user", data["role"])
	assert.Equal(t, false, data["is_admin"])
}

func TestSessionHandler_AnonymousIsUnauthenticated(t *testing.T) {
	f := createTestFixtures(t)

	h := NewSessionHandler(SessionHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.GET("/session", h.GetSession)

	rec := doJSON(e, http.MethodGet, "/session", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeviceHandler_Register(t *testing.T) {
	f := createTestFixtures(t)
	f.devices.EXPECT().RegisterDevice(mock.Anything, f.user.ID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: f.user.ID}, nil)

	h := NewDeviceHandler(DeviceHandlerParams{Facade: f.facade})
	e := newTestEcho()
	e.POST("/devices", h.RegisterDevice, f.signedIn)

	rec := doJSON(e, http.MethodPost, "/devices", `{"fcm_token":"tok","device_id":"pixel","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	bad := doJSON(e, http.MethodPost, "/devices", `{"fcm_token":"tok","device_id":"pixel","platform":"symbian"}`)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestAuthHandler_SignIn(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	user := &entity.User{ID: uuid.New(), Email: "a@example.com"}
	auth.EXPECT().SignIn(mock.Anything, mock.MatchedBy(func(in *usecase.SignInInput) bool {
		return in.Email == "a@example.com" && in.Device.UserAgent == "test-agent"
	})).Return(&usecase.SessionOutput{AccessToken: "at", RefreshToken: "rt", User: user, Role: entity.RoleUser}, nil)

	h := NewAuthHandler(AuthHandlerParams{AuthUC: auth, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/auth/signin", h.SignIn)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"a@example.com","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "at", data["access_token"])
	assert.Equal(t, "rt", data["refresh_token"])
}

func TestAuthHandler_SignInBadCredentials(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	auth.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewAuthHandler(AuthHandlerParams{AuthUC: auth, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/auth/signin", h.SignIn)

	rec := doJSON(e, http.MethodPost, "/auth/signin", `{"email":"a@example.com","password":"wrong"}`)

	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, string(domainerrors.KindAuth), env.Error.Kind)
}

func TestImageHandler_ServeImage(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(store *mockService.MockObjectStorage)
		wantStatus int
	}{
		{
			name: "streams object",
			path: "/images/products/u1/a.png",
			setup: func(store *mockService.MockObjectStorage) {
				store.EXPECT().Open(mock.Anything, "products/u1/a.png").
					Return(io.NopCloser(strings.NewReader("img")), "image/png", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing object",
			path: "/images/products/u1/missing.png",
			setup: func(store *mockService.MockObjectStorage) {
				store.EXPECT().Open(mock.Anything, "products/u1/missing.png").Return(nil, "", storage.ErrObjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "path traversal",
			path:       "/images/products/../secrets",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mockService.NewMockObjectStorage(t)
			if tt.setup != nil {
				tt.setup(store)
			}

			h := NewImageHandler(ImageHandlerParams{Storage: store, Logger: slog.Default()})
			e := newTestEcho()
			e.GET("/images/*", h.ServeImage)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.URL.Path = tt.path
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "img", rec.Body.String())
				assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
			}
		})
	}
}
