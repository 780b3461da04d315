package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/router/handler"
	"pluma/internal/delivery/api/validator"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/infra/ratelimit"
	mockUsecase "pluma/internal/mocks/usecase"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const (
	readerToken = "reader-token"
	adminToken  = "admin-token"
)

var (
	readerID = uuid.MustParse("8f6a0c1e-4b7d-4d0e-9a51-3c2b1e0f9a01")
	adminID  = uuid.MustParse("1d2c3b4a-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type routerFixture struct {
	e             *echo.Echo
	authUC        *mockUsecase.MockAuthUsecase
	catalogUC     *mockUsecase.MockCatalogUsecase
	cartUC        *mockUsecase.MockCartUsecase
	favoriteUC    *mockUsecase.MockFavoriteUsecase
	checkoutUC    *mockUsecase.MockCheckoutUsecase
	entitlementUC *mockUsecase.MockEntitlementUsecase
	profileUC     *mockUsecase.MockProfileUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &routerFixture{
		authUC:        mockUsecase.NewMockAuthUsecase(t),
		catalogUC:     mockUsecase.NewMockCatalogUsecase(t),
		cartUC:        mockUsecase.NewMockCartUsecase(t),
		favoriteUC:    mockUsecase.NewMockFavoriteUsecase(t),
		checkoutUC:    mockUsecase.NewMockCheckoutUsecase(t),
		entitlementUC: mockUsecase.NewMockEntitlementUsecase(t),
		profileUC:     mockUsecase.NewMockProfileUsecase(t),
	}

	f.authUC.EXPECT().CurrentSession(mock.Anything, "").Return(entity.Session{}).Maybe()
	f.authUC.EXPECT().CurrentSession(mock.Anything, readerToken).
		Return(entity.Session{UserID: readerID, Email: "leitor@pluma.com.br", Roles: entity.Roles{entity.RoleReader}}).Maybe()
	f.authUC.EXPECT().CurrentSession(mock.Anything, adminToken).
		Return(entity.Session{UserID: adminID, Email: "editora@pluma.com.br", Roles: entity.Roles{entity.RoleReader, entity.RoleAdmin}}).Maybe()

	e := echo.New()
	e.Validator = validator.New(nil)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
		CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: f.catalogUC, Logger: logger}),
		CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{CartUC: f.cartUC, Logger: logger}),
		FavoriteHandler:     handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: f.favoriteUC, Logger: logger}),
		CheckoutHandler:     handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: f.checkoutUC, Logger: logger}),
		EntitlementHandler:  handler.NewEntitlementHandler(handler.EntitlementHandlerParams{EntitlementUC: f.entitlementUC, Logger: logger}),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: f.authUC}),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(ratelimit.New(rate.Limit(0.001), 2), logger),
	}).RegisterRoutes(e)

	f.e = e

	return f
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func sampleProduct(id int64, title, author, price string) *entity.Product {
	return &entity.Product{
		ID:     id,
		Title:  title,
		Author: author,
		Genre:  "Terror",
		Price:  decimal.RequireFromString(price),
	}
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_AnonymousCatalogListing(t *testing.T) {
	f := newRouterFixture(t)
	f.catalogUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{Genre: "Terror", SearchTerm: "lovecraft"}).
		Return([]*entity.Product{sampleProduct(3, "O Chamado de Cthulhu", "H. P. Lovecraft", "19.90")})

	rec := f.do(http.MethodGet, "/api/v1/products?genero=Terror&q=lovecraft", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "H. P. Lovecraft", products[0]["autor"])
	assert.Equal(t, "19.9", products[0]["preco"])
	assert.NotContains(t, products[0], "favorited")
}

func TestRouter_SignedInCatalogListingCarriesFlags(t *testing.T) {
	f := newRouterFixture(t)
	f.catalogUC.EXPECT().
		ListProductsFor(mock.Anything, readerID, entity.ProductFilter{}).
		Return([]*usecase.CatalogItem{{Product: sampleProduct(7, "Drácula", "Bram Stoker", "29.90"), Favorited: true}})

	rec := f.do(http.MethodGet, "/api/v1/products", readerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, true, products[0]["favorited"])
	assert.Equal(t, false, products[0]["owned"])
}

func TestRouter_InvalidProductID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/products/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestRouter_ProductNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.catalogUC.EXPECT().GetProduct(mock.Anything, int64(404)).Return(nil, domainerrors.ErrProductNotFound)

	rec := f.do(http.MethodGet, "/api/v1/products/404", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_AnonymousFavoriteToggleRequiresLogin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/favorites/3/toggle", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "AUTH_REQUIRED", env.Error.Code)
	assert.JSONEq(t, `{"login_path":"/form-login"}`, string(env.Error.Details))
	f.favoriteUC.AssertNotCalled(t, "ToggleFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_FavoriteToggle(t *testing.T) {
	f := newRouterFixture(t)
	f.favoriteUC.EXPECT().ToggleFavorite(mock.Anything, readerID, int64(3)).Return(true, nil)

	rec := f.do(http.MethodPost, "/api/v1/favorites/3/toggle", readerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"produto_id":3,"favorited":true}`, string(decode(t, rec).Data))
}

func TestRouter_FavoritesGroupedByGenre(t *testing.T) {
	f := newRouterFixture(t)
	f.favoriteUC.EXPECT().ListFavoritesGroupedByGenre(mock.Anything, readerID).Return(map[string][]usecase.FavoriteItem{
		"Terror": {{FavoriteID: 11, Product: *sampleProduct(3, "O Chamado de Cthulhu", "H. P. Lovecraft", "19.90"), Owned: true}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/favorites", readerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var groups map[string][]map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &groups))
	require.Len(t, groups["Terror"], 1)
	assert.Equal(t, float64(11), groups["Terror"][0]["id"])
	assert.Equal(t, true, groups["Terror"][0]["owned"])
}

func TestRouter_CreateProductRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/products", readerToken, `{"titulo":"Novo","autor":"Autora","preco":"10.00"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
}

func TestRouter_CreateProductAsAdmin(t *testing.T) {
	f := newRouterFixture(t)
	f.catalogUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Title == "Novo" && in.Price.Equal(decimal.RequireFromString("10.00"))
		})).
		Return(sampleProduct(21, "Novo", "Autora", "10.00"), nil)

	rec := f.do(http.MethodPost, "/api/v1/products", adminToken, `{"titulo":"Novo","autor":"Autora","preco":"10.00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"id":21`)
}

func TestRouter_CreateProductValidation(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/products", adminToken, `{"autor":"Autora"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "titulo")
}

func TestRouter_ReadNotEntitled(t *testing.T) {
	f := newRouterFixture(t)
	f.catalogUC.EXPECT().Read(mock.Anything, readerID, int64(7)).Return(nil, domainerrors.ErrNotEntitled)

	rec := f.do(http.MethodGet, "/api/v1/products/7/read", readerToken, "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "NOT_ENTITLED", env.Error.Code)
	assert.JSONEq(t, `{"action":"add_to_cart"}`, string(env.Error.Details))
}

func TestRouter_CartFlow(t *testing.T) {
	f := newRouterFixture(t)
	f.cartUC.EXPECT().AddToCart(mock.Anything, readerID, int64(7)).
		Return(&entity.CartItem{ID: 1, UserID: readerID, ProductID: 7, Quantity: 1}, nil)
	f.cartUC.EXPECT().ListCart(mock.Anything, readerID).Return([]entity.CartLine{
		{ItemID: 1, ProductID: 7, Title: "Drácula", Price: decimal.RequireFromString("29.90"), Quantity: 1},
		{ItemID: 2, ProductID: 9, Title: "Frankenstein", Price: decimal.RequireFromString("15.00"), Quantity: 1},
	}, nil)
	f.cartUC.EXPECT().RemoveFromCart(mock.Anything, readerID, int64(2)).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/cart", readerToken, `{"produto_id":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"produto_id":7,"quantidade":1}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/v1/cart", readerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"subtotal":"44.9"`)

	rec = f.do(http.MethodDelete, "/api/v1/cart/2", readerToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_AddToCartValidation(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/cart", readerToken, `{"produto_id":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestRouter_CheckoutEmptySummary(t *testing.T) {
	f := newRouterFixture(t)
	f.checkoutUC.EXPECT().Summary(mock.Anything, readerID).Return(&usecase.CheckoutSummary{
		State:    usecase.CheckoutSummaryEmpty,
		Subtotal: decimal.Zero,
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/checkout", readerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.Equal(t, "empty", summary["state"])
	assert.Equal(t, false, summary["can_checkout"])
	assert.Empty(t, summary["itens"])
}

func TestRouter_CheckoutPix(t *testing.T) {
	f := newRouterFixture(t)
	order := &entity.Order{
		ID:            5,
		UserID:        readerID,
		Total:         decimal.RequireFromString("44.90"),
		Status:        entity.OrderStatusPaid,
		ProductIDs:    []int64{7, 9},
		PaymentMethod: entity.PaymentMethodPix,
	}
	f.checkoutUC.EXPECT().
		FinalizePurchase(mock.Anything, readerID, entity.PaymentInput{Method: entity.PaymentMethodPix}).
		Return(&usecase.CheckoutResult{
			Order:        order,
			Entitlements: entity.Entitlements{7: {}, 9: {}},
			State:        entity.CheckoutFulfilled,
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/checkout", readerToken, `{"metodo_pagamento":"pix"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, "fulfilled", result["state"])
	pedido := result["pedido"].(map[string]any)
	assert.Equal(t, "44.9", pedido["total"])
	assert.Equal(t, "paid", pedido["status"])
	assert.Equal(t, []any{float64(7), float64(9)}, pedido["produtos_ids"])
	assert.ElementsMatch(t, []any{float64(7), float64(9)}, result["entitlements"])
}

func TestRouter_CheckoutInProgress(t *testing.T) {
	f := newRouterFixture(t)
	f.checkoutUC.EXPECT().FinalizePurchase(mock.Anything, readerID, mock.Anything).
		Return(nil, domainerrors.ErrCheckoutInProgress)

	rec := f.do(http.MethodPost, "/api/v1/checkout", readerToken, `{"metodo_pagamento":"pix"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CHECKOUT_IN_PROGRESS", decode(t, rec).Error.Code)
}

func TestRouter_CheckoutFailedShowsReason(t *testing.T) {
	f := newRouterFixture(t)
	cause := errors.New("failed to create order: insert into pedidos: connection reset by peer")
	f.checkoutUC.EXPECT().FinalizePurchase(mock.Anything, readerID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.NewCheckoutFailedError(cause, cause.Error())))

	rec := f.do(http.MethodPost, "/api/v1/checkout", readerToken, `{"metodo_pagamento":"pix"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "CHECKOUT_FAILED", env.Error.Code)
	assert.Equal(t, "Falha no processo: failed to create order: insert into pedidos: connection reset by peer", env.Error.Message)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, "failed", details["state"])
	assert.Equal(t, cause.Error(), details["reason"])
}

func TestRouter_CheckoutCardDetailsReachUsecase(t *testing.T) {
	f := newRouterFixture(t)
	f.checkoutUC.EXPECT().
		FinalizePurchase(mock.Anything, readerID, mock.MatchedBy(func(p entity.PaymentInput) bool {
			return p.Method == entity.PaymentMethodCard && p.Card != nil && p.Card.CVV == "12"
		})).
		Return(nil, domainerrors.ErrInvalidPaymentDetails.WithDetails("cvv: deve ter pelo menos 3 caracteres"))

	rec := f.do(http.MethodPost, "/api/v1/checkout", readerToken,
		`{"metodo_pagamento":"card","card":{"holder_name":"Ana","number":"4111111111111111","expiry":"12/99","cvv":"12"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_PAYMENT_DETAILS", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "cvv")
}

func TestRouter_PixQRCodeAsPNG(t *testing.T) {
	f := newRouterFixture(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.checkoutUC.EXPECT().PixQRCode(mock.Anything, readerID).Return(&usecase.PixCode{
		Payload: "000201",
		PNG:     png,
		Amount:  decimal.RequireFromString("44.90"),
	}, nil).Twice()

	rec := f.do(http.MethodGet, "/api/v1/checkout/pix?format=png", readerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = f.do(http.MethodGet, "/api/v1/checkout/pix", readerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"payload":"000201"`)
}

func TestRouter_Entitlements(t *testing.T) {
	f := newRouterFixture(t)
	f.entitlementUC.EXPECT().ResolveEntitlements(mock.Anything, readerID).Return(entity.Entitlements{7: {}, 42: {}}, nil)
	f.entitlementUC.EXPECT().OwnedProducts(mock.Anything, readerID).
		Return([]*entity.Product{sampleProduct(7, "Drácula", "Bram Stoker", "29.90")}, nil)

	rec := f.do(http.MethodGet, "/api/v1/entitlements", readerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.ElementsMatch(t, []any{float64(7), float64(42)}, body["produtos_ids"])
	assert.Len(t, body["produtos"], 1)
}

func TestRouter_SignInSetsCookieAndIsRateLimited(t *testing.T) {
	f := newRouterFixture(t)
	f.authUC.EXPECT().SignIn(mock.Anything, usecase.SignInInput{Email: "leitor@pluma.com.br", Password: "segredo"}).
		Return(&usecase.SignInOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Session:      entity.Session{UserID: readerID, Email: "leitor@pluma.com.br", Roles: entity.Roles{entity.RoleReader}},
		}, nil).Twice()

	body := `{"email":"leitor@pluma.com.br","password":"segredo"}`
	for range 2 {
		rec := f.do(http.MethodPost, "/auth/sign-in", "", body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), middleware.AccessTokenCookie+"=access")
		assert.Contains(t, string(decode(t, rec).Data), `"authenticated":true`)
	}

	rec := f.do(http.MethodPost, "/auth/sign-in", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decode(t, rec).Error.Code)
}

func TestRouter_SignInWrongPassword(t *testing.T) {
	f := newRouterFixture(t)
	f.authUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/auth/sign-in", "", `{"email":"leitor@pluma.com.br","password":"errada"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestRouter_SessionIsAnonymousWithoutToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/auth/session", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false,"roles":[]}`, string(decode(t, rec).Data))
}

func TestRouter_SessionFromCookie(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: readerToken})
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), readerID.String())
}

func TestRouter_PasswordResetRequestIsAccepted(t *testing.T) {
	f := newRouterFixture(t)
	f.authUC.EXPECT().RequestPasswordReset(mock.Anything, "ninguem@pluma.com.br").Return(nil)

	rec := f.do(http.MethodPost, "/auth/password/reset-request", "", `{"email":"ninguem@pluma.com.br"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRouter_UpdatePasswordRequiresLogin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPut, "/auth/password", "", `{"password":"nova-senha","confirm_password":"nova-senha"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_UpdatePasswordMismatch(t *testing.T) {
	f := newRouterFixture(t)
	f.authUC.EXPECT().UpdatePassword(mock.Anything, readerID, usecase.UpdatePasswordInput{Password: "nova-senha", ConfirmPassword: "outra"}).
		Return(domainerrors.ErrPasswordMismatch)

	rec := f.do(http.MethodPut, "/auth/password", readerToken, `{"password":"nova-senha","confirm_password":"outra"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_MISMATCH", decode(t, rec).Error.Code)
}

func TestRouter_SignOut(t *testing.T) {
	f := newRouterFixture(t)
	f.authUC.EXPECT().SignOut(mock.Anything, readerID, "refresh").Return(nil)

	rec := f.do(http.MethodPost, "/auth/sign-out", readerToken, `{"refresh_token":"refresh"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
}

func TestRouter_ProfileAvatarUpload(t *testing.T) {
	f := newRouterFixture(t)
	avatarURL := "https://cdn.pluma.example/avatars/a.png"
	f.profileUC.EXPECT().
		UploadAvatar(mock.Anything, readerID, mock.MatchedBy(func(u usecase.AvatarUpload) bool {
			return u.Filename == "eu.png" && u.ContentType == "image/png" && u.Size == 4
		})).
		Return(&entity.Profile{ID: readerID, Email: "leitor@pluma.com.br", AvatarURL: avatarURL}, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="eu.png"`)
	header.Set("Content-Type", "image/png")
	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/avatar", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+readerToken)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), avatarURL)
}

func TestRouter_ProfileAvatarMissingFile(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/profile/avatar", readerToken, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "AVATAR_INVALID", decode(t, rec).Error.Code)
}

func TestRouter_UpdateUsernameTaken(t *testing.T) {
	f := newRouterFixture(t)
	f.profileUC.EXPECT().UpdateUsername(mock.Anything, readerID, "ana").Return(nil, domainerrors.ErrUsernameTaken)

	rec := f.do(http.MethodPut, "/api/v1/profile", readerToken, `{"username":"ana"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", decode(t, rec).Error.Code)
}
