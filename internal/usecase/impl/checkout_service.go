package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pluma/config"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/domain/service"
	"pluma/internal/usecase"
	"pluma/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pixTxIDLength = 25

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	cart         usecase.CartUsecase
	entitlements usecase.EntitlementUsecase
	publisher    service.EventPublisher
	qrcode       service.QRCodeService
	validator    *validation.Validator
	checkoutCfg  config.CheckoutConfig
	logger       *slog.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	Cart         usecase.CartUsecase
	Entitlements usecase.EntitlementUsecase
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Validator    *validation.Validator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	var checkoutCfg config.CheckoutConfig
	if params.Config != nil && params.Config.Checkout != nil {
		checkoutCfg = *params.Config.Checkout
	}

	return &checkoutService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		cart:         params.Cart,
		entitlements: params.Entitlements,
		publisher:    params.Publisher,
		qrcode:       params.QRCode,
		validator:    params.Validator,
		checkoutCfg:  checkoutCfg,
		logger:       params.Logger,
		inFlight:     make(map[uuid.UUID]struct{}),
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Summary describes the cart as the checkout page shows it.
func (srv *checkoutService) Summary(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutSummary, error) {
	lines, err := srv.cart.ListCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &usecase.CheckoutSummary{
		State:    usecase.CheckoutSummaryEmpty,
		Lines:    lines,
		Subtotal: entity.Subtotal(lines),
	}

	if len(lines) > 0 {
		summary.State = usecase.CheckoutSummaryReady
		summary.CanCheckout = true
		summary.PaymentMethods = []entity.PaymentMethod{entity.PaymentMethodCard, entity.PaymentMethodPix}
	}

	return summary, nil
}

// FinalizePurchase records the order and empties the cart in one transaction.
func (srv *checkoutService) FinalizePurchase(ctx context.Context, userID uuid.UUID, payment entity.PaymentInput) (*usecase.CheckoutResult, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	if err := srv.validatePayment(payment); err != nil {
		return nil, err
	}

	release, ok := srv.acquire(userID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCheckoutInProgress)
	}
	defer release()

	attempt := entity.NewCheckoutAttempt(userID)
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. Load the cart inside the transaction, without books already bought
		lines, err := cartRepo.ListLines(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		orders, err := repoFactory.OrderRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}
		payable, owned := entity.SplitOwned(lines, entity.EntitlementsFromOrders(orders))
		if len(owned) > 0 {
			srv.log(ctx).Warn("Skipping owned books at checkout", slog.Any("user_id", userID), slog.Any("product_ids", owned))
		}

		if err := attempt.Open(len(payable)); err != nil {
			if errors.Is(err, entity.ErrEmptyCheckout) {
				return errors.WithStack(domainerrors.ErrCartEmpty)
			}

			return errors.WithStack(err)
		}
		if err := attempt.SelectMethod(payment.Method); err != nil {
			return errors.WithStack(domainerrors.ErrUnsupportedPaymentMethod)
		}
		if err := attempt.Submit(); err != nil {
			return errors.WithStack(err)
		}

		// 2. Append the order to the ledger
		order = &entity.Order{
			UserID:        userID,
			Total:         entity.Subtotal(payable),
			Status:        entity.OrderStatusPaid,
			ProductIDs:    entity.CartProductIDs(payable),
			PaymentMethod: payment.Method,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 3. Clear the cart, owned lines included
		if _, err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		if attempt.State != entity.CheckoutSubmitting {
			srv.log(ctx).Warn("Checkout refused",
				slog.Any("user_id", userID),
				slog.String("state", string(attempt.State)),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(err, "failed to finalize purchase")
		}

		if failErr := attempt.Fail(err.Error()); failErr != nil {
			return nil, errors.WithStack(failErr)
		}
		srv.log(ctx).Error("Checkout failed",
			slog.Any("user_id", userID),
			slog.String("method", string(payment.Method)),
			slog.String("reason", attempt.FailureReason),
		)

		return nil, errors.WithStack(domainerrors.NewCheckoutFailedError(err, attempt.FailureReason))
	}

	if err := attempt.Fulfill(); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Order paid",
		slog.Any("user_id", userID),
		slog.Int64("order_id", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.String("method", string(order.PaymentMethod)),
	)

	result := &usecase.CheckoutResult{
		Order:        order,
		Entitlements: srv.entitlementsAfter(ctx, order),
		Products:     srv.purchasedProducts(ctx, order),
		State:        attempt.State,
	}

	srv.publishOrderPaid(ctx, order)

	return result, nil
}

// PixQRCode renders the placeholder PIX charge for the current cart.
func (srv *checkoutService) PixQRCode(ctx context.Context, userID uuid.UUID) (*usecase.PixCode, error) {
	lines, err := srv.cart.ListCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	charge := service.PixCharge{
		Key:          srv.checkoutCfg.PixKey,
		MerchantName: srv.checkoutCfg.MerchantName,
		MerchantCity: srv.checkoutCfg.MerchantCity,
		Amount:       entity.Subtotal(lines),
		TxID:         pixTxID(userID),
	}

	png, err := srv.qrcode.GeneratePixQR(charge)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pix qr code")
	}

	return &usecase.PixCode{
		Payload: srv.qrcode.PixPayload(charge),
		PNG:     png,
		Amount:  charge.Amount,
	}, nil
}

func (srv *checkoutService) validatePayment(payment entity.PaymentInput) error {
	if !payment.Method.IsValid() {
		return errors.WithStack(domainerrors.ErrUnsupportedPaymentMethod)
	}
	if payment.Method != entity.PaymentMethodCard {
		return nil
	}

	if payment.Card == nil {
		return domainerrors.ErrInvalidPaymentDetails.WithDetails("card: é obrigatório")
	}

	fields, err := srv.validator.Check(payment.Card)
	if err != nil {
		return errors.Wrap(err, "failed to validate card")
	}
	if len(fields) > 0 {
		return domainerrors.ErrInvalidPaymentDetails.WithDetails(validation.FormatFields(fields))
	}

	return nil
}

// acquire marks userID as checking out. The second caller is refused until release.
func (srv *checkoutService) acquire(userID uuid.UUID) (func(), bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, busy := srv.inFlight[userID]; busy {
		return nil, false
	}
	srv.inFlight[userID] = struct{}{}

	return func() {
		srv.mu.Lock()
		delete(srv.inFlight, userID)
		srv.mu.Unlock()
	}, true
}

// entitlementsAfter recomputes ownership once the order is committed.
func (srv *checkoutService) entitlementsAfter(ctx context.Context, order *entity.Order) entity.Entitlements {
	owned, err := srv.entitlements.ResolveEntitlements(ctx, order.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to refresh entitlements after checkout", slog.Int64("order_id", order.ID), slog.Any("error", err))

		return entity.EntitlementsFromOrders([]*entity.Order{order})
	}

	return owned
}

func (srv *checkoutService) purchasedProducts(ctx context.Context, order *entity.Order) []*entity.Product {
	products, err := srv.productRepo.FindByIDs(ctx, order.ProductIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to load purchased products", slog.Int64("order_id", order.ID), slog.Any("error", err))

		return []*entity.Product{}
	}

	return products
}

// publishOrderPaid is best effort: the order is already committed.
func (srv *checkoutService) publishOrderPaid(ctx context.Context, order *entity.Order) {
	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventTypeOrderPaid,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     order.UserID,
		OccurredAt: time.Now().UTC(),
		Payload: service.OrderPaidPayload{
			OrderID:       order.ID,
			Total:         order.Total,
			ProductIDs:    order.ProductIDs,
			PaymentMethod: string(order.PaymentMethod),
		},
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order_paid", slog.Int64("order_id", order.ID), slog.Any("error", err))
	}
}

func pixTxID(userID uuid.UUID) string {
	id := "PLUMA" + strings.ToUpper(strings.ReplaceAll(userID.String(), "-", ""))

	return id[:pixTxIDLength]
}
