package usecase

import (
	"context"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

type OrderView struct {
	ID                        string               `json:"id"`
	FarmerID                  string               `json:"farmerID"`
	LandID                    string               `json:"landID"`
	FertilizerID              string               `json:"fertilizerID,omitempty"`
	SeedID                    string               `json:"seedID,omitempty"`
	FertilizerQuantityOrdered float64              `json:"fertilizerQuantityOrdered"`
	SeedQuantityOrdered       float64              `json:"seedQuantityOrdered"`
	Status                    domain.OrderStatus   `json:"status"`
	PaymentStatus             domain.PaymentStatus `json:"paymentStatus"`
	SeedPricePerUnit          float64              `json:"seedPricePerUnit"`
	SeedTotalPrice            float64              `json:"seedTotalPrice"`
	FertilizerPricePerUnit    float64              `json:"fertilizerPricePerUnit"`
	FertilizerTotalPrice      float64              `json:"fertilizerTotalPrice"`
	Timestamp                 time.Time            `json:"timestamp"`
}

func toOrderView(o *domain.Order) OrderView {
	return OrderView{
		ID:                        o.ID,
		FarmerID:                  o.FarmerID,
		LandID:                    o.LandID,
		FertilizerID:              o.FertilizerID,
		SeedID:                    o.SeedID,
		FertilizerQuantityOrdered: o.FertilizerQuantityOrdered,
		SeedQuantityOrdered:       o.SeedQuantityOrdered,
		Status:                    o.Status,
		PaymentStatus:             o.PaymentStatus,
		SeedPricePerUnit:          o.SeedPricePerUnit,
		SeedTotalPrice:            o.SeedTotalPrice,
		FertilizerPricePerUnit:    o.FertilizerPricePerUnit,
		FertilizerTotalPrice:      o.FertilizerTotalPrice,
		Timestamp:                 o.Timestamp,
	}
}

type OrderService struct {
	Orders      domain.OrderRepository
	Lands       domain.LandRepository
	Seeds       domain.SeedRepository
	Fertilizers domain.FertilizerRepository
	Logger      domain.LoggingRepository
}

func NewOrderService(
	orders domain.OrderRepository,
	lands domain.LandRepository,
	seeds domain.SeedRepository,
	fertilizers domain.FertilizerRepository,
	logger domain.LoggingRepository,
) *OrderService {
	return &OrderService{
		Orders:      orders,
		Lands:       lands,
		Seeds:       seeds,
		Fertilizers: fertilizers,
		Logger:      logger,
	}
}

// CreateOrder places a farmer's order. Unit prices are resolved from the
// referenced products at ordering time, so later price changes do not
// rewrite history. Totals derive from the land size and the product's
// per-acre dosage.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*OrderView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "order-create", "http.request.id", reqID)
	log.Info("order creation started", "event.type", []string{"start"})

	land, err := s.Lands.GetByID(ctx, order.LandID)
	if err != nil {
		return nil, err
	}
	if land == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Land not Found", nil)
	}
	if order.SeedID == "" && order.FertilizerID == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Required fields are missing or invalid", nil)
	}

	if order.SeedID != "" {
		seed, err := s.Seeds.GetByID(ctx, order.SeedID)
		if err != nil {
			return nil, err
		}
		if seed == nil {
			return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Seed not Found", nil)
		}
		if order.SeedQuantityOrdered <= 0 {
			order.SeedQuantityOrdered = seed.MaxQuantityPerAcre * land.SizeInAcres
		}
		order.SeedPricePerUnit = seed.PricePerKg
		order.SeedTotalPrice = seed.PricePerKg * order.SeedQuantityOrdered
	}

	if order.FertilizerID != "" {
		fertilizer, err := s.Fertilizers.GetByID(ctx, order.FertilizerID)
		if err != nil {
			return nil, err
		}
		if fertilizer == nil {
			return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Fertilizer not Found", nil)
		}
		if order.FertilizerQuantityOrdered <= 0 {
			order.FertilizerQuantityOrdered = fertilizer.MaxQuantityPerAcre * land.SizeInAcres
		}
		order.FertilizerPricePerUnit = fertilizer.PricePerKg
		order.FertilizerTotalPrice = fertilizer.PricePerKg * order.FertilizerQuantityOrdered
	}

	order.Status = domain.OrderStatusPending
	order.PaymentStatus = domain.PaymentStatusUnpaid

	created, err := s.Orders.Create(ctx, order)
	if err != nil {
		log.Error(
			"failed to save order",
			"event.action", "create_order",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"order successfully created",
		"order.id", created.ID,
		"event.type", []string{"end", "creation"},
		"event.outcome", "success")

	view := toOrderView(created)
	return &view, nil
}

// UpdateOrder changes an order's status and payment state. Only agro
// stores may do this, and only while the order is still unapproved and
// unpaid.
func (s *OrderService) UpdateOrder(ctx context.Context, caller domain.Identity, id string, upd domain.OrderStatusUpdate) (*OrderView, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "order-update", "http.request.id", reqID, "order.id", id)

	existing, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Order not Found", nil)
	}

	updatable := caller.Category == domain.CategoryAgroStore &&
		existing.Status != domain.OrderStatusApproved &&
		existing.PaymentStatus == domain.PaymentStatusUnpaid
	if !updatable {
		log.Warn(
			"order update rejected",
			"event.action", "update_order",
			"event.outcome", "failed")
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Order cannot be updated", nil)
	}

	order, err := s.Orders.UpdateStatus(ctx, id, upd)
	if err != nil {
		log.Error(
			"failed to update order",
			"event.action", "update_order",
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if order == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Order not Found", nil)
	}

	log.Info("order successfully updated", "event.outcome", "success")
	view := toOrderView(order)
	return &view, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*OrderView, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, "Order not Found", nil)
	}
	view := toOrderView(order)
	return &view, nil
}

func (s *OrderService) ListOrders(ctx context.Context, farmerID string, page, perPage int) (*Paginated[OrderView], error) {
	page, perPage = normalizePage(page, perPage)
	orders, totalItems, err := s.Orders.List(ctx, farmerID, page, perPage)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderView(&orders[i]))
	}
	return paginate(views, totalItems, page, perPage), nil
}
