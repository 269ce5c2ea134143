package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

type mockOrderRepo struct {
	createFunc       func(ctx context.Context, o *domain.Order) (*domain.Order, error)
	getByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	updateStatusFunc func(ctx context.Context, id string, upd domain.OrderStatusUpdate) (*domain.Order, error)
	listFunc         func(ctx context.Context, farmerID string, page, perPage int) ([]domain.Order, int64, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, o)
	}
	o.ID = "order-1"
	return o, nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id string, upd domain.OrderStatusUpdate) (*domain.Order, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockOrderRepo) List(ctx context.Context, farmerID string, page, perPage int) ([]domain.Order, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, farmerID, page, perPage)
	}
	return nil, 0, nil
}

type mockLandRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*domain.Land, error)
}

func (m *mockLandRepo) Create(ctx context.Context, l *domain.Land) (*domain.Land, error) {
	return l, nil
}

func (m *mockLandRepo) GetByID(ctx context.Context, id string) (*domain.Land, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLandRepo) Update(ctx context.Context, id string, upd domain.LandUpdate) (*domain.Land, error) {
	return nil, nil
}

func (m *mockLandRepo) List(ctx context.Context, page, perPage int) ([]domain.Land, int64, error) {
	return nil, 0, nil
}

func (m *mockLandRepo) ListAll(ctx context.Context) ([]domain.Land, error) {
	return nil, nil
}

func (m *mockLandRepo) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Land, error) {
	return nil, nil
}

type mockSeedRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*domain.Seed, error)
	updateFunc  func(ctx context.Context, id string, upd domain.SeedUpdate) (*domain.Seed, error)
}

func (m *mockSeedRepo) Create(ctx context.Context, s *domain.Seed) (*domain.Seed, error) {
	return s, nil
}

func (m *mockSeedRepo) GetByID(ctx context.Context, id string) (*domain.Seed, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSeedRepo) Update(ctx context.Context, id string, upd domain.SeedUpdate) (*domain.Seed, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockSeedRepo) List(ctx context.Context, page, perPage int) ([]domain.Seed, int64, error) {
	return nil, 0, nil
}

func (m *mockSeedRepo) ListAll(ctx context.Context) ([]domain.Seed, error) {
	return nil, nil
}

func (m *mockSeedRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type mockFertilizerRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*domain.Fertilizer, error)
	updateFunc  func(ctx context.Context, id string, upd domain.FertilizerUpdate) (*domain.Fertilizer, error)
}

func (m *mockFertilizerRepo) Create(ctx context.Context, f *domain.Fertilizer) (*domain.Fertilizer, error) {
	return f, nil
}

func (m *mockFertilizerRepo) GetByID(ctx context.Context, id string) (*domain.Fertilizer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFertilizerRepo) Update(ctx context.Context, id string, upd domain.FertilizerUpdate) (*domain.Fertilizer, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockFertilizerRepo) List(ctx context.Context, page, perPage int) ([]domain.Fertilizer, int64, error) {
	return nil, 0, nil
}

func (m *mockFertilizerRepo) ListAll(ctx context.Context) ([]domain.Fertilizer, error) {
	return nil, nil
}

func (m *mockFertilizerRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type orderFixture struct {
	svc         *OrderService
	orders      *mockOrderRepo
	lands       *mockLandRepo
	seeds       *mockSeedRepo
	fertilizers *mockFertilizerRepo
}

func newOrderFixture() *orderFixture {
	orders := &mockOrderRepo{}
	lands := &mockLandRepo{}
	seeds := &mockSeedRepo{}
	fertilizers := &mockFertilizerRepo{}
	return &orderFixture{
		svc:         NewOrderService(orders, lands, seeds, fertilizers, nopLogger{}),
		orders:      orders,
		lands:       lands,
		seeds:       seeds,
		fertilizers: fertilizers,
	}
}

func agroStoreCaller() domain.Identity {
	return domain.Identity{UserID: "store-1", Category: domain.CategoryAgroStore}
}

func farmerCaller() domain.Identity {
	return domain.Identity{UserID: "farmer-1", Category: domain.CategoryFarmer}
}

func TestCreateOrderSnapshotsPricesAndDefaultsQuantities(t *testing.T) {
	f := newOrderFixture()

	f.lands.getByIDFunc = func(ctx context.Context, id string) (*domain.Land, error) {
		return &domain.Land{ID: id, FarmerID: "farmer-1", SizeInAcres: 2}, nil
	}
	f.seeds.getByIDFunc = func(ctx context.Context, id string) (*domain.Seed, error) {
		return &domain.Seed{ID: id, Name: "Maize", MaxQuantityPerAcre: 0.5, PricePerKg: 1200}, nil
	}
	f.fertilizers.getByIDFunc = func(ctx context.Context, id string) (*domain.Fertilizer, error) {
		return &domain.Fertilizer{ID: id, Name: "NPK", MaxQuantityPerAcre: 2, PricePerKg: 800}, nil
	}

	view, err := f.svc.CreateOrder(context.Background(), &domain.Order{
		FarmerID:     "farmer-1",
		LandID:       "land-1",
		SeedID:       "seed-1",
		FertilizerID: "fert-1",
	})
	require.NoError(t, err)

	// 0.5 kg/acre on 2 acres
	assert.Equal(t, 1.0, view.SeedQuantityOrdered)
	assert.Equal(t, 1200.0, view.SeedPricePerUnit)
	assert.Equal(t, 1200.0, view.SeedTotalPrice)

	// 2 kg/acre on 2 acres
	assert.Equal(t, 4.0, view.FertilizerQuantityOrdered)
	assert.Equal(t, 800.0, view.FertilizerPricePerUnit)
	assert.Equal(t, 3200.0, view.FertilizerTotalPrice)

	assert.Equal(t, domain.OrderStatusPending, view.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, view.PaymentStatus)
}

func TestCreateOrderKeepsExplicitQuantities(t *testing.T) {
	f := newOrderFixture()

	f.lands.getByIDFunc = func(ctx context.Context, id string) (*domain.Land, error) {
		return &domain.Land{ID: id, SizeInAcres: 2}, nil
	}
	f.seeds.getByIDFunc = func(ctx context.Context, id string) (*domain.Seed, error) {
		return &domain.Seed{ID: id, MaxQuantityPerAcre: 0.5, PricePerKg: 1000}, nil
	}

	view, err := f.svc.CreateOrder(context.Background(), &domain.Order{
		FarmerID:            "farmer-1",
		LandID:              "land-1",
		SeedID:              "seed-1",
		SeedQuantityOrdered: 0.75,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.75, view.SeedQuantityOrdered)
	assert.Equal(t, 750.0, view.SeedTotalPrice)
}

func TestCreateOrderUnknownLand(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.CreateOrder(context.Background(), &domain.Order{LandID: "nope", SeedID: "seed-1"})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Land not Found", derr.Message)
}

func TestCreateOrderRequiresSeedOrFertilizer(t *testing.T) {
	f := newOrderFixture()

	f.lands.getByIDFunc = func(ctx context.Context, id string) (*domain.Land, error) {
		return &domain.Land{ID: id, SizeInAcres: 1}, nil
	}

	_, err := f.svc.CreateOrder(context.Background(), &domain.Order{LandID: "land-1"})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ErrCodeValidation, derr.Code)
}

func TestUpdateOrderByAgroStore(t *testing.T) {
	f := newOrderFixture()

	f.orders.getByIDFunc = func(ctx context.Context, id string) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusUnpaid}, nil
	}
	f.orders.updateStatusFunc = func(ctx context.Context, id string, upd domain.OrderStatusUpdate) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: upd.Status, PaymentStatus: upd.PaymentStatus}, nil
	}

	view, err := f.svc.UpdateOrder(context.Background(), agroStoreCaller(), "order-1", domain.OrderStatusUpdate{
		Status:        domain.OrderStatusApproved,
		PaymentStatus: domain.PaymentStatusUnpaid,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, view.Status)
}

func TestUpdateOrderRejectsFarmerCaller(t *testing.T) {
	f := newOrderFixture()

	f.orders.getByIDFunc = func(ctx context.Context, id string) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusUnpaid}, nil
	}

	_, err := f.svc.UpdateOrder(context.Background(), farmerCaller(), "order-1", domain.OrderStatusUpdate{
		Status: domain.OrderStatusApproved,
	})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Order cannot be updated", derr.Message)
}

func TestUpdateOrderRejectsApprovedOrder(t *testing.T) {
	f := newOrderFixture()

	f.orders.getByIDFunc = func(ctx context.Context, id string) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusApproved, PaymentStatus: domain.PaymentStatusUnpaid}, nil
	}

	_, err := f.svc.UpdateOrder(context.Background(), agroStoreCaller(), "order-1", domain.OrderStatusUpdate{
		Status: domain.OrderStatusRejected,
	})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Order cannot be updated", derr.Message)
}

func TestUpdateOrderRejectsPaidOrder(t *testing.T) {
	f := newOrderFixture()

	f.orders.getByIDFunc = func(ctx context.Context, id string) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusPaid}, nil
	}

	_, err := f.svc.UpdateOrder(context.Background(), agroStoreCaller(), "order-1", domain.OrderStatusUpdate{
		Status: domain.OrderStatusApproved,
	})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Order cannot be updated", derr.Message)
}

func TestUpdateOrderUnknownOrder(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.UpdateOrder(context.Background(), agroStoreCaller(), "missing", domain.OrderStatusUpdate{})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Order not Found", derr.Message)
}

func TestListOrdersPaginates(t *testing.T) {
	f := newOrderFixture()

	f.orders.listFunc = func(ctx context.Context, farmerID string, page, perPage int) ([]domain.Order, int64, error) {
		assert.Equal(t, "farmer-1", farmerID)
		assert.Equal(t, 1, page)
		assert.Equal(t, 5, perPage)
		return []domain.Order{{ID: "o1"}, {ID: "o2"}}, 12, nil
	}

	result, err := f.svc.ListOrders(context.Background(), "farmer-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(12), result.TotalItems)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 5, result.PerPage)
}
