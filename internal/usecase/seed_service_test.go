package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

func TestCreateSeedWithinDosageLimit(t *testing.T) {
	seeds := &mockSeedRepo{}
	svc := NewSeedService(seeds, nopLogger{})

	view, err := svc.CreateSeed(context.Background(), agroStoreCaller(), &domain.Seed{
		Name:               "Maize",
		MaxQuantityPerAcre: 1.0,
		PricePerKg:         1200,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maize", view.Name)
}

func TestCreateSeedRejectsExcessiveDosage(t *testing.T) {
	svc := NewSeedService(&mockSeedRepo{}, nopLogger{})

	for _, quantity := range []float64{1.5, 0, -1} {
		_, err := svc.CreateSeed(context.Background(), agroStoreCaller(), &domain.Seed{
			Name:               "Maize",
			MaxQuantityPerAcre: quantity,
		})
		require.Error(t, err, "quantity %v", quantity)
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "Seed quantity exceeds the maximum limit for 1 acre", derr.Message)
	}
}

func TestCreateSeedRejectsFarmerCaller(t *testing.T) {
	svc := NewSeedService(&mockSeedRepo{}, nopLogger{})

	_, err := svc.CreateSeed(context.Background(), farmerCaller(), &domain.Seed{
		Name:               "Maize",
		MaxQuantityPerAcre: 0.5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestUpdateSeedRemovedBetweenReadAndWrite(t *testing.T) {
	// The document can disappear after the existence check but before the
	// write; the repository reports that as a nil result, not an error.
	seeds := &mockSeedRepo{
		getByIDFunc: func(ctx context.Context, id string) (*domain.Seed, error) {
			return &domain.Seed{ID: id, Name: "Maize", MaxQuantityPerAcre: 0.5}, nil
		},
		updateFunc: func(ctx context.Context, id string, upd domain.SeedUpdate) (*domain.Seed, error) {
			return nil, nil
		},
	}
	svc := NewSeedService(seeds, nopLogger{})

	_, err := svc.UpdateSeed(context.Background(), agroStoreCaller(), "seed-1", domain.SeedUpdate{Name: "Beans"})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Seed not Found", derr.Message)
}

func TestUpdateFertilizerRemovedBetweenReadAndWrite(t *testing.T) {
	fertilizers := &mockFertilizerRepo{
		getByIDFunc: func(ctx context.Context, id string) (*domain.Fertilizer, error) {
			return &domain.Fertilizer{ID: id, Name: "NPK", MaxQuantityPerAcre: 2}, nil
		},
		updateFunc: func(ctx context.Context, id string, upd domain.FertilizerUpdate) (*domain.Fertilizer, error) {
			return nil, nil
		},
	}
	svc := NewFertilizerService(fertilizers, nopLogger{})

	_, err := svc.UpdateFertilizer(context.Background(), agroStoreCaller(), "fert-1", domain.FertilizerUpdate{Name: "Urea"})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Fertilizer not Found", derr.Message)
}

func TestDeleteSeedUnknownID(t *testing.T) {
	svc := NewSeedService(&mockSeedRepo{}, nopLogger{})

	err := svc.DeleteSeed(context.Background(), agroStoreCaller(), "missing")
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Seed not Found", derr.Message)
}

func TestCreateFertilizerDosageLimits(t *testing.T) {
	fertilizers := &mockFertilizerRepo{}
	svc := NewFertilizerService(fertilizers, nopLogger{})

	// 3 kg/acre is the ceiling
	_, err := svc.CreateFertilizer(context.Background(), agroStoreCaller(), &domain.Fertilizer{
		Name:               "NPK",
		MaxQuantityPerAcre: 3.0,
	})
	require.NoError(t, err)

	_, err = svc.CreateFertilizer(context.Background(), agroStoreCaller(), &domain.Fertilizer{
		Name:               "NPK",
		MaxQuantityPerAcre: 3.5,
	})
	require.Error(t, err)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Fertilizer quantity exceeds the maximum limit for 1 acre", derr.Message)
}
