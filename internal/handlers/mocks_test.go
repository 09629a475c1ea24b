package handlers

import (
	"context"

	"acquiring/internal/models"
	"acquiring/internal/repositories"
	"acquiring/internal/services/feestructure"
	"acquiring/internal/services/quote"
	"acquiring/internal/validation"

	"github.com/stretchr/testify/mock"
)

type MockFeeStructureService struct {
	mock.Mock
}

func (m *MockFeeStructureService) Validate(in feestructure.Input) validation.Result {
	return m.Called(in).Get(0).(validation.Result)
}

func (m *MockFeeStructureService) Create(ctx context.Context, in feestructure.Input) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, in))
}

func (m *MockFeeStructureService) Get(ctx context.Context, id string) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, id))
}

func (m *MockFeeStructureService) List(ctx context.Context, filter repositories.FeeStructureFilter, limit, offset int) (feestructure.Page, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).(feestructure.Page), args.Error(1)
}

func (m *MockFeeStructureService) Update(ctx context.Context, id string, in feestructure.Input) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, id, in))
}

func (m *MockFeeStructureService) Activate(ctx context.Context, id string) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, id))
}

func (m *MockFeeStructureService) Deactivate(ctx context.Context, id string) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, id))
}

func structureResult(args mock.Arguments) (*models.FeeStructure, error) {
	if s, ok := args.Get(0).(*models.FeeStructure); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) Assign(ctx context.Context, structureID, merchantID, assignedBy string) (*models.MerchantFeeAssignment, error) {
	args := m.Called(ctx, structureID, merchantID, assignedBy)
	if a, ok := args.Get(0).(*models.MerchantFeeAssignment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssignmentService) EffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error) {
	return structureResult(m.Called(ctx, merchantID))
}

func (m *MockAssignmentService) History(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error) {
	args := m.Called(ctx, merchantID)
	history, _ := args.Get(0).([]models.MerchantFeeAssignment)
	return history, args.Error(1)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Upsert(ctx context.Context, in validation.PricingPlanInput) (*models.PricingPlan, error) {
	args := m.Called(ctx, in)
	if p, ok := args.Get(0).(*models.PricingPlan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPricingService) Get(ctx context.Context, merchantID string) (*models.PricingPlan, error) {
	args := m.Called(ctx, merchantID)
	if p, ok := args.Get(0).(*models.PricingPlan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, req quote.Request) (*models.FeeQuote, error) {
	args := m.Called(ctx, req)
	if q, ok := args.Get(0).(*models.FeeQuote); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuoteService) List(ctx context.Context, merchantID string, limit, offset int) ([]models.FeeQuote, int64, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	quotes, _ := args.Get(0).([]models.FeeQuote)
	return quotes, args.Get(1).(int64), args.Error(2)
}
