package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) ListAll(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	properties, _ := args.Get(0).([]domain.Property)
	return properties, args.Error(1)
}

func (m *catalogMock) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	property, _ := args.Get(0).(*domain.Property)
	return property, args.Error(1)
}

func (m *catalogMock) ListFiltered(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	args := m.Called(ctx, filters)
	properties, _ := args.Get(0).([]domain.Property)
	return properties, args.Error(1)
}

type contentMock struct {
	mock.Mock
}

func (m *contentMock) GetHeroStats(ctx context.Context) (*domain.HeroStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*domain.HeroStats)
	return stats, args.Error(1)
}

func (m *contentMock) ListProperties(ctx context.Context, filters domain.ContentFilters) ([]domain.Property, error) {
	args := m.Called(ctx, filters)
	properties, _ := args.Get(0).([]domain.Property)
	return properties, args.Error(1)
}

func (m *contentMock) GetPropertyByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	property, _ := args.Get(0).(*domain.Property)
	return property, args.Error(1)
}

var errRemote = errors.New("content service unavailable")

func TestListPropertiesUseCase(t *testing.T) {
	catalog := new(catalogMock)
	want := []domain.Property{{ID: "p-001"}, {ID: "p-002"}}
	catalog.On("ListAll", mock.Anything).Return(want, nil)

	got, err := NewListPropertiesUseCase(catalog).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	catalog.AssertExpectations(t)
}

func TestGetPropertyByIDUseCase_NotFound(t *testing.T) {
	catalog := new(catalogMock)
	catalog.On("GetByID", mock.Anything, "p-999").Return(nil, nil)

	got, err := NewGetPropertyByIDUseCase(catalog).Execute(context.Background(), "p-999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetPropertyByIDUseCase_Found(t *testing.T) {
	catalog := new(catalogMock)
	catalog.On("GetByID", mock.Anything, "p-003").Return(&domain.Property{ID: "p-003"}, nil)

	got, err := NewGetPropertyByIDUseCase(catalog).Execute(context.Background(), "p-003")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p-003", got.ID)
}

func TestFindPropertiesUseCase_PassesFiltersThrough(t *testing.T) {
	catalog := new(catalogMock)
	filters := domain.PropertyFilters{State: "CA"}
	catalog.On("ListFiltered", mock.Anything, filters).Return([]domain.Property{{ID: "p-001"}}, nil)

	got, err := NewFindPropertiesUseCase(catalog).Execute(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	catalog.AssertExpectations(t)
}

func TestFindPropertiesUseCase_PropagatesError(t *testing.T) {
	catalog := new(catalogMock)
	catalog.On("ListFiltered", mock.Anything, mock.Anything).Return(nil, context.Canceled)

	_, err := NewFindPropertiesUseCase(catalog).Execute(context.Background(), domain.PropertyFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetHeroStatsUseCase(t *testing.T) {
	content := new(contentMock)
	content.On("GetHeroStats", mock.Anything).Return(&domain.HeroStats{ListedProperties: 120, HappyCustomers: 80, Awards: 4}, nil)

	got, err := NewGetHeroStatsUseCase(content).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, got.ListedProperties)
}

func TestGetHeroStatsUseCase_PropagatesError(t *testing.T) {
	content := new(contentMock)
	content.On("GetHeroStats", mock.Anything).Return(nil, errRemote)

	_, err := NewGetHeroStatsUseCase(content).Execute(context.Background())
	assert.ErrorIs(t, err, errRemote)
}

func TestListContentPropertiesUseCase(t *testing.T) {
	content := new(contentMock)
	featured := true
	filters := domain.ContentFilters{Featured: &featured}
	content.On("ListProperties", mock.Anything, filters).Return([]domain.Property{{ID: "a", Featured: true}}, nil)

	got, err := NewListContentPropertiesUseCase(content).Execute(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Featured)
	content.AssertExpectations(t)
}

func TestListContentPropertiesUseCase_PropagatesError(t *testing.T) {
	content := new(contentMock)
	content.On("ListProperties", mock.Anything, mock.Anything).Return(nil, errRemote)

	got, err := NewListContentPropertiesUseCase(content).Execute(context.Background(), domain.ContentFilters{})
	assert.ErrorIs(t, err, errRemote)
	assert.Nil(t, got)
}

func TestGetContentPropertyUseCase_NotFound(t *testing.T) {
	content := new(contentMock)
	content.On("GetPropertyByID", mock.Anything, "missing").Return(nil, nil)

	got, err := NewGetContentPropertyUseCase(content).Execute(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
