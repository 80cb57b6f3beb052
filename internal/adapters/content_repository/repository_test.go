package content_repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"listing-service/internal/adapters/content_client"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clientMock struct {
	mock.Mock
}

func (m *clientMock) GetContent(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *clientMock) ListCollection(ctx context.Context, name string, filter *content_client.Expr) ([]json.RawMessage, error) {
	args := m.Called(ctx, name, filter)
	entries, _ := args.Get(0).([]json.RawMessage)
	return entries, args.Error(1)
}

func (m *clientMock) GetCollectionEntry(ctx context.Context, name, id string) (json.RawMessage, bool, error) {
	args := m.Called(ctx, name, id)
	entry, _ := args.Get(0).(json.RawMessage)
	return entry, args.Bool(1), args.Error(2)
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func marshalFilter(t *testing.T, e *content_client.Expr) string {
	t.Helper()
	if e == nil {
		return ""
	}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return string(b)
}

func TestBuildPropertyFilter(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.ContentFilters
		want    string
	}{
		{"empty", domain.ContentFilters{}, ""},
		{"min only", domain.ContentFilters{MinPrice: intPtr(100)}, `{"op":"gte","field":"price","value":100}`},
		{"max only", domain.ContentFilters{MaxPrice: intPtr(200)}, `{"op":"lte","field":"price","value":200}`},
		{
			"min and max",
			domain.ContentFilters{MinPrice: intPtr(100), MaxPrice: intPtr(200)},
			`{"op":"and","exprs":[{"op":"gte","field":"price","value":100},{"op":"lte","field":"price","value":200}]}`,
		},
		{"featured", domain.ContentFilters{Featured: boolPtr(true)}, `{"op":"eq","field":"featured","value":true}`},
		{"not featured", domain.ContentFilters{Featured: boolPtr(false)}, `{"op":"eq","field":"featured","value":false}`},
		{
			"everything",
			domain.ContentFilters{MinPrice: intPtr(1), MaxPrice: intPtr(2), Featured: boolPtr(true)},
			`{"op":"and","exprs":[{"op":"gte","field":"price","value":1},{"op":"lte","field":"price","value":2},{"op":"eq","field":"featured","value":true}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marshalFilter(t, BuildPropertyFilter(tt.filters))
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestRepository_GetHeroStats(t *testing.T) {
	client := new(clientMock)
	client.On("GetContent", mock.Anything, "hero.json").
		Return(json.RawMessage(`{"listedProperties":1200,"happyCustomers":850,"awards":12}`), nil)

	stats, err := NewRepository(client).GetHeroStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HeroStats{ListedProperties: 1200, HappyCustomers: 850, Awards: 12}, *stats)
}

func TestRepository_GetHeroStats_WholeNumbersWrittenAsFloats(t *testing.T) {
	client := new(clientMock)
	client.On("GetContent", mock.Anything, "hero.json").
		Return(json.RawMessage(`{"listedProperties":1200.0,"happyCustomers":850,"awards":12.0}`), nil)

	stats, err := NewRepository(client).GetHeroStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HeroStats{ListedProperties: 1200, HappyCustomers: 850, Awards: 12}, *stats)
}

func TestRepository_GetHeroStats_ContractViolation(t *testing.T) {
	client := new(clientMock)
	client.On("GetContent", mock.Anything, "hero.json").Return(json.RawMessage(`{"awards":"many"}`), nil)

	_, err := NewRepository(client).GetHeroStats(context.Background())
	assert.Error(t, err)
}

func TestRepository_GetHeroStats_RemoteErrorIsPropagated(t *testing.T) {
	remoteErr := &content_client.StatusError{StatusCode: 503}
	client := new(clientMock)
	client.On("GetContent", mock.Anything, "hero.json").Return(nil, remoteErr)

	_, err := NewRepository(client).GetHeroStats(context.Background())
	var statusErr *content_client.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 503, statusErr.StatusCode)
}

func TestRepository_ListProperties_MapsRecords(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", mock.Anything).Return([]json.RawMessage{
		json.RawMessage(`{"id":"a","name":"Coastal Retreat","price":1750000,"location":"La Jolla, CA","bedrooms":5,"bathrooms":4,"size":287,"image":{"url":"https://cdn/img.jpg"},"featured":true}`),
		json.RawMessage(`{"name":"No Id","price":1,"location":"Austin, TX","image":"https://cdn/b.jpg"}`),
	}, nil)

	got, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.Property{
		ID:        "a",
		Title:     "Coastal Retreat",
		PriceUSD:  1750000,
		City:      "La Jolla",
		State:     "CA",
		Bedrooms:  5,
		Bathrooms: 4,
		SizeSqm:   287,
		ImageURL:  "https://cdn/img.jpg",
		Featured:  true,
	}, got[0])

	_, err = uuid.Parse(got[1].ID)
	assert.NoError(t, err, "missing id must be replaced with a generated uuid")
	assert.Equal(t, "https://cdn/b.jpg", got[1].ImageURL)
	assert.Equal(t, "TX", got[1].State)
}

func TestRepository_ListProperties_WholeNumbersWrittenAsFloats(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", mock.Anything).Return([]json.RawMessage{
		json.RawMessage(`{"id":"a","name":"Home","price":890000.0,"location":"Austin, TX","bedrooms":3.0,"bathrooms":2.0,"image":"https://x"}`),
	}, nil)

	got, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 890000, got[0].PriceUSD)
	assert.Equal(t, 3, got[0].Bedrooms)
	assert.Equal(t, 2, got[0].Bathrooms)
}

func TestRepository_ListProperties_SparseRecordPassesThrough(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", mock.Anything).Return([]json.RawMessage{
		json.RawMessage(`{"id":"bare","name":""}`),
	}, nil)

	got, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Property{ID: "bare"}, got[0])
}

func TestRepository_ListProperties_PassesFilter(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", mock.MatchedBy(func(e *content_client.Expr) bool {
		return e != nil && e.Op() == content_client.OpEquals && e.Field() == "featured" && e.Value() == true
	})).Return([]json.RawMessage{}, nil)

	got, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{Featured: boolPtr(true)})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	client.AssertExpectations(t)
}

func TestRepository_ListProperties_NoFilterWhenEmpty(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", (*content_client.Expr)(nil)).Return([]json.RawMessage{}, nil)

	_, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestRepository_ListProperties_InvalidEntryFailsWholeList(t *testing.T) {
	client := new(clientMock)
	client.On("ListCollection", mock.Anything, "properties", mock.Anything).Return([]json.RawMessage{
		json.RawMessage(`{"name":"Ok","price":1,"location":"Austin, TX"}`),
		json.RawMessage(`{"name":"Broken","price":"free","location":"Austin, TX"}`),
	}, nil)

	got, err := NewRepository(client).ListProperties(context.Background(), domain.ContentFilters{})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRepository_GetPropertyByID(t *testing.T) {
	client := new(clientMock)
	client.On("GetCollectionEntry", mock.Anything, "properties", "known").
		Return(json.RawMessage(`{"id":"known","name":"Home","price":10,"location":"Boulder, CO"}`), true, nil)
	client.On("GetCollectionEntry", mock.Anything, "properties", "missing").Return(nil, false, nil)

	repo := NewRepository(client)

	got, err := repo.GetPropertyByID(context.Background(), "known")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Boulder", got.City)

	missing, err := repo.GetPropertyByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFlattenImage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absent", ``, ""},
		{"null", `null`, ""},
		{"string", `"https://cdn/a.jpg"`, "https://cdn/a.jpg"},
		{"object with url", `{"url":"https://cdn/b.jpg","src":"/b.jpg"}`, "https://cdn/b.jpg"},
		{"object with src", `{"src":"/c.jpg"}`, "/c.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := flattenImage(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLocation(t *testing.T) {
	city, state := splitLocation("Palo Alto, CA")
	assert.Equal(t, "Palo Alto", city)
	assert.Equal(t, "CA", state)

	city, state = splitLocation("Washington, D.C., DC")
	assert.Equal(t, "Washington, D.C.", city)
	assert.Equal(t, "DC", state)

	city, state = splitLocation("Somewhere")
	assert.Equal(t, "Somewhere", city)
	assert.Empty(t, state)
}
