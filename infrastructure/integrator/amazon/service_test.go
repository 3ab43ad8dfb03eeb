package amazon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/amazonclient/mocks"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func configuredConfig() *config.Config {
	return &config.Config{
		AmazonAds: config.AmazonAds{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-token",
			ProfileID:    "123",
			MinBid:       0.02,
		},
	}
}

func strPtr(v string) *string    { return &v }
func acosPtr(v float64) *float64 { return &v }

func TestAmazonIntegrator_FetchSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	rule := &domain.Rule{
		ID:            1,
		CampaignID:    strPtr("c-1"),
		TimeframeDays: 14,
	}

	client.EXPECT().
		QueryTargets(&amazonclient.TargetFilter{CampaignID: "c-1"}).
		Return([]amazondomain.Target{
			{
				TargetID:   "t-1",
				CampaignID: "c-1",
				Bid:        &amazondomain.TargetBid{Bid: 0.50},
				TargetDetails: &amazondomain.TargetDetails{
					KeywordTarget: &amazondomain.KeywordTarget{Keyword: "óculos de sol", MatchType: "EXACT"},
				},
			},
			{
				// Sem bid definido: não há valor base para ajustar
				TargetID:   "t-2",
				CampaignID: "c-1",
			},
			{
				TargetID:   "t-3",
				CampaignID: "c-1",
				Bid:        &amazondomain.TargetBid{Bid: 0.30},
			},
		}, nil)

	// A janela do relatório vem de timeframe_days da regra
	client.EXPECT().
		GetTargetMetrics("c-1", 14).
		Return(map[string]amazondomain.TargetReportMetrics{
			"t-1": {Impressions: 400, Clicks: 12, Cost: 5.0, Sales: 20.0, Acos: acosPtr(25)},
		}, nil)

	client.EXPECT().
		GetProfiles().
		Return([]amazondomain.Profile{
			{ProfileID: 999, CountryCode: "US"},
			{ProfileID: 123, CountryCode: "BR"},
		}, nil)

	integrator := New(configuredConfig(), client)

	snapshots, err := integrator.FetchSnapshots(rule)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, "t-1", snapshots[0].TargetID)
	assert.Equal(t, "BR", snapshots[0].Marketplace)
	assert.Equal(t, "óculos de sol", snapshots[0].KeywordText)
	assert.Equal(t, "EXACT", snapshots[0].MatchType)
	assert.Equal(t, 0.50, snapshots[0].Bid)
	require.NotNil(t, snapshots[0].Acos)
	assert.Equal(t, 25.0, *snapshots[0].Acos)
	require.NotNil(t, snapshots[0].Clicks)
	assert.Equal(t, 12, *snapshots[0].Clicks)
	require.NotNil(t, snapshots[0].Impressions)
	assert.Equal(t, 400, *snapshots[0].Impressions)

	// Target sem linha no relatório não teve tráfego na janela
	assert.Equal(t, "t-3", snapshots[1].TargetID)
	assert.Nil(t, snapshots[1].Acos)
	require.NotNil(t, snapshots[1].Clicks)
	assert.Equal(t, 0, *snapshots[1].Clicks)
	require.NotNil(t, snapshots[1].Impressions)
	assert.Equal(t, 0, *snapshots[1].Impressions)
}

func TestAmazonIntegrator_FetchSnapshots_NaoConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	snapshots, err := integrator.FetchSnapshots(&domain.Rule{ID: 1, TimeframeDays: 30})
	assert.Nil(t, snapshots)
	assert.ErrorIs(t, err, amazondomain.ErrNotConfigured)
}

func TestAmazonIntegrator_FetchSnapshots_FalhaNoRelatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		QueryTargets(gomock.Any()).
		Return([]amazondomain.Target{{TargetID: "t-1", Bid: &amazondomain.TargetBid{Bid: 0.50}}}, nil)
	client.EXPECT().
		GetTargetMetrics("", 30).
		Return(nil, errors.New("timeout aguardando o relatório"))

	integrator := New(configuredConfig(), client)

	snapshots, err := integrator.FetchSnapshots(&domain.Rule{ID: 1, TimeframeDays: 30})
	assert.Nil(t, snapshots)
	assert.EqualError(t, err, "timeout aguardando o relatório")
}

func TestAmazonIntegrator_ApplyBid_AplicaPisoDaAmazon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		UpdateTargetBids([]amazondomain.TargetBidUpdate{
			{TargetID: "t-1", Bid: amazondomain.TargetBid{Bid: 0.02}},
		}).
		Return(&amazondomain.UpdateTargetsResponse{}, nil)

	integrator := New(configuredConfig(), client)

	err := integrator.ApplyBid(domain.TargetSnapshot{TargetID: "t-1", Bid: 0.05}, 0.01)
	assert.NoError(t, err)
}

func TestAmazonIntegrator_ApplyBid_ErroPorTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		UpdateTargetBids(gomock.Any()).
		Return(&amazondomain.UpdateTargetsResponse{
			Error: []amazondomain.UpdateTargetResult{
				{TargetID: "t-1", Message: "bid abaixo do mínimo da campanha"},
			},
		}, nil)

	integrator := New(configuredConfig(), client)

	err := integrator.ApplyBid(domain.TargetSnapshot{TargetID: "t-1", Bid: 0.50}, 0.40)
	assert.ErrorContains(t, err, "bid abaixo do mínimo da campanha")
}
