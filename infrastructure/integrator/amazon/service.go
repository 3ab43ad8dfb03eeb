package amazon

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

// AmazonIntegrator expõe a Amazon Ads API como fonte de snapshots de
// targets e aplicador de bids. Sem as quatro credenciais LWA configuradas
// o integrador responde Configured() == false e toda operação retorna
// amazondomain.ErrNotConfigured.
type AmazonIntegrator struct {
	cfg    *config.Config
	Client amazonclient.Client

	marketplaceOnce sync.Once
	marketplace     string
}

func New(cfg *config.Config, client amazonclient.Client) *AmazonIntegrator {
	return &AmazonIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AmazonIntegrator) Configured() bool {
	ads := s.cfg.AmazonAds
	return ads.ClientID != "" && ads.ClientSecret != "" && ads.RefreshToken != "" && ads.ProfileID != ""
}

// FetchSnapshots consulta os targets no escopo da regra, gera o relatório de
// métricas cobrindo a janela de timeframe_days e converte cada target em um
// snapshot de performance. Targets sem bid definido são ignorados: não há
// valor base para ajustar.
func (s *AmazonIntegrator) FetchSnapshots(rule *domain.Rule) ([]domain.TargetSnapshot, error) {
	if !s.Configured() {
		return nil, amazondomain.ErrNotConfigured
	}

	filter := &amazonclient.TargetFilter{}
	campaignID := ""
	if rule.CampaignID != nil {
		campaignID = *rule.CampaignID
		filter.CampaignID = campaignID
	}

	targets, err := s.Client.QueryTargets(filter)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("amazon: falha ao consultar targets")
		return nil, err
	}

	metricsByTarget, err := s.Client.GetTargetMetrics(campaignID, rule.TimeframeDays)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id":        rule.ID,
			"timeframe_days": rule.TimeframeDays,
			"error":          err.Error(),
		}).Error("amazon: falha ao gerar relatório de métricas dos targets")
		return nil, err
	}

	marketplace := s.profileMarketplace()

	snapshots := make([]domain.TargetSnapshot, 0, len(targets))
	for _, target := range targets {
		if target.Bid == nil {
			continue
		}

		snapshot := domain.TargetSnapshot{
			TargetID:    target.TargetID,
			CampaignID:  target.CampaignID,
			Marketplace: marketplace,
			Bid:         target.Bid.Bid,
		}

		if target.TargetDetails != nil && target.TargetDetails.KeywordTarget != nil {
			snapshot.KeywordText = target.TargetDetails.KeywordTarget.Keyword
			snapshot.MatchType = target.TargetDetails.KeywordTarget.MatchType
		}

		// Target sem linha no relatório não teve tráfego na janela
		clicks, impressions := 0, 0
		if metrics, ok := metricsByTarget[target.TargetID]; ok {
			snapshot.Acos = metrics.Acos
			clicks = metrics.Clicks
			impressions = metrics.Impressions
		}
		snapshot.Clicks = &clicks
		snapshot.Impressions = &impressions

		snapshots = append(snapshots, snapshot)
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"snapshots": len(snapshots),
	}).Debug("amazon: snapshots carregados para a regra")

	return snapshots, nil
}

// ApplyBid envia o novo bid do target para a Amazon Ads API. O piso da API
// é reforçado aqui mesmo que os limites de clamp estejam desligados.
func (s *AmazonIntegrator) ApplyBid(snapshot domain.TargetSnapshot, newBid float64) error {
	if !s.Configured() {
		return amazondomain.ErrNotConfigured
	}

	if s.cfg.AmazonAds.MinBid > 0 && newBid < s.cfg.AmazonAds.MinBid {
		newBid = s.cfg.AmazonAds.MinBid
	}

	response, err := s.Client.UpdateTargetBids([]amazondomain.TargetBidUpdate{
		{
			TargetID: snapshot.TargetID,
			Bid:      amazondomain.TargetBid{Bid: newBid},
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"target_id": snapshot.TargetID,
			"new_bid":   newBid,
			"error":     err.Error(),
		}).Error("amazon: falha ao aplicar bid")
		return err
	}

	for _, failure := range response.Error {
		if failure.TargetID == snapshot.TargetID || failure.TargetID == "" {
			return fmt.Errorf("erro ao atualizar bid do target %s: %s", snapshot.TargetID, failure.Message)
		}
	}

	return nil
}

// profileMarketplace descobre o país do perfil configurado, uma vez por
// processo. Falha vira marketplace vazio: regras com filtro de marketplace
// simplesmente não casam.
func (s *AmazonIntegrator) profileMarketplace() string {
	s.marketplaceOnce.Do(func() {
		profiles, err := s.Client.GetProfiles()
		if err != nil {
			logrus.WithError(err).Warn("amazon: não foi possível listar perfis para descobrir o marketplace")
			return
		}

		for _, profile := range profiles {
			if strconv.FormatInt(profile.ProfileID, 10) == s.cfg.AmazonAds.ProfileID {
				s.marketplace = profile.CountryCode
				return
			}
		}

		logrus.WithField("profile_id", s.cfg.AmazonAds.ProfileID).
			Warn("amazon: perfil configurado não encontrado na listagem")
	})

	return s.marketplace
}
