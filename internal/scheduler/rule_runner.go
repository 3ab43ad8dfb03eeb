package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/ads-rules-api/infrastructure/repository"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/domain"
	"github.com/vfg2006/ads-rules-api/internal/usecases/ruling"
	"github.com/vfg2006/ads-rules-api/pkg/utils"
)

// RuleRunnerConfig representa a configuração do agendador de regras
type RuleRunnerConfig struct {
	PollIntervalSeconds int
	Enabled             bool
}

// RuleRunnerService agenda e executa as regras de ajuste de bid vencidas.
// A cada passagem busca as regras habilitadas cuja frequência venceu,
// avalia cada target no escopo da regra e grava uma linha de auditoria por
// snapshot avaliado, qualquer que seja o resultado.
type RuleRunnerService struct {
	scheduler         *gocron.Scheduler
	config            RuleRunnerConfig
	appConfig         *config.Config
	ruleRepo          repository.RuleRepository
	executionRepo     repository.RuleExecutionRepository
	integrator        ruling.BidIntegrator
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewRuleRunnerService cria uma nova instância do agendador de regras
func NewRuleRunnerService(
	ruleRepo repository.RuleRepository,
	executionRepo repository.RuleExecutionRepository,
	integrator ruling.BidIntegrator,
	appConfig *config.Config,
) *RuleRunnerService {
	runnerConfig := RuleRunnerConfig{
		PollIntervalSeconds: appConfig.RuleRunner.PollIntervalSeconds,
		Enabled:             appConfig.RuleRunner.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"poll_interval_seconds": runnerConfig.PollIntervalSeconds,
		"runner_enabled":        runnerConfig.Enabled,
	}).Info("Configuração do agendador de regras carregada")

	return &RuleRunnerService{
		scheduler:     scheduler,
		config:        runnerConfig,
		appConfig:     appConfig,
		ruleRepo:      ruleRepo,
		executionRepo: executionRepo,
		integrator:    integrator,
		runRunning:    false,
	}
}

// Start inicia o agendador
func (s *RuleRunnerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Execução automática de regras desabilitada por configuração")
		return nil
	}

	logrus.WithField("poll_interval_seconds", s.config.PollIntervalSeconds).
		Info("Iniciando agendador de execução de regras")

	_, err := s.scheduler.Every(s.config.PollIntervalSeconds).Seconds().Do(func() {
		s.runDueRules()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução de regras: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de execução de regras")
		s.scheduler.Stop()
	}()

	return nil
}

// runDueRules executa uma passagem completa sobre as regras vencidas
func (s *RuleRunnerService) runDueRules() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Execução de regras já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	defer func() {
		// Um pânico em uma passagem não pode derrubar o processo do scheduler
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Pânico durante a execução de regras")
		}

		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	startTime := time.Now().UTC()
	s.runMutex.Lock()
	s.lastRunStartedAt = startTime
	s.runMutex.Unlock()

	runID, err := utils.GenerateRunID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador da passagem")
		return
	}

	dueRules, err := s.ruleRepo.GetDueRules(startTime)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar regras vencidas")
		return
	}

	if len(dueRules) == 0 {
		logrus.Debug("Nenhuma regra vencida nesta passagem")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"due_rules": len(dueRules),
	}).Info("Iniciando execução das regras vencidas")

	for _, rule := range dueRules {
		s.processSingleRule(rule, runID, startTime)
	}

	finishedAt := time.Now().UTC()
	s.runMutex.Lock()
	s.lastRunFinishedAt = finishedAt
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": finishedAt.Sub(startTime).String(),
		"rules":    len(dueRules),
	}).Info("Execução das regras vencidas concluída")
}

// processSingleRule avalia uma regra contra todos os targets no seu escopo.
// A regra só é marcada como executada (last_run_at) depois que todos os
// snapshots foram avaliados e auditados: falha de integração ou de escrita
// de auditoria deixa a regra vencida para a próxima passagem.
func (s *RuleRunnerService) processSingleRule(rule *domain.Rule, runID string, runAt time.Time) {
	logger := logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"rule_id":   rule.ID,
		"rule_name": rule.Name,
	})

	if !s.integrator.Configured() {
		logger.Warn("Integração de anúncios não configurada. Pulando regra sem marcar como executada")
		return
	}

	snapshots, err := s.integrator.FetchSnapshots(rule)
	if err != nil {
		if errors.Is(err, amazondomain.ErrNotConfigured) {
			logger.Warn("Integração de anúncios não configurada. Pulando regra sem marcar como executada")
		} else {
			logger.WithError(err).Error("Erro ao buscar targets para a regra. Tentará novamente na próxima passagem")
		}
		return
	}

	logger.WithField("targets", len(snapshots)).Info("Targets encontrados para avaliação")

	minBid, maxBid := s.appConfig.BidBounds()

	for _, snapshot := range snapshots {
		oldBid := snapshot.Bid
		newBid, action := ruling.ApplyRuleToTarget(snapshot, rule, minBid, maxBid)

		// Auditoria registra todo snapshot avaliado, inclusive skips
		loggedBid := oldBid
		if action == domain.ActionIncrease || action == domain.ActionDecrease {
			loggedBid = newBid
		}

		execution := &domain.RuleExecution{
			RuleID:      rule.ID,
			RunID:       runID,
			RunAt:       runAt,
			TargetID:    snapshot.TargetID,
			CampaignID:  snapshot.CampaignID,
			KeywordText: snapshot.KeywordText,
			MatchType:   snapshot.MatchType,
			OldBid:      oldBid,
			NewBid:      loggedBid,
			Acos:        snapshot.Acos,
			Clicks:      snapshot.Clicks,
			Impressions: snapshot.Impressions,
			Action:      action,
		}

		if action == domain.ActionIncrease || action == domain.ActionDecrease {
			if applyErr := s.integrator.ApplyBid(snapshot, newBid); applyErr != nil {
				logger.WithFields(logrus.Fields{
					"target_id": snapshot.TargetID,
					"old_bid":   oldBid,
					"new_bid":   newBid,
					"error":     applyErr.Error(),
				}).Error("Erro ao aplicar novo bid no target")

				// O ajuste não foi efetivado: o new_bid calculado fica na
				// auditoria e a causa da falha vai na mensagem
				execution.Message = applyErr.Error()
			} else {
				logger.WithFields(logrus.Fields{
					"target_id": snapshot.TargetID,
					"old_bid":   oldBid,
					"new_bid":   newBid,
					"action":    action,
				}).Info("Bid do target atualizado")
			}
		}

		if err := s.executionRepo.Log(execution); err != nil {
			logger.WithFields(logrus.Fields{
				"target_id": snapshot.TargetID,
				"error":     err.Error(),
			}).Error("Erro ao gravar auditoria da execução. Abortando regra sem marcar como executada")
			return
		}
	}

	if err := s.ruleRepo.UpdateRuleLastRun(rule.ID, runAt); err != nil {
		logger.WithError(err).Error("Erro ao atualizar last_run_at da regra")
		return
	}

	logger.WithField("targets", len(snapshots)).Info("Regra executada com sucesso")
}

// TriggerManualRun inicia manualmente uma passagem de execução de regras
func (s *RuleRunnerService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Execução de regras já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual de regras")
	go s.runDueRules()
}

// GetStatus retorna o status atual do agendador
func (s *RuleRunnerService) GetStatus() map[string]any {
	// Os timestamps são escritos pela goroutine do gocron
	s.runMutex.Lock()
	startedAt := s.lastRunStartedAt
	finishedAt := s.lastRunFinishedAt
	s.runMutex.Unlock()

	return map[string]any{
		"runner_enabled":        s.config.Enabled,
		"poll_interval_seconds": s.config.PollIntervalSeconds,
		"integrator_configured": s.integrator.Configured(),
		"last_run_started_at":   startedAt,
		"last_run_finished_at":  finishedAt,
	}
}
