package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-rules-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/domain"
	rulingmocks "github.com/vfg2006/ads-rules-api/internal/usecases/ruling/mocks"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func newRunnerForTest(
	ruleRepo *mocks.MockRuleRepository,
	executionRepo *mocks.MockRuleExecutionRepository,
	integrator *rulingmocks.MockBidIntegrator,
) *RuleRunnerService {
	return &RuleRunnerService{
		config:        RuleRunnerConfig{PollIntervalSeconds: 3600, Enabled: true},
		appConfig:     &config.Config{},
		ruleRepo:      ruleRepo,
		executionRepo: executionRepo,
		integrator:    integrator,
	}
}

func acosRuleForTest() *domain.Rule {
	return &domain.Rule{
		ID:              1,
		Name:            "ACOS saudável aumenta bid",
		RuleType:        domain.RuleTypeAcosBand,
		AcosMin:         floatPtr(20),
		AcosMax:         floatPtr(30),
		AdjustmentType:  domain.AdjustmentTypeAbs,
		AdjustmentValue: 0.05,
		TimeframeDays:   30,
		FrequencyDays:   3,
		Enabled:         true,
	}
}

func TestRuleRunnerService_processSingleRule(t *testing.T) {
	runAt := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)

	matchingSnapshot := domain.TargetSnapshot{
		TargetID:   "t-1",
		CampaignID: "c-1",
		Bid:        0.50,
		Acos:       floatPtr(25),
		Clicks:     intPtr(12),
	}
	skippedSnapshot := domain.TargetSnapshot{
		TargetID:   "t-2",
		CampaignID: "c-1",
		Bid:        0.40,
		Acos:       floatPtr(50),
		Clicks:     intPtr(3),
	}

	tests := []struct {
		name  string
		setup func(
			ruleRepo *mocks.MockRuleRepository,
			executionRepo *mocks.MockRuleExecutionRepository,
			integrator *rulingmocks.MockBidIntegrator,
		)
	}{
		{
			name: "Avalia todos os snapshots, aplica bid e marca a regra como executada",
			setup: func(ruleRepo *mocks.MockRuleRepository, executionRepo *mocks.MockRuleExecutionRepository, integrator *rulingmocks.MockBidIntegrator) {
				integrator.EXPECT().Configured().Return(true)
				integrator.EXPECT().
					FetchSnapshots(gomock.Any()).
					Return([]domain.TargetSnapshot{matchingSnapshot, skippedSnapshot}, nil)

				// Uma linha de auditoria por snapshot, inclusive o skip
				executionRepo.EXPECT().
					Log(gomock.Any()).
					DoAndReturn(func(execution *domain.RuleExecution) error {
						assert.Equal(t, 1, execution.RuleID)
						assert.Equal(t, runAt, execution.RunAt)
						assert.Equal(t, "t-1", execution.TargetID)
						assert.Equal(t, 0.50, execution.OldBid)
						assert.Equal(t, 0.55, execution.NewBid)
						assert.Equal(t, domain.ActionIncrease, execution.Action)
						return nil
					})
				executionRepo.EXPECT().
					Log(gomock.Any()).
					DoAndReturn(func(execution *domain.RuleExecution) error {
						assert.Equal(t, "t-2", execution.TargetID)
						assert.Equal(t, domain.ActionSkipCondition, execution.Action)
						// Skip não altera bid: colunas old e new registram o mesmo valor
						assert.Equal(t, execution.OldBid, execution.NewBid)
						return nil
					})

				// Só o snapshot com ação recebe o novo bid
				integrator.EXPECT().ApplyBid(matchingSnapshot, 0.55).Return(nil)

				ruleRepo.EXPECT().UpdateRuleLastRun(1, runAt).Return(nil)
			},
		},
		{
			name: "Integração não configurada pula a regra sem marcar como executada",
			setup: func(ruleRepo *mocks.MockRuleRepository, executionRepo *mocks.MockRuleExecutionRepository, integrator *rulingmocks.MockBidIntegrator) {
				integrator.EXPECT().Configured().Return(false)
			},
		},
		{
			name: "Falha transitória ao buscar snapshots deixa a regra vencida para a próxima passagem",
			setup: func(ruleRepo *mocks.MockRuleRepository, executionRepo *mocks.MockRuleExecutionRepository, integrator *rulingmocks.MockBidIntegrator) {
				integrator.EXPECT().Configured().Return(true)
				integrator.EXPECT().
					FetchSnapshots(gomock.Any()).
					Return(nil, errors.New("timeout na Amazon Ads API"))
			},
		},
		{
			name: "Falha ao aplicar bid é auditada e não impede a conclusão da regra",
			setup: func(ruleRepo *mocks.MockRuleRepository, executionRepo *mocks.MockRuleExecutionRepository, integrator *rulingmocks.MockBidIntegrator) {
				integrator.EXPECT().Configured().Return(true)
				integrator.EXPECT().
					FetchSnapshots(gomock.Any()).
					Return([]domain.TargetSnapshot{matchingSnapshot}, nil)

				integrator.EXPECT().
					ApplyBid(matchingSnapshot, 0.55).
					Return(errors.New("throttled"))

				executionRepo.EXPECT().
					Log(gomock.Any()).
					DoAndReturn(func(execution *domain.RuleExecution) error {
						// A ação e o bid calculado ficam na auditoria; a falha
						// de aplicação é sinalizada só pela mensagem
						assert.Equal(t, 0.50, execution.OldBid)
						assert.Equal(t, 0.55, execution.NewBid)
						assert.Equal(t, domain.ActionIncrease, execution.Action)
						assert.Equal(t, "throttled", execution.Message)
						return nil
					})

				ruleRepo.EXPECT().UpdateRuleLastRun(1, runAt).Return(nil)
			},
		},
		{
			name: "Falha na escrita da auditoria aborta a regra sem marcar como executada",
			setup: func(ruleRepo *mocks.MockRuleRepository, executionRepo *mocks.MockRuleExecutionRepository, integrator *rulingmocks.MockBidIntegrator) {
				integrator.EXPECT().Configured().Return(true)
				integrator.EXPECT().
					FetchSnapshots(gomock.Any()).
					Return([]domain.TargetSnapshot{matchingSnapshot, skippedSnapshot}, nil)

				integrator.EXPECT().ApplyBid(matchingSnapshot, 0.55).Return(nil)

				executionRepo.EXPECT().
					Log(gomock.Any()).
					Return(errors.New("disco cheio"))
				// Segundo snapshot não é avaliado e last_run_at não avança
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ruleRepo := mocks.NewMockRuleRepository(ctrl)
			executionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
			integrator := rulingmocks.NewMockBidIntegrator(ctrl)

			tt.setup(ruleRepo, executionRepo, integrator)

			service := newRunnerForTest(ruleRepo, executionRepo, integrator)
			service.processSingleRule(acosRuleForTest(), "testrun1", runAt)
		})
	}
}

func TestRuleRunnerService_runDueRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockRuleRepository(ctrl)
	executionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	integrator := rulingmocks.NewMockBidIntegrator(ctrl)

	ruleRepo.EXPECT().
		GetDueRules(gomock.Any()).
		Return([]*domain.Rule{acosRuleForTest()}, nil)

	integrator.EXPECT().Configured().Return(true)
	integrator.EXPECT().
		FetchSnapshots(gomock.Any()).
		Return([]domain.TargetSnapshot{}, nil)

	ruleRepo.EXPECT().UpdateRuleLastRun(1, gomock.Any()).Return(nil)

	service := newRunnerForTest(ruleRepo, executionRepo, integrator)
	service.runDueRules()

	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunFinishedAt.IsZero())
}

func TestRuleRunnerService_GetStatus_ConcorrenteComExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockRuleRepository(ctrl)
	executionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	integrator := rulingmocks.NewMockBidIntegrator(ctrl)

	ruleRepo.EXPECT().GetDueRules(gomock.Any()).Return([]*domain.Rule{}, nil).AnyTimes()
	integrator.EXPECT().Configured().Return(true).AnyTimes()

	service := newRunnerForTest(ruleRepo, executionRepo, integrator)

	// Os timestamps de status são lidos pelo handler HTTP enquanto a
	// goroutine do gocron executa as passagens
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			service.runDueRules()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			status := service.GetStatus()
			assert.Contains(t, status, "last_run_started_at")
			assert.Contains(t, status, "last_run_finished_at")
		}
	}()
	wg.Wait()
}

func TestRuleRunnerService_runDueRules_SemRegrasVencidas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockRuleRepository(ctrl)
	executionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	integrator := rulingmocks.NewMockBidIntegrator(ctrl)

	ruleRepo.EXPECT().GetDueRules(gomock.Any()).Return([]*domain.Rule{}, nil)

	service := newRunnerForTest(ruleRepo, executionRepo, integrator)
	service.runDueRules()
}
