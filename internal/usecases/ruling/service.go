package ruling

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/infrastructure/repository"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/domain"
	"github.com/vfg2006/ads-rules-api/pkg/apiErrors"
)

type RuleService interface {
	CreateRule(request *domain.CreateRuleRequest) (*domain.Rule, error)
	GetRule(ruleID int) (*domain.Rule, error)
	ListRules() ([]*domain.Rule, error)
	UpdateRule(request *domain.UpdateRuleRequest) (*domain.Rule, error)
	DeleteRule(ruleID int) error
	SetRuleEnabled(ruleID int, enabled bool) error
	ListExecutionsByRule(ruleID int, limit int) ([]*domain.RuleExecution, error)
	ListRecentExecutions(limit int) ([]*domain.RuleExecution, error)
	SimulateRules(snapshot domain.TargetSnapshot, ruleIDs []int) (float64, []domain.RuleStepLog, error)
}

type Service struct {
	ruleRepository      repository.RuleRepository
	executionRepository repository.RuleExecutionRepository
	cfg                 *config.Config
}

func NewService(
	ruleRepository repository.RuleRepository,
	executionRepository repository.RuleExecutionRepository,
	cfg *config.Config,
) RuleService {
	return &Service{
		ruleRepository:      ruleRepository,
		executionRepository: executionRepository,
		cfg:                 cfg,
	}
}

func (s *Service) CreateRule(request *domain.CreateRuleRequest) (*domain.Rule, error) {
	if err := validateRuleFields(request.Name, request.RuleType, request.AdjustmentType, request.FrequencyDays); err != nil {
		return nil, err
	}

	ruleID, err := s.ruleRepository.CreateRule(request)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar regra no banco de dados")
		return nil, NewRuleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar regra")
	}

	rule, err := s.ruleRepository.GetRule(ruleID)
	if err != nil {
		return nil, NewRuleErrorWithID(ErrFetchRules, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao buscar regra recém-criada")
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"rule_type": rule.RuleType,
		"enabled":   rule.Enabled,
	}).Info("Regra criada")

	return rule, nil
}

func (s *Service) GetRule(ruleID int) (*domain.Rule, error) {
	if ruleID == 0 {
		return nil, NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	rule, err := s.ruleRepository.GetRule(ruleID)
	if err != nil {
		return nil, NewRuleErrorWithID(ErrFetchRules, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao buscar regra")
	}

	if rule == nil {
		return nil, NewRuleErrorWithID(ErrRuleNotFound, apiErrors.ErrRuleNotFound, ruleID, "")
	}

	return rule, nil
}

func (s *Service) ListRules() ([]*domain.Rule, error) {
	rules, err := s.ruleRepository.ListRules()
	if err != nil {
		return nil, NewRuleError(ErrFetchRules, apiErrors.ErrDatabaseOperation, "Falha ao listar regras")
	}

	return rules, nil
}

func (s *Service) UpdateRule(request *domain.UpdateRuleRequest) (*domain.Rule, error) {
	if request.ID == 0 {
		return nil, NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	existing, err := s.ruleRepository.GetRule(request.ID)
	if err != nil {
		return nil, NewRuleErrorWithID(ErrFetchRules, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar regra")
	}
	if existing == nil {
		return nil, NewRuleErrorWithID(ErrRuleNotFound, apiErrors.ErrRuleNotFound, request.ID, "")
	}

	if request.RuleType != nil && !validRuleType(*request.RuleType) {
		return nil, NewRuleErrorWithID(ErrInvalidRuleType, apiErrors.ErrInvalidRuleDefinition, request.ID, string(*request.RuleType))
	}
	if request.AdjustmentType != nil && !validAdjustmentType(*request.AdjustmentType) {
		return nil, NewRuleErrorWithID(ErrInvalidAdjustmentType, apiErrors.ErrInvalidRuleDefinition, request.ID, string(*request.AdjustmentType))
	}
	if request.FrequencyDays != nil && *request.FrequencyDays <= 0 {
		return nil, NewRuleErrorWithID(ErrInvalidFrequency, apiErrors.ErrInvalidRuleDefinition, request.ID, "")
	}

	if err := s.ruleRepository.UpdateRule(request); err != nil {
		logrus.WithError(err).WithField("rule_id", request.ID).Error("Erro ao atualizar regra")
		return nil, NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar regra")
	}

	return s.ruleRepository.GetRule(request.ID)
}

func (s *Service) DeleteRule(ruleID int) error {
	if ruleID == 0 {
		return NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	// O histórico de execuções é preservado: rule_id vira uma referência
	// fraca a uma regra removida
	if err := s.ruleRepository.DeleteRule(ruleID); err != nil {
		return NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao remover regra")
	}

	logrus.WithField("rule_id", ruleID).Info("Regra removida")
	return nil
}

func (s *Service) SetRuleEnabled(ruleID int, enabled bool) error {
	if ruleID == 0 {
		return NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.ruleRepository.SetRuleEnabled(ruleID, enabled); err != nil {
		return NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao habilitar/desabilitar regra")
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": ruleID,
		"enabled": enabled,
	}).Info("Status da regra alterado")

	return nil
}

func (s *Service) ListExecutionsByRule(ruleID int, limit int) ([]*domain.RuleExecution, error) {
	if ruleID == 0 {
		return nil, NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	executions, err := s.executionRepository.ListByRule(ruleID, limit)
	if err != nil {
		return nil, NewRuleErrorWithID(ErrFetchExecutions, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao listar execuções")
	}

	return executions, nil
}

func (s *Service) ListRecentExecutions(limit int) ([]*domain.RuleExecution, error) {
	executions, err := s.executionRepository.ListRecent(limit)
	if err != nil {
		return nil, NewRuleError(ErrFetchExecutions, apiErrors.ErrDatabaseOperation, "Falha ao listar execuções recentes")
	}

	return executions, nil
}

// SimulateRules aplica uma cadeia de regras a um snapshot sem persistir nada
// e sem tocar a Amazon — é o caminho programático de composição de regras,
// útil para pré-visualizar o efeito combinado antes de habilitá-las.
func (s *Service) SimulateRules(snapshot domain.TargetSnapshot, ruleIDs []int) (float64, []domain.RuleStepLog, error) {
	rules := make([]*domain.Rule, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		rule, err := s.GetRule(id)
		if err != nil {
			return 0, nil, err
		}
		rules = append(rules, rule)
	}

	minBid, maxBid := s.cfg.BidBounds()
	finalBid, logs := ApplyRulesToTarget(snapshot, rules, minBid, maxBid)

	return finalBid, logs, nil
}

func validateRuleFields(name string, ruleType domain.RuleType, adjustmentType domain.AdjustmentType, frequencyDays int) error {
	if name == "" {
		return NewRuleError(ErrRuleNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if !validRuleType(ruleType) {
		return NewRuleError(ErrInvalidRuleType, apiErrors.ErrInvalidRuleDefinition, string(ruleType))
	}

	if !validAdjustmentType(adjustmentType) {
		return NewRuleError(ErrInvalidAdjustmentType, apiErrors.ErrInvalidRuleDefinition, string(adjustmentType))
	}

	if frequencyDays <= 0 {
		return NewRuleError(ErrInvalidFrequency, apiErrors.ErrInvalidRuleDefinition, "")
	}

	return nil
}

func validRuleType(ruleType domain.RuleType) bool {
	return ruleType == domain.RuleTypeAcosBand || ruleType == domain.RuleTypeLowTraffic
}

func validAdjustmentType(adjustmentType domain.AdjustmentType) bool {
	return adjustmentType == domain.AdjustmentTypeAbs || adjustmentType == domain.AdjustmentTypePct
}
