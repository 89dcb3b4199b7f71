package service

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"benefit-calculator/domain"
	"benefit-calculator/repository"
	"benefit-calculator/rules"
)

type BenefitService struct {
	table  *rules.Table
	repo   repository.QuoteRepository
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewBenefitService creates a BenefitService bound to an immutable rule table.
func NewBenefitService(
	table *rules.Table,
	repo repository.QuoteRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *BenefitService {
	return &BenefitService{table: table, repo: repo, cache: cache, logger: logger}
}

// ComputeBenefit calculates the estimated payout for one policy input.
// The result is a pure function of the input and the rule table; an unmet
// waiting period is a normal zero-amount result, not an error.
func (s *BenefitService) ComputeBenefit(
	input domain.PolicyInput,
) (domain.BenefitResult, error) {

	if !input.Insurer.Valid() {
		return domain.BenefitResult{}, fmt.Errorf("%w: unknown insurer %q", domain.ErrInvalidInput, input.Insurer)
	}
	if !input.RiderType.Valid() {
		return domain.BenefitResult{}, fmt.Errorf("%w: unknown rider type %q", domain.ErrInvalidInput, input.RiderType)
	}
	if !input.DiagnosisCategory.Valid() {
		return domain.BenefitResult{}, fmt.Errorf("%w: unknown diagnosis category %q", domain.ErrInvalidInput, input.DiagnosisCategory)
	}
	if input.CoverageAmount <= 0 {
		return domain.BenefitResult{}, fmt.Errorf("%w: coverage amount must be positive", domain.ErrInvalidInput)
	}
	if input.CoverageAmount > MaxCoverageAmount {
		return domain.BenefitResult{}, fmt.Errorf("%w: coverage amount exceeds the maximum of %d KRW", domain.ErrInvalidInput, int64(MaxCoverageAmount))
	}
	if input.PolicyStartDate.IsZero() {
		return domain.BenefitResult{}, fmt.Errorf("%w: policy start date is required", domain.ErrInvalidInput)
	}

	asOf := input.AsOf.Time
	if input.AsOf.IsZero() {
		asOf = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if input.PolicyStartDate.After(asOf) {
		return domain.BenefitResult{}, fmt.Errorf("%w: policy start date is in the future", domain.ErrInvalidInput)
	}

	rule, ok := s.table.Lookup(input.Insurer, input.RiderType, input.DiagnosisCategory)
	if !ok {
		return domain.BenefitResult{}, fmt.Errorf("%w: %s / %s / %s is not covered by this tool",
			domain.ErrUnsupportedCombination, input.Insurer, input.RiderType, input.DiagnosisCategory)
	}

	key := cacheKey(input, asOf)
	if cached, hit := s.cache.Get(key); hit {
		var result domain.BenefitResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.logger.Warn("discarding corrupt cache entry", zap.String("key", key))
	}

	elapsedDays := int(asOf.Sub(input.PolicyStartDate.Time).Hours() / 24)
	result := evaluate(input, rule, elapsedDays)

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.logger.Warn("failed to cache quote", zap.Error(err))
		}
	}
	// Record the quote; a failure here must not block the consultation.
	if err := s.repo.Save(input, result); err != nil {
		s.logger.Warn("failed to save quote", zap.Error(err))
	}

	return result, nil
}

// evaluate applies a single rule. The waiting-period boundary is inclusive:
// elapsed equal to the threshold pays.
func evaluate(input domain.PolicyInput, rule domain.BenefitRule, elapsedDays int) domain.BenefitResult {
	result := domain.BenefitResult{
		Insurer:           input.Insurer,
		RiderType:         input.RiderType,
		DiagnosisCategory: input.DiagnosisCategory,
	}

	if elapsedDays < rule.WaitingPeriodDays {
		result.LineItems = []domain.LineItem{{
			Label:  fmt.Sprintf("%s: waiting period not met (%d of %d days)", rule.Label, elapsedDays, rule.WaitingPeriodDays),
			Amount: 0,
		}}
		return result
	}

	var amount int64
	switch rule.Kind {
	case domain.RuleFixed:
		amount = rule.Amount
	case domain.RulePercentage:
		amount = percentOf(input.CoverageAmount, rule.Percent)
	case domain.RuleTiered:
		elapsedYears := elapsedDays / DaysPerYear
		for _, tier := range rule.Tiers {
			if elapsedYears >= tier.MinYears {
				amount = percentOf(input.CoverageAmount, tier.Percent)
			}
		}
	}

	result.LineItems = []domain.LineItem{{Label: rule.Label, Amount: amount}}
	result.Total = amount
	return result
}

func percentOf(amount int64, percent float64) int64 {
	return int64(math.Round(float64(amount) * percent / 100))
}

func cacheKey(input domain.PolicyInput, asOf time.Time) string {
	return fmt.Sprintf("quote:%s:%s:%s:%d:%s:%s",
		input.Insurer, input.RiderType, input.DiagnosisCategory,
		input.CoverageAmount,
		input.PolicyStartDate.Format("2006-01-02"),
		asOf.Format("2006-01-02"))
}
