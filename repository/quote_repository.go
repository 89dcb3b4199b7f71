package repository

import "benefit-calculator/domain"

// QuoteRepository records computed quotes for the consultation session.
type QuoteRepository interface {
	Save(input domain.PolicyInput, result domain.BenefitResult) error
}
