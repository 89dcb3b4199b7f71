package repository

import (
	"sync"

	"benefit-calculator/domain"
)

type quoteRecord struct {
	Input  domain.PolicyInput
	Result domain.BenefitResult
}

// QuoteRepositoryMemory is an in-memory implementation of QuoteRepository.
// Quotes live only for the lifetime of the process.
type QuoteRepositoryMemory struct {
	mu   sync.Mutex
	data []quoteRecord
}

// NewQuoteRepositoryMemory creates a new in-memory quote repository.
func NewQuoteRepositoryMemory() *QuoteRepositoryMemory {
	return &QuoteRepositoryMemory{}
}

// Save stores the quote in memory.
func (r *QuoteRepositoryMemory) Save(
	input domain.PolicyInput,
	result domain.BenefitResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, quoteRecord{Input: input, Result: result})
	return nil
}

// Count reports how many quotes have been recorded.
func (r *QuoteRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
