package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Analyzer defines the interface for analyzing a single company.
type Analyzer interface {
	AnalyzeCompany(ctx context.Context, companyID string) (*model.BuyerGroup, error)
}

// CompanyJob represents a single-company analysis job.
type CompanyJob struct {
	CompanyID string
	Analyzer  Analyzer
}

// Execute executes the analysis job.
func (j *CompanyJob) Execute(ctx context.Context) Result {
	group, err := j.Analyzer.AnalyzeCompany(ctx, j.CompanyID)
	if err != nil {
		return &CompanyResult{
			CompanyID: j.CompanyID,
			Group:     nil,
			Error:     err,
		}
	}
	return &CompanyResult{
		CompanyID: j.CompanyID,
		Group:     group,
		Error:     nil,
	}
}

// CompanyResult represents the result of a company analysis job.
type CompanyResult struct {
	CompanyID string
	Group     *model.BuyerGroup
	Error     error
}

// GetError returns the error from the company result.
func (r *CompanyResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple companies concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessCompanies analyzes multiple companies concurrently. Cancelling ctx
// stops the batch; every company still gets a result, with the context error
// standing in for analyses that never ran.
func (b *BatchProcessor) ProcessCompanies(ctx context.Context, companyIDs []string) []*CompanyResult {
	if len(companyIDs) == 0 {
		return []*CompanyResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, id := range companyIDs {
		job := &CompanyJob{
			CompanyID: id,
			Analyzer:  b.analyzer,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	byID := make(map[string]*CompanyResult, len(results))
	for _, result := range results {
		r := result.(*CompanyResult)
		byID[r.CompanyID] = r
	}

	// A cancelled context can drop jobs before they run; report those
	// companies as failed rather than omitting them.
	companyResults := make([]*CompanyResult, 0, len(companyIDs))
	for _, id := range companyIDs {
		if r, ok := byID[id]; ok {
			companyResults = append(companyResults, r)
			continue
		}
		companyResults = append(companyResults, &CompanyResult{CompanyID: id, Error: ctx.Err()})
	}

	return companyResults
}

// ProcessFile reads company IDs from a file and analyzes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CompanyResult, error) {
	ids, err := ReadCompanyIDsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read company IDs: %w", err)
	}

	return b.ProcessCompanies(ctx, ids), nil
}

// ReadCompanyIDsFromFile reads company IDs from a file (one per line).
func ReadCompanyIDsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate IDs
		if !seen[line] {
			seen[line] = true
			ids = append(ids, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return ids, nil
}
