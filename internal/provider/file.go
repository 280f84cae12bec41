package provider

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// FileProvider serves rosters from a JSONL snapshot, one candidate per line.
// Used by the offline analyze command; every line must carry a company_id so
// one snapshot can hold multiple companies.
type FileProvider struct {
	rosters map[string][]model.PersonCandidate
}

// snapshotLine is one JSONL record: a candidate tagged with its company.
type snapshotLine struct {
	CompanyID string `json:"company_id"`
	model.PersonCandidate
}

// NewFileProvider loads a JSONL snapshot from disk.
func NewFileProvider(path string) (*FileProvider, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = file.Close() }()

	rosters := make(map[string][]model.PersonCandidate)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rec snapshotLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parse snapshot line %d: %w", lineNo, err)
		}
		if rec.CompanyID == "" {
			return nil, fmt.Errorf("snapshot line %d: missing company_id", lineNo)
		}

		rec.PersonCandidate.Normalize()
		rosters[rec.CompanyID] = append(rosters[rec.CompanyID], rec.PersonCandidate)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}

	return &FileProvider{rosters: rosters}, nil
}

// FetchRoster returns the snapshot roster for a company.
func (p *FileProvider) FetchRoster(_ context.Context, companyID string) ([]model.PersonCandidate, error) {
	people, ok := p.rosters[companyID]
	if !ok {
		return nil, fmt.Errorf("company %s not present in snapshot", companyID)
	}
	return people, nil
}

// CompanyIDs lists the companies present in the snapshot, useful when the
// caller wants to analyze everything in the file.
func (p *FileProvider) CompanyIDs() []string {
	ids := make([]string, 0, len(p.rosters))
	for id := range p.rosters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
