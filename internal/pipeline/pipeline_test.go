package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rsamoilov/buyerscope/internal/model"
)

type fakeProvider struct {
	roster []model.PersonCandidate
	err    error
}

func (f *fakeProvider) FetchRoster(ctx context.Context, companyID string) ([]model.PersonCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func testProfile() *model.SellerProfile {
	return &model.SellerProfile{
		ProductName:      "Buyer Group Intelligence Platform",
		SolutionCategory: model.SolutionRevenueTechnology,
		DealSizeBand:     model.DealBandMidMarket,
		DepartmentKeywords: model.KeywordSet{
			Primary:   []string{"sales", "revenue"},
			Secondary: []string{"marketing", "operations"},
		},
		TitleKeywords: model.KeywordSet{
			Primary:   []string{"sales", "revenue"},
			Secondary: []string{"operations", "marketing"},
		},
	}
}

func TestPipeline_AnalyzeCompany(t *testing.T) {
	prov := &fakeProvider{
		roster: []model.PersonCandidate{
			{FullName: "Alice", Title: "Chief Revenue Officer", ProviderID: "p1"},
			{FullName: "Bob", Title: "Director of Sales Operations", ProviderID: "p2"},
		},
	}

	p, err := NewPipeline(model.DefaultConfig(), testProfile(), prov, zap.NewNop())
	require.NoError(t, err)

	group, err := p.AnalyzeCompany(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", group.CompanyID)
	assert.Len(t, group.Members, 2)
	assert.Nil(t, group.Playbook, "playbook disabled by default")
}

func TestPipeline_AnalyzeCompany_ProviderError(t *testing.T) {
	prov := &fakeProvider{err: errors.New("provider down")}

	p, err := NewPipeline(model.DefaultConfig(), testProfile(), prov, nil)
	require.NoError(t, err)

	_, err = p.AnalyzeCompany(context.Background(), "acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch roster")
}

func TestPipeline_RenderGroup(t *testing.T) {
	prov := &fakeProvider{
		roster: []model.PersonCandidate{
			{FullName: "Alice", Title: "Chief Revenue Officer", ProviderID: "p1"},
		},
	}

	p, err := NewPipeline(model.DefaultConfig(), testProfile(), prov, zap.NewNop())
	require.NoError(t, err)

	group, err := p.AnalyzeCompany(context.Background(), "acme")
	require.NoError(t, err)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "acme.json")
	mdPath := filepath.Join(dir, "acme.md")

	require.NoError(t, p.RenderGroup(group, jsonPath, mdPath, false))

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"company_id": "acme"`)

	mdData, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	md := string(mdData)
	assert.Contains(t, md, "# Buyer Group: acme")
	assert.Contains(t, md, "Alice")
	assert.Contains(t, md, "## Quality")
}

func TestRenderer_MarkdownEmptyGroup(t *testing.T) {
	r := NewRenderer(true)
	group := &model.BuyerGroup{CompanyID: "empty-co", Underfilled: true}

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.md")
	require.NoError(t, r.RenderMarkdown(group, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "No qualifying candidates")
	assert.Contains(t, md, "(underfilled)")
	assert.Contains(t, md, "Generated by buyerscope")
}
