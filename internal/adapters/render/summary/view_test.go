package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/domain"
)

func shopSummary() application.ModelSummary {
	model := domain.SystemModel{
		System: domain.SystemInfo{Name: "Shop", Description: "Online ordering"},
		Entities: []domain.Entity{
			{ID: "order", Name: "Order", Kind: domain.EntityKindClass},
			{ID: "customer", Name: "Customer", Kind: domain.EntityKindClass},
		},
		Actors: []domain.Actor{{ID: "buyer", Name: "Buyer", Kind: domain.ActorKindHuman}},
	}

	return application.ModelSummary{
		Session:        "s1",
		Model:          model,
		Counts:         model.Counts(),
		AvailableViews: []domain.ViewID{domain.ViewSequence, domain.ViewClass},
	}
}

func TestRenderModelSummary(t *testing.T) {
	output, err := Render(shopSummary(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Shop")
	assert.Contains(t, output, "session: s1")
	assert.Contains(t, output, "Online ordering")
	assert.Contains(t, output, "entities")
	assert.Contains(t, output, "deployment nodes")
	assert.Contains(t, output, "sequence, class")
	assert.Contains(t, output, "All references resolve.")
	assert.Contains(t, output, "["+strings.Repeat("=", barWidth)+"]")
}

func TestRenderListsReferenceIssues(t *testing.T) {
	summary := shopSummary()
	summary.ReferenceIssues = []domain.ReferenceIssue{
		{Collection: "relationships", ID: "ghost", Detail: "target does not resolve"},
		{Collection: "entities", ID: "order", Detail: "duplicate id"},
		{Collection: "actors", ID: "buyer", Detail: "duplicate id"},
	}

	output, err := Render(summary, RenderOptions{MaxIssues: 2})

	require.NoError(t, err)
	assert.Contains(t, output, "Unresolved references: 3")
	assert.Contains(t, output, `relationships "ghost": target does not resolve`)
	assert.Contains(t, output, `entities "order": duplicate id`)
	assert.NotContains(t, output, `actors "buyer"`)
	assert.Contains(t, output, "... and 1 more")
}

func TestRenderFallsBackForUnnamedEmptyModel(t *testing.T) {
	output, err := Render(application.ModelSummary{Session: "s2", Counts: domain.SystemModel{}.Counts()}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Unnamed system")
	assert.Contains(t, output, "No views registered.")
	assert.Contains(t, output, "["+strings.Repeat("-", barWidth)+"]")
}
