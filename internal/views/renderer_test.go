package views

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/umlgen/internal/domain"
)

func libraryModel() domain.SystemModel {
	return domain.SystemModel{
		System: domain.SystemInfo{Name: "Library", Description: "Lending desk"},
		Entities: []domain.Entity{
			{
				ID:   "book",
				Name: "Book",
				Kind: domain.EntityKindClass,
				Attributes: []domain.Attribute{
					{Name: "isbn", Type: "string", Visibility: domain.VisibilityPrivate},
					{Name: "count", Type: "int", Visibility: domain.VisibilityPublic, IsStatic: true},
				},
				Methods: []domain.Method{
					{Name: "lend", ReturnType: "bool", Visibility: domain.VisibilityPublic, Parameters: []domain.Parameter{{Name: "member", Type: "Member"}}},
				},
			},
			{ID: "member", Name: "Member", Kind: domain.EntityKindClass},
			{ID: "loanable", Name: "Loanable", Kind: domain.EntityKindInterface},
		},
		Relationships: []domain.Relationship{
			{ID: "r1", Kind: domain.RelationshipAssociation, Source: "member", Target: "book", SourceCardinality: "1", TargetCardinality: "*", Label: "borrows"},
			{ID: "r2", Kind: domain.RelationshipRealization, Source: "book", Target: "loanable"},
		},
		Actors: []domain.Actor{
			{ID: "librarian", Name: "Librarian", Kind: domain.ActorKindHuman},
			{ID: "catalog", Name: "Catalog Service", Kind: domain.ActorKindSystem},
		},
		UseCases: []domain.UseCase{
			{ID: "lend", Name: "Lend book", Actors: []string{"librarian"}, Includes: []string{"check"}},
			{ID: "check", Name: "Check availability", Actors: []string{"catalog"}},
		},
		Interactions: []domain.Interaction{
			{
				ID:           "i1",
				Kind:         domain.InteractionSequence,
				Name:         "Lending",
				Participants: []string{"librarian", "book"},
				Messages: []domain.Message{
					{From: "book", To: "member", Text: "notify", Order: 2, Kind: domain.MessageAsync},
					{From: "librarian", To: "book", Text: "lend()", Order: 1, Kind: domain.MessageSync, Return: "ok"},
				},
			},
		},
		StateMachines: []domain.StateMachine{
			{
				ID:     "book_states",
				Entity: "book",
				States: []domain.State{
					{Name: "start", Kind: domain.StateInitial},
					{Name: "Available", Kind: domain.StateSimple, Entry: "shelve"},
					{Name: "Lent", Kind: domain.StateSimple},
					{Name: "end", Kind: domain.StateFinal},
				},
				Transitions: []domain.Transition{
					{From: "start", To: "Available"},
					{From: "Available", To: "Lent", Trigger: "lend", Guard: "member in good standing"},
					{From: "Lent", To: "end", Action: "archive"},
				},
			},
		},
		Components: []domain.Component{
			{ID: "desk", Name: "Desk App", Kind: domain.ComponentKindComponent, ProvidedInterfaces: []string{"LendingAPI"}, RequiredInterfaces: []string{"CatalogAPI"}},
			{ID: "core", Name: "Core", Kind: domain.ComponentKindPackage, Contains: []string{"book", "desk"}},
		},
		DeploymentNodes: []domain.DeploymentNode{
			{ID: "server", Name: "App Server", Kind: domain.DeploymentKindExecutionEnvironment, Artifacts: []string{"desk.jar"}, NestedNodes: []string{"db_host"}},
		},
		Activities: []domain.Activity{
			{
				ID:   "lending",
				Name: "Lending flow",
				Nodes: []domain.ActivityNode{
					{ID: "start", Kind: domain.ActivityInitial},
					{ID: "check", Kind: domain.ActivityDecision, Name: "Available"},
					{ID: "lend", Kind: domain.ActivityAction, Name: "Lend book"},
					{ID: "done", Kind: domain.ActivityFinal},
				},
				Flows: []domain.ActivityFlow{
					{From: "start", To: "check"},
					{From: "check", To: "lend", Guard: "yes"},
					{From: "lend", To: "done"},
				},
			},
		},
	}
}

func lines(markup string) []string {
	return strings.Split(markup, "\n")
}

func TestDefaultRegistryOrder(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(t, []domain.ViewID{
		domain.ViewSequence,
		domain.ViewClass,
		domain.ViewComponent,
		domain.ViewUseCase,
		domain.ViewStateMachine,
		domain.ViewActivity,
		domain.ViewDeployment,
	}, registry.Supported())
	assert.False(t, registry.Supports(domain.ViewTiming))
}

func TestNewRegistryKeepsFirstStrategy(t *testing.T) {
	registry := NewRegistry(
		Strategy{View: domain.ViewClass, Template: "a.tmpl"},
		Strategy{View: domain.ViewClass, Template: "b.tmpl"},
	)

	strategy, ok := registry.Strategy(domain.ViewClass)
	require.True(t, ok)
	assert.Equal(t, "a.tmpl", strategy.Template)
	assert.Len(t, registry.Supported(), 1)
}

func TestRenderEveryRegisteredViewIsDeterministic(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	model := libraryModel()

	for _, view := range renderer.Registry().Supported() {
		t.Run(string(view), func(t *testing.T) {
			first, err := renderer.Render(model, view)
			require.NoError(t, err)
			second, err := renderer.Render(model, view)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.True(t, strings.HasPrefix(first, "@startuml\n"))
			assert.Contains(t, first, "@enduml")
			assert.Equal(t, first, NormalizeBlankLines(first))
		})
	}
}

func TestRenderDoesNotMutateModel(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	model := libraryModel()
	before := libraryModel()

	for _, view := range renderer.Registry().Supported() {
		_, err := renderer.Render(model, view)
		require.NoError(t, err)
	}

	assert.Equal(t, before, model)
}

func TestRenderClassViewScenario(t *testing.T) {
	model := domain.SystemModel{
		System: domain.SystemInfo{Name: "Shop"},
		Entities: []domain.Entity{
			{ID: "user", Name: "User", Kind: domain.EntityKindClass},
			{ID: "order", Name: "Order", Kind: domain.EntityKindClass},
		},
		Relationships: []domain.Relationship{
			{ID: "r1", Kind: domain.RelationshipAssociation, Source: "user", Target: "order"},
		},
	}

	markup, err := NewRenderer(nil, nil).Render(model, domain.ViewClass)
	require.NoError(t, err)

	assert.Contains(t, markup, `class "User" as user`)
	assert.Contains(t, markup, `class "Order" as order`)

	count := 0
	for _, line := range lines(markup) {
		if line == "user --> order" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRenderClassViewMembersAndArrows(t *testing.T) {
	markup, err := NewRenderer(nil, nil).Render(libraryModel(), domain.ViewClass)
	require.NoError(t, err)

	assert.Contains(t, markup, "  -isbn : string")
	assert.Contains(t, markup, "  +{static} count : int")
	assert.Contains(t, markup, "  +lend(member: Member) : bool")
	assert.Contains(t, markup, `interface "Loanable" as loanable`)
	assert.Contains(t, markup, `member "1" --> "*" book : borrows`)
	assert.Contains(t, markup, "book ..|> loanable")
}

func TestRenderClassViewDeclaresDanglingEndpoints(t *testing.T) {
	model := domain.SystemModel{
		System:   domain.SystemInfo{Name: "Shop"},
		Entities: []domain.Entity{{ID: "user", Name: "User", Kind: domain.EntityKindClass}},
		Relationships: []domain.Relationship{
			{ID: "r1", Kind: domain.RelationshipDependency, Source: "user", Target: "paymentGateway"},
		},
	}

	markup, err := NewRenderer(nil, nil).Render(model, domain.ViewClass)
	require.NoError(t, err)

	assert.Contains(t, markup, `class "Payment gateway" as paymentGateway`)
	assert.Contains(t, markup, "user ..> paymentGateway")
}

func TestRenderSequenceView(t *testing.T) {
	markup, err := NewRenderer(nil, nil).Render(libraryModel(), domain.ViewSequence)
	require.NoError(t, err)

	got := lines(markup)
	assert.Contains(t, got, "title Library - Sequence View")
	assert.Contains(t, got, `actor "Librarian" as librarian`)
	assert.Contains(t, got, `participant "Book" as book`)
	assert.Contains(t, got, `participant "Member" as member`)
	assert.Contains(t, got, "== Lending ==")

	lend := indexOf(got, "librarian -> book : lend()")
	ret := indexOf(got, "book --> librarian : ok")
	notify := indexOf(got, "book ->> member : notify")
	require.NotEqual(t, -1, lend)
	assert.Equal(t, lend+1, ret)
	assert.Greater(t, notify, ret)
}

func TestRenderSequenceCreateAndDestroy(t *testing.T) {
	ctx := RenderContext{SystemModel: &domain.SystemModel{}, View: domain.ViewSequence}

	assert.Equal(t, "create b\na -> b : new", ctx.MessageLines(domain.Message{From: "a", To: "b", Text: "new", Kind: domain.MessageCreate}))
	assert.Equal(t, "a -> b : [done] close\ndestroy b", ctx.MessageLines(domain.Message{From: "a", To: "b", Text: "close", Guard: "done", Kind: domain.MessageDestroy}))
}

func TestSequenceParticipantsPriorityAndFallback(t *testing.T) {
	model := &domain.SystemModel{
		Actors:     []domain.Actor{{ID: "x", Name: "Actor X", Kind: domain.ActorKindHuman}},
		Entities:   []domain.Entity{{ID: "x", Name: "Entity X", Kind: domain.EntityKindClass}},
		Components: []domain.Component{{ID: "svc", Name: "Service", Kind: domain.ComponentKindComponent}},
		Interactions: []domain.Interaction{{
			ID:       "i1",
			Messages: []domain.Message{{From: "x", To: "svc", Text: "call", Order: 1}, {From: "svc", To: "order_service", Text: "forward", Order: 2}},
		}},
	}
	ctx := RenderContext{SystemModel: model, View: domain.ViewSequence}

	participants := ctx.SequenceParticipants()
	require.Len(t, participants, 3)
	assert.Equal(t, `actor "Actor X" as x`, participants[0].Declaration)
	assert.Equal(t, `participant "Service" as svc <<component>>`, participants[1].Declaration)
	assert.Equal(t, `participant "Order service" as order_service`, participants[2].Declaration)
}

func TestRenderCrossViewNamesAreConsistent(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	model := libraryModel()

	class, err := renderer.Render(model, domain.ViewClass)
	require.NoError(t, err)
	sequence, err := renderer.Render(model, domain.ViewSequence)
	require.NoError(t, err)
	useCase, err := renderer.Render(model, domain.ViewUseCase)
	require.NoError(t, err)

	for _, name := range []string{`"Book"`, `"Member"`} {
		assert.Contains(t, class, name)
		assert.Contains(t, sequence, name)
	}
	assert.Contains(t, sequence, `"Librarian"`)
	assert.Contains(t, useCase, `"Librarian"`)
}

func TestRenderOtherViews(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	model := libraryModel()

	tests := []struct {
		view domain.ViewID
		want []string
	}{
		{
			view: domain.ViewUseCase,
			want: []string{
				`actor "Catalog Service" as catalog <<system>>`,
				`  usecase "Lend book" as uc_lend`,
				"librarian --> uc_lend",
				"uc_lend ..> uc_check : <<include>>",
			},
		},
		{
			view: domain.ViewStateMachine,
			want: []string{
				`state "Book" as sm_book_states {`,
				`  state "Available" as book_states_Available`,
				"  book_states_Available : entry / shelve",
				"  [*] --> book_states_Available",
				"  book_states_Available --> book_states_Lent : lend [member in good standing]",
				"  book_states_Lent --> [*] : / archive",
			},
		},
		{
			view: domain.ViewComponent,
			want: []string{
				`interface "LendingAPI" as if_LendingAPI`,
				`component "Desk App" as desk`,
				`package "Core" as core {`,
				`  rectangle "Book" as core__book`,
				"desk - if_LendingAPI",
				"desk ..> if_CatalogAPI : use",
				"core +-- desk",
			},
		},
		{
			view: domain.ViewDeployment,
			want: []string{
				`node "App Server" as server <<executionEnvironment>> {`,
				`  artifact "desk.jar" as server_art0`,
				`node "Db host" as db_host`,
				"server -- db_host",
			},
		},
		{
			view: domain.ViewActivity,
			want: []string{
				`partition "Lending flow" {`,
				`(*) --> "Available?"`,
				`"Available?" --> [yes] "Lend book"`,
				`"Lend book" --> (*)`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			markup, err := renderer.Render(model, tt.view)
			require.NoError(t, err)

			got := lines(markup)
			for _, line := range tt.want {
				assert.Contains(t, got, line)
			}
		})
	}
}

func TestRenderUnregisteredViewIsUnsupported(t *testing.T) {
	_, err := NewRenderer(nil, nil).Render(libraryModel(), domain.ViewTiming)

	require.ErrorIs(t, err, domain.ErrUnsupportedView)
	assert.Contains(t, err.Error(), "timing")
	assert.Contains(t, err.Error(), "sequence, class")
}

func TestRenderMissingTemplate(t *testing.T) {
	templates := fstest.MapFS{
		"class.puml.tmpl": &fstest.MapFile{Data: []byte("@startuml\n@enduml\n")},
	}
	registry := NewRegistry(
		Strategy{View: domain.ViewClass, Template: "class.puml.tmpl"},
		Strategy{View: domain.ViewSequence, Template: "sequence.puml.tmpl"},
	)
	renderer := NewRenderer(registry, templates)

	_, err := renderer.Render(libraryModel(), domain.ViewSequence)
	require.ErrorIs(t, err, domain.ErrTemplateMissing)

	markup, err := renderer.Render(libraryModel(), domain.ViewClass)
	require.NoError(t, err)
	assert.Equal(t, "@startuml\n@enduml\n", markup)
}

func TestNormalizeBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no blanks", in: "a\nb", want: "a\nb"},
		{name: "single blank kept", in: "a\n\nb", want: "a\n\nb"},
		{name: "run collapsed", in: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "whitespace lines are blank", in: "a\n  \n\t\nb", want: "a\n  \nb"},
		{name: "first line of a run kept as is", in: "a\n\t\n\n  \nb", want: "a\n\t\nb"},
		{name: "indentation untouched", in: "  a\n\n\n    b  ", want: "  a\n\n    b  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBlankLines(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeBlankLines(got))
		})
	}
}

func TestAlias(t *testing.T) {
	assert.Equal(t, "order_item", alias("order_item"))
	assert.Equal(t, "order_x2D_item", alias("order-item"))
	assert.Equal(t, "order_x20_item", alias("order item"))
	assert.Equal(t, "tax_x5F_xml", alias("tax_xml"))
	assert.Equal(t, "_x31_st", alias("1st"))
	assert.Equal(t, "_1st", alias("_1st"))
	assert.Equal(t, "caf_xE9_", alias("café"))
	assert.Equal(t, "_x_", alias(""))
}

func TestAliasKeepsDistinctIDsApart(t *testing.T) {
	ids := []string{
		"order_item", "order-item", "order item", "order.item", "order_x2D_item",
		"1st", "_1st", "_x31_st", "", "_", "_x_", "tax_xml", "tax_x5F_xml", "café", "caf_xE9_",
	}

	seen := make(map[string]string, len(ids))
	for _, id := range ids {
		got := alias(id)
		if other, ok := seen[got]; ok {
			t.Fatalf("ids %q and %q share alias %q", other, id, got)
		}
		seen[got] = id
	}
}

func TestClassViewShowsFalsyDefaults(t *testing.T) {
	model := domain.SystemModel{
		System: domain.SystemInfo{Name: "Shop"},
		Entities: []domain.Entity{
			{ID: "cart", Name: "Cart", Kind: domain.EntityKindClass, Attributes: []domain.Attribute{
				{Name: "count", Type: "int", Visibility: domain.VisibilityPrivate, Default: 0},
				{Name: "paid", Type: "bool", Visibility: domain.VisibilityPrivate, Default: false},
				{Name: "note", Type: "string", Visibility: domain.VisibilityPrivate, Default: ""},
				{Name: "ratio", Type: "float", Visibility: domain.VisibilityPrivate, Default: 0.5},
				{Name: "owner", Type: "User", Visibility: domain.VisibilityPrivate},
			}},
		},
	}

	markup, err := NewRenderer(nil, nil).Render(model, domain.ViewClass)
	require.NoError(t, err)

	lines := strings.Split(markup, "\n")
	assert.Contains(t, lines, "  -count : int = 0")
	assert.Contains(t, lines, "  -paid : bool = false")
	assert.Contains(t, lines, `  -note : string = ""`)
	assert.Contains(t, lines, "  -ratio : float = 0.5")
	assert.Contains(t, lines, "  -owner : User")
}

func TestClassViewSeparatesLookalikeIDs(t *testing.T) {
	model := domain.SystemModel{
		System: domain.SystemInfo{Name: "Shop"},
		Entities: []domain.Entity{
			{ID: "order-item", Name: "Order line", Kind: domain.EntityKindClass},
			{ID: "order_item", Name: "Order entry", Kind: domain.EntityKindClass},
			{ID: "cart", Name: "Cart", Kind: domain.EntityKindClass},
		},
		Relationships: []domain.Relationship{
			{ID: "r1", Kind: domain.RelationshipComposition, Source: "cart", Target: "order-item"},
		},
	}

	markup, err := NewRenderer(nil, nil).Render(model, domain.ViewClass)
	require.NoError(t, err)

	assert.Contains(t, markup, `class "Order line" as order_x2D_item {`)
	assert.Contains(t, markup, `class "Order entry" as order_item {`)
	assert.Contains(t, markup, "cart *-- order_x2D_item")
	assert.NotContains(t, markup, "cart *-- order_item")
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}
