package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snakeCaseModel = `{
  "system": {"name": "Shop", "metadata": {"use_cases": "checkout"}},
  "entities": [{
    "id": "order", "name": "Order", "type": "class",
    "attributes": [{"name": "count", "type": "int", "is_static": true, "default": {"initial_value": 0}}],
    "methods": [{"name": "total", "return_type": "Money", "is_static": true, "is_abstract": true}]
  }, {"id": "line", "name": "Line", "type": "class"}],
  "relationships": [{"id": "r1", "type": "composition", "source": "order", "target": "line",
    "source_cardinality": "1", "target_cardinality": "*"}],
  "actors": [{"id": "buyer", "name": "Buyer", "type": "human"}],
  "use_cases": [{"id": "uc1", "name": "Checkout", "actors": ["buyer"],
    "main_flow": ["pay"], "alternative_flows": [{"name": "declined", "steps": ["retry"]}]}],
  "interactions": [{"id": "i1", "messages": [
    {"from": "buyer", "to": "order", "message": "submit", "order": 1, "message_type": "async", "return_message": "ok"}]}],
  "state_machines": [{"id": "sm1", "entity": "order", "states": [{"name": "Open", "type": "simple", "do_activity": "wait"}]}],
  "components": [{"id": "api", "name": "API", "type": "component",
    "provided_interfaces": ["REST"], "required_interfaces": ["DB"]}],
  "deployment_nodes": [{"id": "vm", "name": "VM", "type": "node", "nested_nodes": ["pod"]}]
}`

func TestDecodeModelAcceptsSnakeCaseAliases(t *testing.T) {
	model, err := ParseModel(snakeCaseModel)
	require.NoError(t, err)

	attr := model.Entities[0].Attributes[0]
	assert.True(t, attr.IsStatic)
	assert.Equal(t, map[string]any{"initial_value": float64(0)}, attr.Default, "default values keep their keys")

	method := model.Entities[0].Methods[0]
	assert.Equal(t, "Money", method.ReturnType)
	assert.True(t, method.IsStatic)
	assert.True(t, method.IsAbstract)

	rel := model.Relationships[0]
	assert.Equal(t, "1", rel.SourceCardinality)
	assert.Equal(t, "*", rel.TargetCardinality)

	require.Len(t, model.UseCases, 1)
	assert.Equal(t, []string{"pay"}, model.UseCases[0].MainFlow)
	assert.Equal(t, []AlternativeFlow{{Name: "declined", Steps: []string{"retry"}}}, model.UseCases[0].AlternativeFlows)

	msg := model.Interactions[0].Messages[0]
	assert.Equal(t, MessageAsync, msg.Kind)
	assert.Equal(t, "ok", msg.Return)

	require.Len(t, model.StateMachines, 1)
	assert.Equal(t, "wait", model.StateMachines[0].States[0].DoActivity)

	require.Len(t, model.Components, 1)
	assert.Equal(t, []string{"REST"}, model.Components[0].ProvidedInterfaces)
	assert.Equal(t, []string{"DB"}, model.Components[0].RequiredInterfaces)

	require.Len(t, model.DeploymentNodes, 1)
	assert.Equal(t, []string{"pod"}, model.DeploymentNodes[0].NestedNodes)

	assert.Equal(t, map[string]any{"use_cases": "checkout"}, model.System.Metadata)
}

func TestDecodeModelPrefersWireNameOverAlias(t *testing.T) {
	model, err := DecodeModel([]byte(`{"system":{"name":"Shop"},
		"useCases":[{"id":"camel","name":"Camel"}],
		"use_cases":[{"id":"snake","name":"Snake"}]}`))
	require.NoError(t, err)

	require.Len(t, model.UseCases, 1)
	assert.Equal(t, "camel", model.UseCases[0].ID)
}

func TestPatchFieldAcceptsSnakeCaseKeys(t *testing.T) {
	patch, err := PatchFromJSON([]byte(`{"state_machines":[{"id":"sm1","entity":"order","states":[{"name":"Open","type":"simple","do_activity":"wait"}]}]}`))
	require.NoError(t, err)

	model := patch.Apply(SystemModel{})
	require.Len(t, model.StateMachines, 1)
	assert.Equal(t, "wait", model.StateMachines[0].States[0].DoActivity)
}

func TestDecodeModelRejectsTrailingData(t *testing.T) {
	_, err := DecodeModel([]byte(`{"system":{"name":"Shop"}} {}`))
	require.Error(t, err)
}
