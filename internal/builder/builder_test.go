package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/graph"
)

func task(name string, deps ...string) *config.Task {
	return &config.Task{Name: name, DependsOn: deps}
}

// predecessorNames maps each task name to the names of its predecessors.
func predecessorNames(t *testing.T, g *graph.Graph[*config.Task]) map[string][]string {
	t.Helper()

	set, err := g.Flatten()
	require.NoError(t, err)

	nameByID := make(map[graph.NodeID]string, len(set))
	for _, spec := range set {
		nameByID[spec.ID] = spec.Task.Name
	}

	out := make(map[string][]string, len(set))
	for _, spec := range set {
		preds := make([]string, 0, len(spec.After))
		for _, id := range spec.After {
			preds = append(preds, nameByID[id])
		}
		out[spec.Task.Name] = preds
	}
	return out
}

func TestBuild_Diamond(t *testing.T) {
	t.Parallel()

	// Declared deliberately out of dependency order: the builder must cope
	// with forward references in the flow file.
	model := &config.Model{Tasks: []*config.Task{
		task("publish", "index", "report"),
		task("index", "extract"),
		task("report", "extract"),
		task("extract"),
	}}

	g, err := Build(context.Background(), model)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	preds := predecessorNames(t, g)
	assert.Empty(t, preds["extract"])
	assert.Equal(t, []string{"extract"}, preds["index"])
	assert.Equal(t, []string{"extract"}, preds["report"])
	assert.ElementsMatch(t, []string{"index", "report"}, preds["publish"])
}

func TestBuild_RunAfterLabelsPassThrough(t *testing.T) {
	t.Parallel()

	model := &config.Model{Tasks: []*config.Task{
		{Name: "extract", RunAfter: []string{"bootstrap", "warmup"}},
	}}

	g, err := Build(context.Background(), model)
	require.NoError(t, err)

	set, err := g.Flatten()
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, []graph.Constraint{"bootstrap", "warmup"}, set[0].Constraints)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate task name", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{task("a"), task("a")}}
		_, err := Build(context.Background(), model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate task name")
	})

	t.Run("unknown dependency", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{task("a", "ghost")}}
		_, err := Build(context.Background(), model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `depends on unknown task "ghost"`)
	})

	t.Run("self dependency", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{task("a", "a")}}
		_, err := Build(context.Background(), model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depends on itself")
	})

	t.Run("declared cycle", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			task("a", "c"),
			task("b", "a"),
			task("c", "b"),
			task("standalone"),
		}}
		_, err := Build(context.Background(), model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependency cycle involving: a, b, c")
	})
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	model := &config.Model{Tasks: []*config.Task{
		task("d", "b", "c"),
		task("b", "a"),
		task("c", "a"),
		task("a"),
	}}

	first, err := Build(context.Background(), model)
	require.NoError(t, err)
	second, err := Build(context.Background(), model)
	require.NoError(t, err)

	firstSet, err := first.Flatten()
	require.NoError(t, err)
	secondSet, err := second.Flatten()
	require.NoError(t, err)

	require.Len(t, secondSet, len(firstSet))
	for i := range firstSet {
		assert.Equal(t, firstSet[i].Task.Name, secondSet[i].Task.Name)
		assert.Equal(t, firstSet[i].After, secondSet[i].After)
	}
}
