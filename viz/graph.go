// ABOUTME: Graphviz DOT generation for the kanban board and deal pipeline
// ABOUTME: Renders store snapshots through goccy/go-graphviz
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
)

// GraphGenerator draws graphs from the store's current snapshot.
type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

var stageColors = map[models.DealStage]string{
	models.StageLead:         "lightgrey",
	models.StageProposalSent: "lightblue",
	models.StageNegotiation:  "lightyellow",
	models.StageWon:          "lightgreen",
	models.StageLost:         "lightpink",
}

// render builds a graph with draw and returns its DOT source.
func render(draw func(graph *cgraph.Graph) error) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	if err := draw(graph); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

// GenerateBoardGraph draws the kanban columns left to right with their project cards.
func (g *GraphGenerator) GenerateBoardGraph() (string, error) {
	projects := g.store.Snapshot().Projects

	return render(func(graph *cgraph.Graph) error {
		graph.SetLabel("Project Board")
		graph.SetRankDir(cgraph.LRRank)

		var prev *cgraph.Node
		for _, group := range GroupByColumn(projects) {
			col, err := graph.CreateNodeByName("column_" + string(group.Column))
			if err != nil {
				return fmt.Errorf("failed to create column node: %w", err)
			}
			col.SetLabel(fmt.Sprintf("%s (%d)", group.Label, len(group.Projects)))
			col.SetShape("box")
			col.SetStyle("filled")
			col.SetFillColor("lightblue")

			if prev != nil {
				edge, err := graph.CreateEdgeByName("next", prev, col)
				if err != nil {
					return fmt.Errorf("failed to create edge: %w", err)
				}
				edge.SetStyle("bold")
			}
			prev = col

			for _, p := range group.Projects {
				node, err := graph.CreateNodeByName("project_" + p.ID)
				if err != nil {
					return fmt.Errorf("failed to create project node: %w", err)
				}
				node.SetLabel(fmt.Sprintf("%s\n%s\n%s", p.Title, p.ClientName, FormatMoney(p.Revenue)))
				node.SetShape("note")

				edge, err := graph.CreateEdgeByName("holds", col, node)
				if err != nil {
					return fmt.Errorf("failed to create edge: %w", err)
				}
				edge.SetStyle("dashed")
			}
		}
		return nil
	})
}

// GeneratePipelineGraph draws the deal stages with every client attached to its stage.
func (g *GraphGenerator) GeneratePipelineGraph() (string, error) {
	clients := g.store.Snapshot().Clients
	pipeline := ComputePipeline(clients)

	return render(func(graph *cgraph.Graph) error {
		graph.SetLabel(fmt.Sprintf("Deal Pipeline (%s)", FormatMoney(pipeline.PipelineValue)))
		graph.SetRankDir(cgraph.LRRank)

		stageNodes := make(map[models.DealStage]*cgraph.Node)
		for _, s := range pipeline.Stages {
			node, err := graph.CreateNodeByName("stage_" + string(s.Stage))
			if err != nil {
				return fmt.Errorf("failed to create stage node: %w", err)
			}
			node.SetLabel(fmt.Sprintf("%s\n%d · %s", s.Label, s.Count, FormatMoney(s.Revenue)))
			node.SetShape("box")
			node.SetStyle("filled")
			node.SetFillColor(stageColors[s.Stage])
			stageNodes[s.Stage] = node
		}

		// lead → proposal_sent → negotiation → won, with lost branching off negotiation
		flow := [][2]models.DealStage{
			{models.StageLead, models.StageProposalSent},
			{models.StageProposalSent, models.StageNegotiation},
			{models.StageNegotiation, models.StageWon},
			{models.StageNegotiation, models.StageLost},
		}
		for _, f := range flow {
			edge, err := graph.CreateEdgeByName("advance", stageNodes[f[0]], stageNodes[f[1]])
			if err != nil {
				return fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetStyle("bold")
		}

		for _, c := range clients {
			stage, ok := stageNodes[c.DealStage]
			if !ok {
				continue
			}
			node, err := graph.CreateNodeByName("client_" + c.ID)
			if err != nil {
				return fmt.Errorf("failed to create client node: %w", err)
			}
			node.SetLabel(fmt.Sprintf("%s\n%s", c.Name, FormatMoney(c.Revenue)))
			node.SetShape("ellipse")

			edge, err := graph.CreateEdgeByName("in_stage", node, stage)
			if err != nil {
				return fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetStyle("dotted")
		}
		return nil
	})
}
