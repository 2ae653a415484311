// ABOUTME: Bid MCP tool handlers
// ABOUTME: Implements add_bid, update_bid and delete_bid tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type BidHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewBidHandlers(s *store.Store) *BidHandlers {
	return &BidHandlers{store: s, now: time.Now}
}

type AddBidInput struct {
	ClientName string  `json:"client_name" jsonschema:"Client the bid was sent to (required)"`
	Amount     float64 `json:"amount,omitempty" jsonschema:"Bid amount in dollars"`
	Date       string  `json:"date,omitempty" jsonschema:"Date the bid was sent, ISO 8601 or YYYY-MM-DD (default now)"`
	Won        bool    `json:"won,omitempty" jsonschema:"Whether the bid was won"`
}

func (h *BidHandlers) AddBid(_ context.Context, request *mcp.CallToolRequest, input AddBidInput) (*mcp.CallToolResult, BidOutput, error) {
	if input.ClientName == "" {
		return nil, BidOutput{}, fmt.Errorf("client_name is required")
	}

	date, err := parseDate("date", input.Date, h.now())
	if err != nil {
		return nil, BidOutput{}, err
	}

	bid := h.store.AddBid(models.Bid{
		ClientName: input.ClientName,
		Amount:     input.Amount,
		Date:       date,
		Won:        input.Won,
	})
	return nil, bidToOutput(bid), nil
}

type UpdateBidInput struct {
	ID         string   `json:"id" jsonschema:"Bid ID (required)"`
	ClientName *string  `json:"client_name,omitempty" jsonschema:"Updated client name"`
	Amount     *float64 `json:"amount,omitempty" jsonschema:"Updated amount in dollars"`
	Date       *string  `json:"date,omitempty" jsonschema:"Updated date, ISO 8601 or YYYY-MM-DD"`
	Won        *bool    `json:"won,omitempty" jsonschema:"Mark the bid as won or not"`
}

func (h *BidHandlers) UpdateBid(_ context.Context, request *mcp.CallToolRequest, input UpdateBidInput) (*mcp.CallToolResult, BidOutput, error) {
	if input.ID == "" {
		return nil, BidOutput{}, fmt.Errorf("id is required")
	}
	if err := requireNonEmpty("client_name", input.ClientName); err != nil {
		return nil, BidOutput{}, err
	}
	date, err := parseDatePtr("date", input.Date, h.now())
	if err != nil {
		return nil, BidOutput{}, err
	}

	patch := models.BidPatch{
		ClientName: input.ClientName,
		Amount:     input.Amount,
		Date:       date,
		Won:        input.Won,
	}
	if !h.store.UpdateBid(input.ID, patch) {
		return nil, BidOutput{}, notFound("bid", input.ID)
	}

	for _, b := range h.store.Snapshot().Bids {
		if b.ID == input.ID {
			return nil, bidToOutput(b), nil
		}
	}
	return nil, BidOutput{}, notFound("bid", input.ID)
}

func (h *BidHandlers) DeleteBid(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteBid(input.ID) {
		return nil, DeleteOutput{}, notFound("bid", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}
