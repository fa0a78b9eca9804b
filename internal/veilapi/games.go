package veilapi

import (
	"context"
	"fmt"

	"github.com/valyala/fasthttp"
)

func (c *Client) CreateGame(ctx context.Context, game GameCreationDTO) (*GameResponseDTO, error) {
	var out GameResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/games", game, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Game(ctx context.Context, gameID int64) (*GameResponseDTO, error) {
	var out GameResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodGet, fmt.Sprintf("/api/games/%d", gameID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Games(ctx context.Context) ([]GameResponseDTO, error) {
	var out []GameResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/games", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
