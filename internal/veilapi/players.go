package veilapi

import (
	"context"

	"github.com/valyala/fasthttp"
)

func (c *Client) CurrentPlayer(ctx context.Context) (*PlayerResponseDTO, error) {
	var out PlayerResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/players/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, password string) (*PlayerResponseDTO, error) {
	var out PlayerResponseDTO
	in := PasswordUpdateDTO{Password: password}
	if err := c.doJSON(ctx, fasthttp.MethodPut, "/api/players/password", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfileImage(ctx context.Context, imageURL string) (*PlayerResponseDTO, error) {
	var out PlayerResponseDTO
	in := ProfileImageDTO{ProfileImageURL: imageURL}
	if err := c.doJSON(ctx, fasthttp.MethodPut, "/api/players/profile-image", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePlayer(ctx context.Context) error {
	return c.doJSON(ctx, fasthttp.MethodDelete, "/api/players", nil, nil)
}
