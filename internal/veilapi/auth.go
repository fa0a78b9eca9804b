package veilapi

import (
	"context"

	"github.com/valyala/fasthttp"
)

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	in := AuthRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg PlayerRegistrationDTO) (*PlayerResponseDTO, error) {
	var out PlayerResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/auth/register", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
