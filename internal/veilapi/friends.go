package veilapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/valyala/fasthttp"
)

func (c *Client) SendFriendRequest(ctx context.Context, req CreateFriendRequestDTO) (int64, error) {
	var out FriendRequestCreatedDTO
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/friends/requests", req, &out); err != nil {
		return 0, err
	}
	return out.RequestID, nil
}

func (c *Client) AcceptFriendRequest(ctx context.Context, requestID int64) (*FriendResponseDTO, error) {
	var out FriendResponseDTO
	path := fmt.Sprintf("/api/friends/requests/%d/accept", requestID)
	if err := c.doJSON(ctx, fasthttp.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeclineFriendRequest(ctx context.Context, requestID int64) error {
	path := fmt.Sprintf("/api/friends/requests/%d/decline", requestID)
	return c.doJSON(ctx, fasthttp.MethodPost, path, nil, nil)
}

func (c *Client) FriendRequests(ctx context.Context) ([]FriendRequestDTO, error) {
	var out []FriendRequestDTO
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/friends/requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Friends(ctx context.Context) ([]FriendResponseDTO, error) {
	var out []FriendResponseDTO
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/friends", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RemoveFriend(ctx context.Context, friendEmail string) error {
	return c.doJSON(ctx, fasthttp.MethodDelete, "/api/friends/"+url.PathEscape(friendEmail), nil, nil)
}
