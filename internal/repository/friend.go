package repository

import (
	"context"
	"fmt"

	"github.com/tfg/veil-companion-go/internal/domain"
	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/veilapi"
)

type Friend struct {
	api *veilapi.Client
	cat *msgcat.Catalog
}

func NewFriend(api *veilapi.Client, cat *msgcat.Catalog) *Friend {
	return &Friend{api: api, cat: cat}
}

// SendFriendRequest asks the backend to create a pending request toward
// targetEmail. The requester identity comes from the bearer token, so the
// requesterId field is left for the server to fill in.
func (f *Friend) SendFriendRequest(ctx context.Context, targetEmail string) domain.Result[int64] {
	req := veilapi.CreateFriendRequestDTO{PlayerID: targetEmail}
	id, err := f.api.SendFriendRequest(ctx, req)
	if err != nil {
		return domain.Err[int64](fmt.Errorf("%s: %w", f.cat.Msg("friend.send_failed"), err))
	}
	return domain.Ok(id)
}

func (f *Friend) FriendRequests(ctx context.Context) domain.Result[[]domain.FriendRequest] {
	dtos, err := f.api.FriendRequests(ctx)
	if err != nil {
		return domain.Err[[]domain.FriendRequest](fmt.Errorf("%s: %w", f.cat.Msg("friend.requests_failed"), err))
	}
	reqs := make([]domain.FriendRequest, 0, len(dtos))
	for _, dto := range dtos {
		reqs = append(reqs, domain.FriendRequest{
			ID:                       dto.FriendRequestID,
			RequesterID:              dto.RequesterID,
			RequesterUsername:        dto.RequesterNickname,
			RequesterProfileImageURL: dto.RequesterProfileImageURL,
		})
	}
	return domain.Ok(reqs)
}

func (f *Friend) AcceptFriendRequest(ctx context.Context, requestID int64) domain.Result[domain.Friend] {
	dto, err := f.api.AcceptFriendRequest(ctx, requestID)
	if err != nil {
		return domain.Err[domain.Friend](fmt.Errorf("%s: %w", f.cat.Msg("friend.accept_failed"), err))
	}
	return domain.Ok(mapFriend(*dto))
}

func (f *Friend) RejectFriendRequest(ctx context.Context, requestID int64) domain.Result[domain.Unit] {
	if err := f.api.DeclineFriendRequest(ctx, requestID); err != nil {
		return domain.Err[domain.Unit](fmt.Errorf("%s: %w", f.cat.Msg("friend.decline_failed"), err))
	}
	return domain.Ok(domain.Unit{})
}

func (f *Friend) Friends(ctx context.Context) domain.Result[[]domain.Friend] {
	dtos, err := f.api.Friends(ctx)
	if err != nil {
		return domain.Err[[]domain.Friend](fmt.Errorf("%s: %w", f.cat.Msg("friend.list_failed"), err))
	}
	friends := make([]domain.Friend, 0, len(dtos))
	for _, dto := range dtos {
		friends = append(friends, mapFriend(dto))
	}
	return domain.Ok(friends)
}

func (f *Friend) RemoveFriend(ctx context.Context, friendEmail string) domain.Result[domain.Unit] {
	if err := f.api.RemoveFriend(ctx, friendEmail); err != nil {
		return domain.Err[domain.Unit](fmt.Errorf("%s: %w", f.cat.Msg("friend.remove_failed"), err))
	}
	return domain.Ok(domain.Unit{})
}

func mapFriend(dto veilapi.FriendResponseDTO) domain.Friend {
	return domain.Friend{
		ID:              dto.Email,
		Username:        dto.Nickname,
		ProfileImageURL: dto.ProfileImageURL,
		FriendshipDate:  dto.FriendshipDate,
	}
}

// DropRequest filters an accepted or declined request out of a pending list.
// Callers apply it only after the server confirmed the mutation, so the local
// list never runs ahead of the backend.
func DropRequest(reqs []domain.FriendRequest, requestID int64) []domain.FriendRequest {
	out := make([]domain.FriendRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.ID != requestID {
			out = append(out, r)
		}
	}
	return out
}
