package veilapi

// Wire DTOs, field names exactly as the backend serializes them.

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type PlayerRegistrationDTO struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Password        string `json:"password"`
	SkinURL         string `json:"skinUrl,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type PlayerResponseDTO struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Coins           int    `json:"coins"`
	SkinURL         string `json:"skinUrl"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type PasswordUpdateDTO struct {
	Password string `json:"password"`
}

type ProfileImageDTO struct {
	ProfileImageURL string `json:"profileImageUrl"`
}

type CreateFriendRequestDTO struct {
	RequesterID string `json:"requesterId"`
	PlayerID    string `json:"playerId"`
}

type FriendRequestCreatedDTO struct {
	RequestID int64 `json:"requestId"`
}

type FriendRequestDTO struct {
	FriendRequestID          int64  `json:"friendRequestId"`
	RequesterID              string `json:"requesterId"`
	RequesterNickname        string `json:"requesterNickname"`
	PlayerID                 string `json:"playerId"`
	RequesterProfileImageURL string `json:"requesterProfileImageUrl"`
}

type FriendResponseDTO struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	FriendshipDate  string `json:"friendshipDate"`
	ProfileImageURL string `json:"profileImageUrl"`
	SkinURL         string `json:"skinUrl"`
}

type GameCreationDTO struct {
	Duration      int      `json:"duration"`
	PlayerEmails  []string `json:"playerEmails"`
	MurdererEmail string   `json:"murdererEmail"`
}

type GameResponseDTO struct {
	ID       int64           `json:"id"`
	Duration int             `json:"duration"`
	Players  []PlayerGameDTO `json:"players"`
}

type PlayerGameDTO struct {
	PlayerEmail    string `json:"playerEmail"`
	PlayerNickname string `json:"playerNickname"`
	IsMurderer     bool   `json:"isMurderer"`
	GameDateTime   string `json:"gameDateTime"`
}
