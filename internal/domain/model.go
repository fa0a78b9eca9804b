package domain

// Session is the locally persisted authentication state. Empty fields mean
// "not logged in"; only the auth repository writes it.
type Session struct {
	Token    string
	Email    string
	Nickname string
}

type Player struct {
	Email           string
	Nickname        string
	Coins           int
	SkinURL         string
	ProfileImageURL string
}

// Friend is an accepted friendship entry. ID is the friend's email.
type Friend struct {
	ID              string
	Username        string
	ProfileImageURL string
	FriendshipDate  string
}

type FriendRequest struct {
	ID                       int64
	RequesterID              string
	RequesterUsername        string
	RequesterProfileImageURL string
}

// Game is a finished-match history entry, already formatted for display:
// Duration as zero-padded MM:SS, Date as DD/MM/YYYY.
type Game struct {
	ID       int64
	Date     string
	Role     string
	Duration string
	Winner   string
	Reward   string
}

const (
	RoleMurderer = "Murderer"
	RoleInnocent = "Innocent"
)
