package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tfg/veil-companion-go/internal/domain"
)

// Output renders command results as text or JSON.
type Output struct {
	format string
}

func NewOutput(format string) *Output {
	return &Output{format: format}
}

func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
		return
	}
	fmt.Println(msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case domain.Player:
		o.printPlayer(v)
	case domain.Session:
		o.printSession(v)
	case domain.Friend:
		o.printFriend(v)
	case []domain.Friend:
		if len(v) == 0 {
			fmt.Println("No friends yet")
			return
		}
		for _, f := range v {
			o.printFriend(f)
		}
	case []domain.FriendRequest:
		if len(v) == 0 {
			fmt.Println("No pending friend requests")
			return
		}
		for _, r := range v {
			fmt.Printf("#%d  from %s", r.ID, r.RequesterID)
			if r.RequesterUsername != "" {
				fmt.Printf(" (%s)", r.RequesterUsername)
			}
			fmt.Println()
		}
	case domain.Game:
		o.printGame(v)
	case []domain.Game:
		if len(v) == 0 {
			fmt.Println("No games played yet")
			return
		}
		for _, g := range v {
			o.printGame(g)
		}
	case HomeSummary:
		fmt.Printf("%s <%s>\n", v.Player.Nickname, v.Player.Email)
		fmt.Printf("  coins:   %d\n", v.Player.Coins)
		fmt.Printf("  friends: %d\n", v.FriendCount)
		fmt.Printf("  games:   %d\n", v.GameCount)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p domain.Player) {
	fmt.Printf("%s <%s>\n", p.Nickname, p.Email)
	fmt.Printf("  coins: %d\n", p.Coins)
	if p.ProfileImageURL != "" {
		fmt.Printf("  image: %s\n", p.ProfileImageURL)
	}
	if p.SkinURL != "" {
		fmt.Printf("  skin:  %s\n", p.SkinURL)
	}
}

func (o *Output) printSession(s domain.Session) {
	if s.Token == "" {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s <%s>\n", s.Nickname, s.Email)
}

func (o *Output) printFriend(f domain.Friend) {
	fmt.Printf("%s <%s>", f.Username, f.ID)
	if f.FriendshipDate != "" {
		fmt.Printf("  since %s", f.FriendshipDate)
	}
	fmt.Println()
}

func (o *Output) printGame(g domain.Game) {
	fmt.Printf("#%d  %s  %s  %s\n", g.ID, g.Date, g.Role, g.Duration)
}
