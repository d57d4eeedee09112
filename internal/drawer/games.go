package drawer

// Game is one entry in the drawer.
type Game struct {
	ID          string
	Name        string
	Description string
}

// Games returns the arcade catalogue shown in the drawer.
func Games() []Game {
	return []Game{
		{ID: "blackjack", Name: "Blackjack", Description: "Beat the dealer with 21!"},
		{ID: "diamonds", Name: "Diamonds", Description: "Find the diamonds!"},
		{ID: "dice", Name: "Dice", Description: "Roll the dice!"},
		{ID: "mines", Name: "Mines", Description: "Find the gems while avoiding the mines!"},
		{ID: "plinko", Name: "Plinko", Description: "Drop the ball and watch it bounce to your fortune!"},
		{ID: "wheel", Name: "Wheel", Description: "Spin the wheel and bet on your lucky number!"},
		{ID: "hilo", Name: "Hi-Lo", Description: "Guess if the next card is higher or lower!"},
		{ID: "keno", Name: "Keno", Description: "Pick your numbers and hope for the best!"},
		{ID: "limbo", Name: "Limbo", Description: "Set your multiplier and watch it rise!"},
		{ID: "video-poker", Name: "Video Poker", Description: "Play poker against the machine!"},
	}
}

type gameItem struct {
	game Game
}

func (i gameItem) Title() string       { return i.game.Name }
func (i gameItem) Description() string { return i.game.Description }
func (i gameItem) FilterValue() string { return i.game.Name }
