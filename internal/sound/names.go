package sound

// Sound names, matched against file base names in the sound directory.
const (
	NameDraw = "draw"
	NamePlay = "play"
	NameWin  = "win"
)
