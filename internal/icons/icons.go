package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Volume   string
	Mute     string
	Listener string
	Like     string
	Dislike  string
	Radio    string
	Heart    string
	Crying   string
	Firework []string // one glyph per burst stage
	Balloon  string
}

var (
	nerdIcons = Icons{
		Play:     "", // nf-fa-play
		Pause:    "", // nf-fa-pause
		Volume:   "󰕾",      // nf-md-volume_high
		Mute:     "󰖁",      // nf-md-volume_off
		Listener: "", // nf-fa-user
		Like:     "", // nf-fa-thumbs_up
		Dislike:  "", // nf-fa-thumbs_down
		Radio:    "󰐹",      // nf-md-radio
		Heart:    "󰣐",      // nf-md-heart
		Crying:   "😢",
		Firework: []string{"·", "✦", "✺", "✧"},
		Balloon:  "🎈",
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Volume:   "🔊",
		Mute:     "🔇",
		Listener: "👤",
		Like:     "👍",
		Dislike:  "👎",
		Radio:    "📻",
		Heart:    "❤",
		Crying:   "😢",
		Firework: []string{"·", "✦", "✺", "✧"},
		Balloon:  "🎈",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Volume:   "vol",
		Mute:     "mute",
		Listener: "listeners",
		Like:     "+",
		Dislike:  "-",
		Radio:    "",
		Heart:    "<3",
		Crying:   ":'(",
		Firework: []string{".", "*", "#", "+"},
		Balloon:  "o",
	}

	// current holds the active icon set
	current = &noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = &nerdIcons
	case StyleUnicode:
		current = &unicodeIcons
	default:
		current = &noneIcons
	}
}

// Active returns the style currently in use.
func Active() Style {
	switch current {
	case &nerdIcons:
		return StyleNerd
	case &unicodeIcons:
		return StyleUnicode
	default:
		return StyleNone
	}
}

// PlayButton returns the icon of the play/pause button. It shows the action
// a press would trigger, so a playing radio shows the pause glyph.
func PlayButton(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Volume returns the speaker icon, muted at zero level.
func Volume(level float64) string {
	if level <= 0 {
		return current.Mute
	}
	return current.Volume
}

// Listener returns the listener count icon.
func Listener() string { return current.Listener }

// Like returns the like count icon.
func Like() string { return current.Like }

// Dislike returns the dislike count icon.
func Dislike() string { return current.Dislike }

// FormatStation prefixes a station name with the radio icon.
func FormatStation(name string) string {
	if current.Radio == "" {
		return name
	}
	return current.Radio + " " + name
}

// Heart returns the heart emoji.
func Heart() string { return current.Heart }

// Crying returns the crying emoji.
func Crying() string { return current.Crying }

// Balloon returns the balloon glyph of the overlay row.
func Balloon() string { return current.Balloon }

// Firework returns the burst glyph for a progress in [0,1] through the
// firework lifetime.
func Firework(progress float64) string {
	stages := current.Firework
	i := int(progress * float64(len(stages)))
	return stages[min(max(i, 0), len(stages)-1)]
}
