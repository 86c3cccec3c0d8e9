package constants

// Mood is the short symbolic code stored on every entry
type Mood string

const (
	MoodJoy        Mood = "joy"
	MoodLaughTears Mood = "laugh-tears"
	MoodTouched    Mood = "touched"
	MoodDeadFunny  Mood = "dead-funny"
	MoodSmile      Mood = "smile"

	DefaultMood = MoodSmile
)

// Moods is the picker vocabulary in display order.
var Moods = []Mood{MoodJoy, MoodLaughTears, MoodTouched, MoodDeadFunny, MoodSmile}

var moodEmoji = map[Mood]string{
	MoodJoy:        "😄",
	MoodLaughTears: "🤣",
	MoodTouched:    "🥹",
	MoodDeadFunny:  "💀",
	MoodSmile:      "🙂",
}

// Emoji returns the display glyph for a mood, or the raw code when unknown.
func (m Mood) Emoji() string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return string(m)
}

// ParseMood accepts either a mood code or its emoji.
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if s == string(m) || s == moodEmoji[m] {
			return m, true
		}
	}
	return "", false
}
