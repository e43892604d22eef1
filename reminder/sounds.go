package reminder

// AlarmSound is one entry of the fixed sound library.
type AlarmSound struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DefaultSoundKey is used for plan-derived reminders and as the fallback
// when a custom reminder carries an unknown sound key.
const DefaultSoundKey = "gentle"

var alarmSounds = map[string]AlarmSound{
	"gentle":  {Key: "gentle", Label: "Gentle Chime", URL: "https://cdn.freesound.org/previews/235/235914_2391629-lq.mp3"},
	"digital": {Key: "digital", Label: "Digital Beep", URL: "https://cdn.freesound.org/previews/264/264877_4486188-lq.mp3"},
	"bell":    {Key: "bell", Label: "Classic Bell", URL: "https://cdn.freesound.org/previews/339/339810_5121236-lq.mp3"},
	"urgent":  {Key: "urgent", Label: "Urgent Alert", URL: "https://cdn.freesound.org/previews/337/337000_5674468-lq.mp3"},
}

// Order sounds are listed to callers.
var soundOrder = []string{"gentle", "digital", "bell", "urgent"}

// ResolveSound maps a sound key to its library entry, falling back to the
// default entry for unknown keys.
func ResolveSound(key string) AlarmSound {
	if s, ok := alarmSounds[key]; ok {
		return s
	}
	return alarmSounds[DefaultSoundKey]
}

// Sounds returns the library in display order.
func Sounds() []AlarmSound {
	out := make([]AlarmSound, 0, len(soundOrder))
	for _, k := range soundOrder {
		out = append(out, alarmSounds[k])
	}
	return out
}
