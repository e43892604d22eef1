package reminder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/reminder"
)

func TestResolveSoundFallsBackToDefault(t *testing.T) {
	assert.Equal(t, reminder.DefaultSoundKey, reminder.ResolveSound("").Key)
	assert.Equal(t, reminder.DefaultSoundKey, reminder.ResolveSound("kazoo").Key)

	urgent := reminder.ResolveSound("urgent")
	assert.Equal(t, "urgent", urgent.Key)
	assert.NotEmpty(t, urgent.URL)
}

func TestSoundLibraryIsFixed(t *testing.T) {
	sounds := reminder.Sounds()
	require.Len(t, sounds, 4)

	keys := make([]string, 0, len(sounds))
	for _, s := range sounds {
		keys = append(keys, s.Key)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.URL)
	}
	assert.Equal(t, []string{"gentle", "digital", "bell", "urgent"}, keys)
}
