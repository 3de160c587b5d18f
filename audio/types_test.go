package audio

import "testing"

// TestSoundTypeValues verifies sound type constants index the volume table
func TestSoundTypeValues(t *testing.T) {
	if SoundFire != 0 {
		t.Errorf("Expected SoundFire=0, got %d", SoundFire)
	}
	if SoundHit != 1 {
		t.Errorf("Expected SoundHit=1, got %d", SoundHit)
	}
	if soundTypeCount != 2 {
		t.Errorf("Expected 2 sound types, got %d", soundTypeCount)
	}
}

func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		st   SoundType
		want string
	}{
		{SoundFire, "fire"},
		{SoundHit, "hit"},
		{SoundType(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
