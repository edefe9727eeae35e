package application

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/ports"
)

// sectorMarker is the word the game uses for "sector" in location names,
// e.g. "격리 구역 0" or "구역 3: 데이터 보관소".
const sectorMarker = "구역"

var sectorPattern = regexp.MustCompile(sectorMarker + ` (\d+)`)

// ExtractSector returns the sector number of the first marker in text.
func ExtractSector(text string) (domain.SectorID, bool) {
	match := sectorPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return domain.SectorID(n), true
}

// SectorLabel is the two-digit sector badge shown in the header, "00" when
// the location carries no marker.
func SectorLabel(location string) string {
	_, rest, found := strings.Cut(location, sectorMarker)
	if !found {
		return "00"
	}

	label, _, _ := strings.Cut(rest, ":")
	label = strings.TrimSpace(label)
	if label == "" {
		return "00"
	}
	if n := len([]rune(label)); n < 2 {
		return strings.Repeat("0", 2-n) + label
	}

	return label
}

// ThemeTrigger asks the audio player for the theme of the sector named by the
// current location.
type ThemeTrigger struct {
	audio   ports.AudioPlayer
	last    domain.SectorID
	hasLast bool
}

func NewThemeTrigger(audio ports.AudioPlayer) *ThemeTrigger {
	return &ThemeTrigger{audio: audio}
}

// Observe requests the location's theme when its sector differs from the last
// one requested. It reports whether a request was made.
func (t *ThemeTrigger) Observe(location string) bool {
	sector, ok := ExtractSector(location)
	if !ok {
		return false
	}
	if t.hasLast && t.last == sector {
		return false
	}

	t.request(sector)
	return true
}

// Force requests the location's theme even when the sector is unchanged, for
// example right after audio was enabled.
func (t *ThemeTrigger) Force(location string) bool {
	sector, ok := ExtractSector(location)
	if !ok {
		return false
	}

	if t.audio != nil {
		t.audio.ClearTheme()
	}
	t.request(sector)
	return true
}

func (t *ThemeTrigger) request(sector domain.SectorID) {
	t.last = sector
	t.hasLast = true
	if t.audio != nil {
		t.audio.PlayTheme(sector)
	}
}
