package components

import "github.com/yohamta/donburi"

// StatusData is the text the HUD shows, refreshed once per frame.
type StatusData struct {
	Level  string
	Hero   string
	Path   string
	Notice string

	noticeTTL int
}

var Status = donburi.NewComponentType[StatusData]()

// SetNotice shows msg for ticks frames.
func (s *StatusData) SetNotice(msg string, ticks int) {
	s.Notice = msg
	s.noticeTTL = ticks
}

// Tick ages the notice, clearing it when it expires.
func (s *StatusData) Tick() {
	if s.noticeTTL <= 0 {
		return
	}
	s.noticeTTL--
	if s.noticeTTL == 0 {
		s.Notice = ""
	}
}
