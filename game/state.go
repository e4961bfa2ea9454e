package game

// roundsPerConference is the number of trash-talk exchanges per pair.
const roundsPerConference = 3

// State tracks tournament progression for a single chat. The fight
// announcement track and the conference track advance independently.
// State is not safe for concurrent use; the Store serializes access.
type State struct {
	pairings []Pair

	fightIndex      int
	conferenceIndex int
	conferenceRound int
}

// NewState creates a chat state over the given pairings.
func NewState(pairings []Pair) *State {
	return &State{pairings: pairings}
}

// Pairings returns the full bracket.
func (s *State) Pairings() []Pair {
	return s.pairings
}

// CurrentFight returns the pair to announce next, or false after the last
// fight has been shown.
func (s *State) CurrentFight() (Pair, bool) {
	if s.fightIndex >= len(s.pairings) {
		return Pair{}, false
	}
	return s.pairings[s.fightIndex], true
}

// CurrentFightNumber returns the 1-based fight number for display,
// or 0 when all fights have been announced.
func (s *State) CurrentFightNumber() int {
	if s.fightIndex >= len(s.pairings) {
		return 0
	}
	return s.fightIndex + 1
}

// AdvanceFight moves to the next fight. Returns true while fights remain.
func (s *State) AdvanceFight() bool {
	s.fightIndex++
	return s.fightIndex < len(s.pairings)
}

// IsDrawComplete reports whether every fight has been announced.
func (s *State) IsDrawComplete() bool {
	return s.fightIndex >= len(s.pairings)
}

// CurrentPair returns the pair holding the current press conference,
// or false when no pairings exist or all conferences finished.
func (s *State) CurrentPair() (Pair, bool) {
	if len(s.pairings) == 0 || s.conferenceIndex >= len(s.pairings) {
		return Pair{}, false
	}
	return s.pairings[s.conferenceIndex], true
}

// AdvanceRound moves to the next trash-talk round within the current
// conference. Returns false once the conference is out of rounds.
func (s *State) AdvanceRound() bool {
	s.conferenceRound++
	return s.conferenceRound < roundsPerConference
}

// AdvanceConference moves to the next pair and resets the round counter.
// Returns true while conferences remain.
func (s *State) AdvanceConference() bool {
	s.conferenceIndex++
	s.conferenceRound = 0
	return s.conferenceIndex < len(s.pairings)
}

// IsConferenceActive reports whether a conference is still in progress.
func (s *State) IsConferenceActive() bool {
	return len(s.pairings) > 0 && s.conferenceIndex < len(s.pairings)
}

// ConferenceProgress returns 1-based display values:
// current conference, total conferences, current round, total rounds.
func (s *State) ConferenceProgress() (int, int, int, int) {
	total := len(s.pairings)
	if total == 0 {
		total = len(fixedPairings)
	}
	return s.conferenceIndex + 1, total, s.conferenceRound + 1, roundsPerConference
}

// Reset zeroes both progression tracks. The roster and pairings stay loaded.
func (s *State) Reset() {
	s.fightIndex = 0
	s.conferenceIndex = 0
	s.conferenceRound = 0
}
