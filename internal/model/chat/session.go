package chat

// Session captures the server-side conversation state for one browser.
type Session struct {
	Transcript []Turn `json:"transcript"`
	ReplyCount int    `json:"replyCount"`
	ProbeCount int    `json:"probeCount"`
}

// LastTurn returns the most recent transcript entry.
func (s Session) LastTurn() (Turn, bool) {
	if len(s.Transcript) == 0 {
		return Turn{}, false
	}
	return s.Transcript[len(s.Transcript)-1], true
}
