package domain

import (
	"fmt"
	"strings"
)

// Participant is one member of the fixed group splitting expenses. The set
// is closed: parsing an unknown name is a validation error, never a new
// member. Ordinal order doubles as the deterministic iteration order used
// for tie-breaking.
type Participant int

const (
	Nishant Participant = iota
	Steve
	Joe
	Elton
	John
	Dim
	participantCount
)

// ParticipantCount is the size of the registry.
const ParticipantCount = int(participantCount)

var participantNames = [ParticipantCount]string{
	Nishant: "Nishant",
	Steve:   "Steve",
	Joe:     "Joe",
	Elton:   "Elton",
	John:    "John",
	Dim:     "Dim",
}

func (p Participant) String() string {
	if p < 0 || p >= participantCount {
		return fmt.Sprintf("Participant(%d)", int(p))
	}
	return participantNames[p]
}

// All returns the full registry in ordinal order. The slice is freshly
// allocated per call so callers can use it as a mutable default.
func All() []Participant {
	members := make([]Participant, 0, ParticipantCount)
	for p := Participant(0); p < participantCount; p++ {
		members = append(members, p)
	}
	return members
}

// ParseParticipant resolves a name to a registry member, ignoring case.
func ParseParticipant(name string) (Participant, error) {
	for p, n := range participantNames {
		if strings.EqualFold(name, n) {
			return Participant(p), nil
		}
	}
	return 0, fmt.Errorf("ParseParticipant: unknown participant %q", name)
}
