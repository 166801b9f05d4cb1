package domain

import "testing"

func TestParseParticipant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Participant
		wantErr bool
	}{
		{name: "exact case", input: "Steve", want: Steve},
		{name: "lower case", input: "steve", want: Steve},
		{name: "upper case", input: "DIM", want: Dim},
		{name: "unknown name", input: "Gandalf", wantErr: true},
		{name: "empty name", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParticipant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseParticipant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseParticipant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAll_FreshSlicePerCall(t *testing.T) {
	first := All()
	if len(first) != ParticipantCount {
		t.Fatalf("All() returned %d members, want %d", len(first), ParticipantCount)
	}

	// Mutating one snapshot must not leak into the next.
	first[0] = Dim
	second := All()
	if second[0] != Nishant {
		t.Errorf("All()[0] = %v after mutating a previous snapshot, want %v", second[0], Nishant)
	}
}

func TestParticipantString(t *testing.T) {
	if got := Joe.String(); got != "Joe" {
		t.Errorf("Joe.String() = %q, want %q", got, "Joe")
	}
	if got := Participant(99).String(); got != "Participant(99)" {
		t.Errorf("out-of-range String() = %q, want %q", got, "Participant(99)")
	}
}
