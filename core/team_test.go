package core

import "testing"

func TestParseTeam(t *testing.T) {
	tests := []struct {
		in      string
		want    TeamType
		wantErr bool
	}{
		{"blue", TeamBlue, false},
		{"RED", TeamRed, false},
		{" auto ", TeamAutoSelect, false},
		{"Auto-Select", TeamAutoSelect, false},
		{"spectator", TeamSpectator, false},
		{"", TeamNone, false},
		{"green", TeamNone, true},
	}

	for _, tt := range tests {
		got, err := ParseTeam(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTeam(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTeam(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTeamRoundTrip(t *testing.T) {
	for _, team := range []TeamType{TeamNone, TeamBlue, TeamRed, TeamAutoSelect, TeamSpectator} {
		parsed, err := ParseTeam(team.String())
		if err != nil {
			t.Fatalf("ParseTeam(%q): %v", team.String(), err)
		}
		if parsed != team {
			t.Errorf("Round trip %v -> %v", team, parsed)
		}
	}
}

func TestIsConcrete(t *testing.T) {
	if !TeamBlue.IsConcrete() || !TeamRed.IsConcrete() {
		t.Error("Blue and Red must be concrete")
	}
	if TeamAutoSelect.IsConcrete() || TeamSpectator.IsConcrete() || TeamNone.IsConcrete() {
		t.Error("Only Blue and Red are concrete")
	}
}
