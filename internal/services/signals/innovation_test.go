package signals

import "testing"

func TestInnovationScoresPenalizesMissing(t *testing.T) {
	sectors := []string{"Lab", "Plant", "Bank"}
	rd := map[string]float64{"Lab": 0.10, "Plant": 0.02, "Bank": 0.0}

	got := InnovationScores(sectors, rd)
	if !almostEqual(got["Lab"], 65) || !almostEqual(got["Plant"], 35) {
		t.Fatalf("unexpected scores %v", got)
	}
	if got["Bank"] != InnovationPenalty {
		t.Fatalf("expected penalty for Bank, got %v", got["Bank"])
	}
}

func TestInnovationScoresEmptyInput(t *testing.T) {
	got := InnovationScores([]string{"A", "B"}, nil)
	for s, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", s, v)
		}
	}
}

func TestInnovationScoresNoValidValues(t *testing.T) {
	got := InnovationScores([]string{"A", "B"}, map[string]float64{"A": 0, "B": -0.5})
	for s, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", s, v)
		}
	}
}

func TestInnovationPenaltyBelowNeutral(t *testing.T) {
	if InnovationPenalty >= NeutralScore {
		t.Fatalf("penalty %v must rank below neutral %v", InnovationPenalty, NeutralScore)
	}
}
