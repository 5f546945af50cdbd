package signals

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMinMaxScoresHigherIsBetter(t *testing.T) {
	got := MinMaxScores(map[string]float64{"a": 0, "b": 50, "c": 100}, true)
	if !almostEqual(got["a"], 0) || !almostEqual(got["b"], 50) || !almostEqual(got["c"], 100) {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestMinMaxScoresLowerIsBetter(t *testing.T) {
	got := MinMaxScores(map[string]float64{"a": 0, "b": 50, "c": 100}, false)
	if !almostEqual(got["a"], 100) || !almostEqual(got["b"], 50) || !almostEqual(got["c"], 0) {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestMinMaxScoresDegenerate(t *testing.T) {
	got := MinMaxScores(map[string]float64{"a": 5, "b": 5}, true)
	for k, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", k, v)
		}
	}
}

func TestMinMaxScoresEmpty(t *testing.T) {
	if got := MinMaxScores(nil, true); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestZScoresTwoValues(t *testing.T) {
	// mean 15, population std 5: z = -1 and +1
	got := ZScores(map[string]float64{"a": 10, "b": 20}, true)
	if !almostEqual(got["a"], 35) || !almostEqual(got["b"], 65) {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestZScoresInverted(t *testing.T) {
	got := ZScores(map[string]float64{"a": 10, "b": 20}, false)
	if !almostEqual(got["a"], 65) || !almostEqual(got["b"], 35) {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestZScoresClampsOutliers(t *testing.T) {
	values := make(map[string]float64, 21)
	for i := 0; i < 20; i++ {
		values[string(rune('a'+i))] = 0
	}
	values["outlier"] = 100

	got := ZScores(values, true)
	if got["outlier"] != 100 {
		t.Fatalf("expected clamp to 100, got %v", got["outlier"])
	}

	inverted := ZScores(values, false)
	if inverted["outlier"] != 0 {
		t.Fatalf("expected clamp to 0 after inversion, got %v", inverted["outlier"])
	}
}

func TestZScoresZeroVariance(t *testing.T) {
	got := ZScores(map[string]float64{"a": 7, "b": 7, "c": 7}, true)
	for k, v := range got {
		if v != NeutralScore {
			t.Fatalf("expected neutral for %s, got %v", k, v)
		}
	}
}

func TestZScoresRoundsToTwoDecimals(t *testing.T) {
	// mean 2, std sqrt(2/3): z_a ~= -1.2247, score ~= 31.6288
	got := ZScores(map[string]float64{"a": 1, "b": 2, "c": 3}, true)
	if !almostEqual(got["a"], 31.63) {
		t.Fatalf("expected 31.63, got %v", got["a"])
	}
	if !almostEqual(got["b"], 50) {
		t.Fatalf("expected 50, got %v", got["b"])
	}
	if !almostEqual(got["c"], 68.37) {
		t.Fatalf("expected 68.37, got %v", got["c"])
	}
}

func TestScoreOrNeutral(t *testing.T) {
	scores := map[string]float64{"a": 72.5}
	if v := scoreOrNeutral(scores, "a"); v != 72.5 {
		t.Fatalf("expected 72.5, got %v", v)
	}
	if v := scoreOrNeutral(scores, "missing"); v != NeutralScore {
		t.Fatalf("expected neutral, got %v", v)
	}
}
