package mood

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		sample BandSample
		want   Mood
	}{
		{"club", BandSample{Bass: 0.8, Mid: 0.7, Overall: 0.9}, Club},
		{"club ignores low overall", BandSample{Bass: 0.71, Mid: 0.61, Overall: 0}, Club},
		{"club ignores treble", BandSample{Bass: 1, Mid: 1, Treble: 1, Overall: 1}, Club},
		{"bass at club boundary", BandSample{Bass: 0.7, Mid: 0.9, Overall: 0.5}, Bass},
		{"bass with low mid", BandSample{Bass: 0.9, Mid: 0.6, Overall: 0.5}, Bass},
		{"bass just above threshold", BandSample{Bass: 0.61, Overall: 0.1}, Bass},
		{"bass threshold is strict", BandSample{Bass: 0.6, Overall: 0.5}, Normal},
		{"slow", BandSample{Overall: 0.29}, Slow},
		{"slow boundary is strict", BandSample{Overall: 0.3}, Normal},
		{"silence is slow", BandSample{}, Slow},
		{"normal", BandSample{Bass: 0.4, Mid: 0.5, Treble: 0.5, Overall: 0.5}, Normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.sample); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.sample, got, tt.want)
			}
		})
	}
}

func TestClassify_ClubRegion(t *testing.T) {
	for bass := 0.71; bass <= 1.0; bass += 0.03 {
		for mid := 0.61; mid <= 1.0; mid += 0.03 {
			for _, overall := range []float64{0, 0.29, 0.3, 1} {
				s := BandSample{Bass: bass, Mid: mid, Treble: 1 - overall, Overall: overall}
				if got := Classify(s); got != Club {
					t.Fatalf("Classify(%+v) = %v, want club", s, got)
				}
			}
		}
	}
}

func TestClassify_BassRegion(t *testing.T) {
	for _, bass := range []float64{0.61, 0.65, 0.69, 0.7} {
		for _, mid := range []float64{0, 0.3, 0.6} {
			for _, overall := range []float64{0, 0.5, 1} {
				s := BandSample{Bass: bass, Mid: mid, Overall: overall}
				if got := Classify(s); got != Bass {
					t.Errorf("Classify(%+v) = %v, want bass", s, got)
				}
			}
		}
	}
}

func TestMood_StringParse(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := Parse("disco"); err == nil {
		t.Error("Parse(disco) should fail")
	}
	if Mood(42).String() != "unknown" {
		t.Errorf("Mood(42).String() = %q, want unknown", Mood(42).String())
	}
}
