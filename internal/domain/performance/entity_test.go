package performance

import "testing"

func TestOverallRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		want    float64
	}{
		{"all rated", Ratings{4, 4, 4, 4, 4, 4, 4, 4}, 4},
		{"nothing rated", Ratings{}, 0},
		{"unrated competencies excluded", Ratings{Technical: 5, Communication: 4}, 4.5},
		{"two decimal rounding", Ratings{Technical: 4, Communication: 4, Teamwork: 5}, 4.33},
		{"single competency", Ratings{Punctuality: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ratings.OverallRating(); got != tt.want {
				t.Errorf("OverallRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		rating float64
		want   Band
	}{
		{0, BandNotRated},
		{4.5, BandOutstanding},
		{5, BandOutstanding},
		{4.49, BandExceeds},
		{3.5, BandExceeds},
		{3.49, BandMeets},
		{2.5, BandMeets},
		{2.49, BandNeedsWork},
		{1.5, BandNeedsWork},
		{1.49, BandUnsatisfactory},
		{1, BandUnsatisfactory},
	}

	for _, tt := range tests {
		if got := BandFor(tt.rating); got != tt.want {
			t.Errorf("BandFor(%v) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestReviewFinalize(t *testing.T) {
	r := &Review{
		Ratings: Ratings{
			Technical:      5,
			Communication:  4,
			Teamwork:       5,
			Leadership:     4,
			ProblemSolving: 5,
			Initiative:     4,
			Punctuality:    5,
			Quality:        4,
		},
	}
	r.Finalize()

	if r.OverallRating != 4.5 {
		t.Errorf("OverallRating = %v, want 4.5", r.OverallRating)
	}
	if r.PerformanceBand != BandOutstanding {
		t.Errorf("PerformanceBand = %v, want %v", r.PerformanceBand, BandOutstanding)
	}
}

func TestReviewFinalizeUnrated(t *testing.T) {
	r := &Review{}
	r.Finalize()

	if r.OverallRating != 0 {
		t.Errorf("OverallRating = %v, want 0", r.OverallRating)
	}
	if r.PerformanceBand != BandNotRated {
		t.Errorf("PerformanceBand = %v, want %v", r.PerformanceBand, BandNotRated)
	}
}
