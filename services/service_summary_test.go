package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boothtrack/dto"
	"boothtrack/model"
)

func TestTimeSlotMinutes(t *testing.T) {
	cases := []struct {
		slot string
		want int
	}{
		{"9:30AM", 570},
		{"12:00PM", 720},
		{"12:30AM", 30},
		{"1:30PM", 810},
		{"5:00pm", 1020},
		{"bogus", -1},
		{"", -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeSlotMinutes(tc.slot), tc.slot)
	}
}

func TestTimeSlotOrdering(t *testing.T) {
	// Lexicographic order gets this wrong; chronological must not.
	assert.Greater(t, TimeSlotMinutes("1:30PM"), TimeSlotMinutes("9:30AM"))
}

func result(booth, slot, polled string) model.BoothResult {
	return model.BoothResult{
		Booth:       booth,
		TimeSlot:    slot,
		TotalVotes:  "1000",
		PolledVotes: polled,
		FavVotes:    "100",
		UbtVotes:    "50",
		OtherVotes:  "25",
	}
}

func TestSummarizeConstituencyUsesLatestSlotPerBooth(t *testing.T) {
	results := []model.BoothResult{
		result("b1", "9:30AM", "200"),
		result("b1", "1:30PM", "450"), // latest for b1
		result("b2", "11:30AM", "300"),
	}

	s := SummarizeConstituency(results)
	assert.Equal(t, dto.BoothSummary{
		TotalVotes:  2000,
		PolledVotes: 750,
		FavVotes:    200,
		UbtVotes:    100,
		OtherVotes:  50,
	}, s)
}

func TestSummarizeConstituencyBlankNumbers(t *testing.T) {
	r := result("b1", "9:30AM", "")
	r.TotalVotes = "n/a"

	s := SummarizeConstituency([]model.BoothResult{r})
	assert.Zero(t, s.TotalVotes)
	assert.Zero(t, s.PolledVotes)
	assert.Equal(t, 100, s.FavVotes)
}

func TestBoothStatus(t *testing.T) {
	roster := []string{"b1", "b2", "b3"}
	reported := []model.BoothResult{result("b2", "9:30AM", "10")}

	flags, missing := BoothStatus(roster, reported)
	assert.Equal(t, []dto.BoothFlag{
		{BoothName: "b1", Status: 0},
		{BoothName: "b2", Status: 1},
		{BoothName: "b3", Status: 0},
	}, flags)
	assert.Len(t, missing, 2)
}

func TestCheckEntry(t *testing.T) {
	t.Run("duplicate slot", func(t *testing.T) {
		existing := result("b1", "9:30AM", "100")
		resp := CheckEntry(&existing, nil, "9:30AM", 100)
		assert.True(t, resp.Exists)
	})

	t.Run("monotonic violation", func(t *testing.T) {
		prev := []model.BoothResult{result("b1", "9:30AM", "400")}
		resp := CheckEntry(nil, prev, "11:30AM", 300)
		assert.False(t, resp.Exists)
		assert.Contains(t, resp.Message, "400")
	})

	t.Run("ok when votes grow", func(t *testing.T) {
		prev := []model.BoothResult{result("b1", "9:30AM", "400")}
		resp := CheckEntry(nil, prev, "11:30AM", 450)
		assert.False(t, resp.Exists)
		assert.Empty(t, resp.Message)
	})

	t.Run("later slots are ignored", func(t *testing.T) {
		prev := []model.BoothResult{result("b1", "3:30PM", "900")}
		resp := CheckEntry(nil, prev, "11:30AM", 300)
		assert.False(t, resp.Exists)
		assert.Empty(t, resp.Message)
	})
}
