package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.January, 19, 8, 0, 0, 0, time.UTC)

func profile() Profile {
	return Profile{
		Materials:     []string{"PLA", "ABS"},
		ToleranceTier: "medium",
		DeviceTypes:   []string{"3d_printer_fdm"},
	}
}

func TestProjectsScoring(t *testing.T) {
	job := Job{
		JobID:         "job-1",
		Title:         "Bracket run",
		Material:      "PLA",
		ToleranceTier: "medium",
		PayAmount:     600,
		Deadline:      now.AddDate(0, 0, 3),
	}

	recs := Projects([]Job{job}, profile(), now, 0)
	require.Len(t, recs, 1)

	// material 0.4 + tolerance 0.3 + high pay 0.2 + urgency 0.1
	assert.InDelta(t, 1.0, recs[0].Score, 1e-9)
	assert.ElementsMatch(t, []string{"Material match", "Tolerance match", "High pay", "Urgent deadline"}, recs[0].Reasons)
}

func TestProjectsPartialScores(t *testing.T) {
	testCases := []struct {
		name string
		job  Job
		want float64
	}{
		{
			name: "adjacent tolerance and good pay",
			job:  Job{Material: "Brass", ToleranceTier: "high", PayAmount: 300},
			want: 0.15 + 0.1,
		},
		{
			name: "material only",
			job:  Job{Material: "ABS", ToleranceTier: "low", PayAmount: 50},
			// low vs medium is adjacent: 0.4 + 0.15
			want: 0.55,
		},
		{
			name: "deadline too far for urgency",
			job:  Job{Material: "Brass", ToleranceTier: "high", PayAmount: 0, Deadline: now.AddDate(0, 0, 20)},
			want: 0.15,
		},
		{
			name: "overdue job gets no urgency boost",
			job:  Job{Material: "Brass", ToleranceTier: "high", PayAmount: 0, Deadline: now.AddDate(0, 0, -2)},
			want: 0.15,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recs := Projects([]Job{tc.job}, profile(), now, 0)
			require.Len(t, recs, 1)
			assert.InDelta(t, tc.want, recs[0].Score, 1e-9)
		})
	}
}

func TestProjectsSortsAndLimits(t *testing.T) {
	var jobs []Job
	for i := 0; i < 15; i++ {
		job := Job{JobID: fmt.Sprintf("job-%02d", i), Material: "Brass", ToleranceTier: "high"}
		if i%2 == 0 {
			job.Material = "PLA"
		}
		jobs = append(jobs, job)
	}

	recs := Projects(jobs, profile(), now, 0)
	require.Len(t, recs, DefaultLimit)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	// Material matches lead.
	assert.Equal(t, "job-00", recs[0].JobID)

	recs = Projects(jobs, profile(), now, 3)
	assert.Len(t, recs, 3)
}
