package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		strength int
		want     Band
	}{
		{-3, BandWeak},
		{0, BandWeak},
		{1, BandWeak},
		{2, BandWeak},
		{3, BandMedium},
		{4, BandStrong},
		{5, BandStrong},
		{99, BandStrong},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, BandFor(tt.strength), "strength %d", tt.strength)
	}
}

func TestSelect(t *testing.T) {
	ctx := Context{
		FriendName:      "Sam",
		JobTitle:        "Staff Engineer",
		JobURL:          "https://jobs.example.com/42",
		TargetCompany:   "Acme",
		EmployeeName:    "Jordan Lee",
		UserName:        "Alex",
		UserLinkedInURL: "https://linkedin.com/in/alex",
		CalendarURL:     "https://cal.example.com/alex",
	}

	t.Run("strong", func(t *testing.T) {
		band, text := Select(5, ctx)
		require.Equal(t, BandStrong, band)
		require.True(t, strings.HasPrefix(text, "Hey Sam,"))
		require.Contains(t, text, "Staff Engineer role at Acme (https://jobs.example.com/42)")
		require.True(t, strings.HasSuffix(text, "\nAlex"))
	})

	t.Run("medium", func(t *testing.T) {
		band, text := Select(3, ctx)
		require.Equal(t, BandMedium, band)
		require.True(t, strings.HasPrefix(text, "Hi Sam,"))
		require.Contains(t, text, "introducing me to Jordan Lee")
	})

	t.Run("weak for unrated", func(t *testing.T) {
		band, text := Select(0, ctx)
		require.Equal(t, BandWeak, band)
		require.True(t, strings.HasPrefix(text, "Hello Sam,"))
		require.Contains(t, text, "https://cal.example.com/alex")
	})
}

func TestRenderIsFullyInterpolated(t *testing.T) {
	for _, band := range []Band{BandStrong, BandMedium, BandWeak, Band("bogus")} {
		text := Render(band, Context{})

		require.NotContains(t, text, "{{", "band %s", band)
		require.NotContains(t, text, "<no value>", "band %s", band)
		require.NotContains(t, text, "()", "band %s", band)
		require.Contains(t, text, "the company")
	}
}

func TestRenderOmitsBlankJobURL(t *testing.T) {
	text := Render(BandStrong, Context{JobTitle: "Designer", TargetCompany: "Initech"})
	require.Contains(t, text, "Designer role at Initech. Based on")
}
