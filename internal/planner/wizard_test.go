package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
)

func TestWizardStepFlow(t *testing.T) {
	w := New()
	assert.Equal(t, Step{Kind: StepChooseDuration}, w.Step())

	require.NoError(t, w.ChooseDuration(2))
	assert.Equal(t, Step{Kind: StepPickDay, Day: 1}, w.Step())

	require.NoError(t, w.Next())
	assert.Equal(t, Step{Kind: StepPickDay, Day: 2}, w.Step())

	require.NoError(t, w.Next())
	assert.Equal(t, Step{Kind: StepReview}, w.Step())

	require.NoError(t, w.Back())
	assert.Equal(t, Step{Kind: StepPickDay, Day: 2}, w.Step())

	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.Equal(t, Step{Kind: StepChooseDuration}, w.Step())
}

func TestWizardChooseDurationValidation(t *testing.T) {
	w := New()
	assert.ErrorIs(t, w.ChooseDuration(0), domain.ErrValidation)
	assert.ErrorIs(t, w.ChooseDuration(5), domain.ErrValidation)
	assert.NoError(t, w.ChooseDuration(4))
}

func TestWizardToggleIsIdempotentPair(t *testing.T) {
	w := New()
	require.NoError(t, w.ChooseDuration(1))

	fort := domain.Stop{Title: "Amber Fort", Type: "history"}
	mahal := domain.Stop{Title: "Hawa Mahal", Type: "history"}

	require.NoError(t, w.Toggle(fort))
	require.NoError(t, w.Toggle(mahal))
	require.Len(t, w.Selections(1), 2)

	// Second toggle removes; a third re-adds at the end.
	require.NoError(t, w.Toggle(fort))
	require.Len(t, w.Selections(1), 1)
	assert.Equal(t, "Hawa Mahal", w.Selections(1)[0].Title)

	require.NoError(t, w.Toggle(fort))
	assert.Equal(t, "Amber Fort", w.Selections(1)[1].Title)
}

func TestWizardToggleOutsidePickDay(t *testing.T) {
	w := New()
	assert.ErrorIs(t, w.Toggle(domain.Stop{Title: "Amber Fort"}), domain.ErrPrecondition)
}

func TestWizardChooseDurationRestartsDraft(t *testing.T) {
	w := New()
	require.NoError(t, w.ChooseDuration(2))
	require.NoError(t, w.Toggle(domain.Stop{Title: "Amber Fort"}))

	require.NoError(t, w.ChooseDuration(3))
	assert.Empty(t, w.Selections(1))
}

func TestFilter(t *testing.T) {
	all := Filter("", "")
	assert.NotEmpty(t, all)

	forts := Filter("fort", "")
	require.NotEmpty(t, forts)
	for _, s := range forts {
		matched := strings.Contains(strings.ToLower(s.Title), "fort") ||
			strings.Contains(strings.ToLower(s.Description), "fort")
		assert.True(t, matched, "stop %q matched neither title nor description", s.Title)
	}

	// Filtering never surfaces a stop of the wrong type.
	for _, s := range Filter("", "food") {
		assert.Equal(t, "food", s.Type)
	}

	assert.Empty(t, Filter("zzz-no-such-place", ""))
}

func TestWizardConfirm(t *testing.T) {
	w := New()
	require.NoError(t, w.ChooseDuration(2))
	require.NoError(t, w.Toggle(domain.Stop{Title: "Amber Fort", Type: "history", Description: "Hilltop fort"}))
	require.NoError(t, w.Toggle(domain.Stop{Title: "Mystery Rooftop Cafe", Type: "food"}))
	require.NoError(t, w.Next())
	require.NoError(t, w.Toggle(domain.Stop{Title: "Hawa Mahal", Type: "history"}))
	require.NoError(t, w.Next())

	catalog := []domain.Location{
		{ID: "cat-1", Name: "Amber Fort", ImageURL: "https://img.example/amber.jpg", IsFeatured: true},
	}
	res, err := w.Confirm("jaipur", itinerary.Jaipur(), catalog)
	require.NoError(t, err)

	require.Len(t, res.DayPlan, 2)
	assert.Equal(t, "Day 1", res.DayPlan[0].Title)
	assert.Equal(t, "Day 2", res.DayPlan[1].Title)
	require.Len(t, res.DayPlan[0].Stops, 2)

	require.Len(t, res.Curated, 3)
	fort := res.Curated[0]
	assert.Equal(t, "planner-1-0", fort.ID)
	assert.Equal(t, 1, fort.PlannerDay)
	assert.InDelta(t, 26.9855, fort.Latitude, 1e-9)
	assert.Equal(t, "https://img.example/amber.jpg", fort.ImageURL, "catalog metadata backfilled by name")
	assert.True(t, fort.IsFeatured)

	// Unknown titles land on the central fallback coordinate.
	cafe := res.Curated[1]
	assert.InDelta(t, itinerary.DefaultCoord.Lat, cafe.Latitude, 1e-9)
	assert.InDelta(t, itinerary.DefaultCoord.Lng, cafe.Longitude, 1e-9)

	mahal := res.Curated[2]
	assert.Equal(t, "planner-2-0", mahal.ID)
	assert.Equal(t, 2, mahal.PlannerDay)
}

func TestWizardConfirmRequiresReview(t *testing.T) {
	w := New()
	require.NoError(t, w.ChooseDuration(1))
	_, err := w.Confirm("jaipur", itinerary.Jaipur(), nil)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}
