package genai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/model"
)

func demoClient(t *testing.T) *genai.Client {
	client, err := genai.NewClient(context.Background(), "")
	require.NoError(t, err, "empty API key must yield a demo-mode client, not an error")
	require.True(t, client.Demo())
	return client
}

func TestDemoPlanGeneration(t *testing.T) {
	client := demoClient(t)

	plan, err := client.GeneratePlan(context.Background(), genai.PlanRequest{
		Name:     "John Doe",
		Age:      42,
		Symptoms: "Fever, headache",
		Language: model.LanguageEnglish,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, plan.Overview)
	assert.NotEmpty(t, plan.Diet)
	require.NotEmpty(t, plan.Medicines)
	for _, med := range plan.Medicines {
		assert.NotEmpty(t, med.Schedule, "demo medicines must carry schedules so reminders work")
		for _, ts := range med.Schedule {
			_, _, err := model.ParseClock(ts)
			assert.NoError(t, err, "schedule entry %q must be HH:MM", ts)
		}
	}
	assert.Greater(t, plan.DurationDays, 0)
}

func TestDemoPlanIsDeterministic(t *testing.T) {
	client := demoClient(t)

	first, err := client.GeneratePlan(context.Background(), genai.PlanRequest{Name: "A"})
	require.NoError(t, err)
	second, err := client.GeneratePlan(context.Background(), genai.PlanRequest{Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDemoMedicineFormClassification(t *testing.T) {
	client := demoClient(t)

	cases := map[string]string{
		"Voveran Gel":       "Gel",
		"Betnovate Cream":   "Cream",
		"Benadryl Syrup":    "Syrup",
		"Asthalin Inhaler":  "Inhaler",
		"Insulin Injection": "Injection",
		"Ciplox Eye Drops":  "Drops",
		"Paracetamol":       "Tablet",
	}
	for name, wantForm := range cases {
		info, err := client.LookupMedicine(context.Background(), name, model.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, wantForm, info.Type, "form of %q", name)
		assert.Equal(t, name, info.Name)
		assert.NotEmpty(t, info.Uses)
	}
}

func TestDemoNewsFeed(t *testing.T) {
	client := demoClient(t)

	items, err := client.FetchNews(context.Background(), genai.NewsQuery{Language: model.LanguageEnglish})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Location.Country)
	}
}

func TestDemoBreakingNewsIsSilent(t *testing.T) {
	client := demoClient(t)

	item, err := client.BreakingNews(context.Background(), model.LanguageEnglish)
	require.NoError(t, err)
	assert.Nil(t, item, "demo mode has no breaking-news pulse")
}

func TestDemoChat(t *testing.T) {
	client := demoClient(t)

	reply, err := client.Chat(context.Background(), "What should I eat with a fever?", nil, model.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, reply, "Demo mode")
}
