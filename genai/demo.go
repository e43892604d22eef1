package genai

import (
	"strings"
	"time"

	"github.com/hgapps/medicare-api/model"
)

// Deterministic placeholder content served when no API key is configured.
// Nothing here is random: the same request always yields the same result so
// demo mode stays testable.

const demoChatReply = "Demo mode: Please configure API_KEY to enable AI responses."

func demoPlan() model.GeneratedPlan {
	return model.GeneratedPlan{
		Overview: "Demo plan: based on the reported symptoms this appears to be a mild, self-limiting condition. Rest, hydration and symptomatic relief are recommended. Configure API_KEY for a personalized plan.",
		Diet: []string{
			"Drink at least 2-3 litres of water daily",
			"Light, easily digestible meals",
			"Avoid caffeine and alcohol",
		},
		Medicines: []model.Medicine{
			{
				Name:      "Paracetamol 500mg",
				Dosage:    "1 tablet",
				Frequency: "Twice daily",
				Duration:  "5 days",
				Schedule:  []string{"08:00", "20:00"},
			},
			{
				Name:      "Vitamin C 500mg",
				Dosage:    "1 tablet",
				Frequency: "Once daily",
				Duration:  "7 days",
				Schedule:  []string{"09:00"},
			},
		},
		Monitoring: []string{
			"Body temperature twice daily",
			"Hydration and urine output",
			"Seek care if symptoms worsen after 48 hours",
		},
		DurationDays: 7,
	}
}

func demoMedicine(name string) model.MedicineInfo {
	lower := strings.ToLower(name)
	form := "Tablet"
	switch {
	case strings.Contains(lower, "gel") || strings.Contains(lower, "jel"):
		form = "Gel"
	case strings.Contains(lower, "cream"):
		form = "Cream"
	case strings.Contains(lower, "syrup") || strings.Contains(lower, "suspension") || strings.Contains(lower, "liquid"):
		form = "Syrup"
	case strings.Contains(lower, "inhaler") || strings.Contains(lower, "respule"):
		form = "Inhaler"
	case strings.Contains(lower, "injection") || strings.Contains(lower, "vial"):
		form = "Injection"
	case strings.Contains(lower, "drops"):
		form = "Drops"
	}
	return model.MedicineInfo{
		Name:        name,
		Type:        form,
		Uses:        []string{"Pain relief", "Fever reduction", "Inflammation"},
		SideEffects: []string{"Nausea", "Dizziness", "Stomach upset"},
		Dosage:      "Typically as recommended by a doctor.",
		Warnings:    []string{"Consult doctor if pregnant", "Avoid alcohol", "Keep out of reach of children"},
		Substitutes: []string{"Generic Brand A", "Generic Brand B"},
	}
}

func demoNews() []model.NewsItem {
	now := time.Now()
	today := now.Format("2006-01-02")
	return []model.NewsItem{
		{
			ID:       "demo-1",
			Title:    "New Malaria Vaccine Shows 77% Efficacy in Early Trials",
			Summary:  "A potentially game-changing malaria vaccine has demonstrated high efficacy in Phase 2 trials conducted in West Africa.",
			Category: model.CategoryVaccine,
			Location: model.NewsLocation{Country: "Burkina Faso", State: "Nantou"},
			Date:     today,
			Content: "Scientists have reported that a new malaria vaccine, R21/Matrix-M, has become the first to meet the World Health Organization's goal of 75% efficacy against the mosquito-borne disease.\n\n" +
				"In a trial involving 450 children in Burkina Faso, the vaccine was found to be 77% effective over 12 months of follow-up.\n\n" +
				"The researchers, from the University of Oxford, are now planning final-stage trials. Malaria kills more than 400,000 people a year, mostly children in sub-Saharan Africa.",
			Severity:  model.SeverityMedium,
			Source:    "Global Health Institute",
			Timestamp: now.Add(-1 * time.Hour).UnixMilli(),
		},
		{
			ID:       "demo-2",
			Title:    "Outbreak of Nipah Virus Reported in Kerala",
			Summary:  "Health authorities confirm two cases of Nipah virus in Kozhikode district, prompting isolation protocols.",
			Category: model.CategoryOutbreak,
			Location: model.NewsLocation{Country: "India", State: "Kerala"},
			Date:     today,
			Content: "Local health officials in Kerala have confirmed a localized outbreak of the Nipah virus. Contact tracing has been initiated immediately.\n\n" +
				"The Nipah virus can be transmitted to humans from animals (such as bats or pigs), or contaminated foods and can also be transmitted directly from human-to-human.\n\n" +
				"Residents are advised to avoid consuming fruits that may have been bitten by bats and to maintain hygiene.",
			Severity:  model.SeverityHigh,
			Source:    "CDC India",
			Timestamp: now.Add(-2 * time.Hour).UnixMilli(),
		},
		{
			ID:       "demo-3",
			Title:    "FDA Approves New Treatment for Alzheimer's Disease",
			Summary:  "The FDA has granted accelerated approval for a new drug targeting amyloid plaques in the brain.",
			Category: model.CategoryNewMedicine,
			Location: model.NewsLocation{Country: "USA", State: "Maryland"},
			Date:     today,
			Content: "The US Food and Drug Administration has approved a new therapy for Alzheimer's disease. This is the first new treatment approved for Alzheimer's since 2003.\n\n" +
				"The drug works by clearing amyloid beta plaques from the brain, which are thought to play a key role in the pathology of the disease.\n\n" +
				"Clinical trials showed a reduction in clinical decline, though experts caution that more monitoring is needed for potential side effects.",
			Severity:  model.SeverityLow,
			Source:    "FDA News",
			Timestamp: now.Add(-3 * time.Hour).UnixMilli(),
		},
	}
}
