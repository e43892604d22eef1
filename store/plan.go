package store

import "github.com/hgapps/medicare-api/model"

// SaveActivePlan overwrites the single global active-plan slot. The slot is
// not versioned and not per-user; it resumes the most recent plan across
// navigation within a session.
func (s *Store) SaveActivePlan(plan model.TreatmentPlan) error {
	return s.write(KeyActivePlan, plan)
}

// ActivePlan returns the current active plan, or nil when none is saved or
// the record is unreadable.
func (s *Store) ActivePlan() *model.TreatmentPlan {
	var plan model.TreatmentPlan
	if !s.read(KeyActivePlan, &plan) || plan.ID == "" {
		return nil
	}
	return &plan
}

// AppendOrReplaceHistory upserts a plan into the user's history record. A
// plan whose id already exists replaces the old entry in place, preserving
// its position; a new id is prepended so the history stays newest-first by
// insertion. The whole array is written back in one read-modify-write.
func (s *Store) AppendOrReplaceHistory(userKey string, plan model.TreatmentPlan) error {
	history := s.LoadHistory(userKey)

	replaced := false
	for i := range history {
		if history[i].ID == plan.ID {
			history[i] = plan
			replaced = true
			break
		}
	}
	if !replaced {
		history = append([]model.TreatmentPlan{plan}, history...)
	}
	return s.write(HistoryKey(userKey), history)
}

// LoadHistory returns the user's full plan history, newest-first by
// insertion order (not by timestamp). A missing or corrupt record reads as
// empty.
func (s *Store) LoadHistory(userKey string) []model.TreatmentPlan {
	var history []model.TreatmentPlan
	s.read(HistoryKey(userKey), &history)
	return history
}
