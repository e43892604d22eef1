package store

import "github.com/hgapps/medicare-api/model"

// Custom reminders live in a single global record rather than a per-user
// one, unlike history and chat transcripts: they drive device-level alarms
// that keep firing regardless of who is logged in.

// CustomReminders returns the ordered reminder list, empty on a missing or
// corrupt record.
func (s *Store) CustomReminders() []model.CustomReminder {
	var reminders []model.CustomReminder
	s.read(KeyCustomReminders, &reminders)
	return reminders
}

// AddCustomReminder appends a reminder and writes the list back.
func (s *Store) AddCustomReminder(r model.CustomReminder) error {
	reminders := append(s.CustomReminders(), r)
	return s.write(KeyCustomReminders, reminders)
}

// DeleteCustomReminder removes the reminder with the given id. Deleting an
// unknown id is a no-op, so a second delete of the same id has no further
// effect.
func (s *Store) DeleteCustomReminder(id string) error {
	reminders := s.CustomReminders()
	kept := reminders[:0]
	for _, r := range reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.write(KeyCustomReminders, kept)
}
