package store

import "github.com/hgapps/medicare-api/model"

// AppendMessage appends one message to the user's chat transcript and
// writes the whole transcript back.
func (s *Store) AppendMessage(userKey string, msg model.ChatMessage) error {
	transcript := append(s.LoadTranscript(userKey), msg)
	return s.write(TranscriptKey(userKey), transcript)
}

// LoadTranscript returns the user's transcript in insertion order.
// Timestamps come back as time.Time values reconstructed from their JSON
// serialization. A missing or corrupt record reads as empty.
func (s *Store) LoadTranscript(userKey string) []model.ChatMessage {
	var transcript []model.ChatMessage
	s.read(TranscriptKey(userKey), &transcript)
	return transcript
}

// ClearTranscript deletes the user's transcript record.
func (s *Store) ClearTranscript(userKey string) error {
	return s.delete(TranscriptKey(userKey))
}
