package amqp

import (
	"encoding/json"
	"time"
)

// SavingBackupMessage is a lightweight message for backing up a saving to
// Google Sheets. It carries only the ID and version; the worker fetches the
// full row from the database.
type SavingBackupMessage struct {
	ID        int64     `json:"id"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSavingBackupMessage(id, version int64) *SavingBackupMessage {
	return &SavingBackupMessage{
		ID:        id,
		Version:   version,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SavingBackupMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SavingBackupMessageFromJSON creates a message from JSON bytes
func SavingBackupMessageFromJSON(data []byte) (*SavingBackupMessage, error) {
	var msg SavingBackupMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
