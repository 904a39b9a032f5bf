package process_message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"hi", IntentGreeting},
		{"  Hello  ", IntentGreeting},
		{"good morning", IntentGreeting},
		{"start", IntentGreeting},
		{"how are you?", IntentWellbeing},
		{"how r u", IntentWellbeing},
		{"thanks a lot", IntentGratitude},
		{"thank you", IntentGratitude},
		{"bye", IntentFarewell},
		{"goodbye", IntentFarewell},
		{"who are you", IntentIdentity},
		{"what can you do", IntentIdentity},
		{"Hospital Working Hours", IntentHours},
		{"timings", IntentHours},
		{"Hospital Location", IntentLocation},
		{"address", IntentLocation},
		{"Contact Help Desk", IntentContact},
		{"helpline", IntentContact},
		{"cancel appointment", IntentCancel},
		{"I want to cancel my booking", IntentCancel},
		{"Book Appointment", IntentBook},
		{"I want to book an appointment", IntentBook},
		{"yes", IntentYes},
		{"y", IntentYes},
		{"no", IntentNo},
		{"weather today", IntentUnknown},
		{"15-04-2026", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

// Отмена приоритетнее записи: "cancel booking" содержит оба ключа
func TestClassify_CancelBeatsBook(t *testing.T) {
	assert.Equal(t, IntentCancel, Classify("cancel booking"))
}
