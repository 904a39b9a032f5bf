package domain

// SessionState состояние диалога в конечном автомате
type SessionState string

const (
	StateStart                  SessionState = "start"
	StateAwaitingPhone          SessionState = "awaiting_phone"
	StateAwaitingSpecialization SessionState = "awaiting_specialization"
	StateAwaitingDoctor         SessionState = "awaiting_doctor"
	StateAwaitingDate           SessionState = "awaiting_date"
	StateAwaitingTime           SessionState = "awaiting_time"
	StateDone                   SessionState = "done"
	StateAwaitingCancelPhone    SessionState = "awaiting_cancel_phone"
	StateAwaitingCancelSelect   SessionState = "awaiting_cancel_select"
	StateThankYou               SessionState = "thank_you"
)

// Session запись состояния диалога одного абонента.
// Сериализуется в JSON при хранении в Redis.
type Session struct {
	ID             string       `json:"id"`
	State          SessionState `json:"state"`
	Phone          string       `json:"phone,omitempty"`
	Specialization string       `json:"specialization,omitempty"`
	Doctor         string       `json:"doctor,omitempty"`
	Date           string       `json:"date,omitempty"`
	Time           string       `json:"time,omitempty"`
	// CancelPhone телефон, по которому идет поиск броней в ветке отмены
	CancelPhone string `json:"cancelPhone,omitempty"`
}

// NewSession создает сессию в начальном состоянии
func NewSession(id string) *Session {
	return &Session{ID: id, State: StateStart}
}

// Reset сбрасывает сессию в начальное состояние и очищает
// все накопленные поля диалога
func (s *Session) Reset() {
	s.State = StateStart
	s.Phone = ""
	s.Specialization = ""
	s.Doctor = ""
	s.Date = ""
	s.Time = ""
	s.CancelPhone = ""
}
