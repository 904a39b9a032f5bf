package process_message

import "strings"

// Intent намерение пользователя, распознанное из текста сообщения
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentWellbeing Intent = "wellbeing"
	IntentGratitude Intent = "gratitude"
	IntentFarewell  Intent = "farewell"
	IntentIdentity  Intent = "identity"
	IntentHours     Intent = "hours"
	IntentLocation  Intent = "location"
	IntentContact   Intent = "contact"
	IntentCancel    Intent = "cancel"
	IntentBook      Intent = "book"
	IntentYes       Intent = "yes"
	IntentNo        Intent = "no"
	IntentUnknown   Intent = "unknown"
)

// точные совпадения после приведения к нижнему регистру
var (
	greetingWords = map[string]bool{
		"hi": true, "hello": true, "hey": true, "start": true,
		"namaste": true, "good morning": true, "good afternoon": true,
		"good evening": true,
	}

	farewellWords = map[string]bool{
		"bye": true, "goodbye": true, "bye bye": true,
		"see you": true, "see ya": true,
	}

	hoursWords = map[string]bool{
		"hospital working hours": true, "working hours": true,
		"hours": true, "timings": true, "hospital timings": true,
	}

	locationWords = map[string]bool{
		"hospital location": true, "location": true, "address": true,
		"where are you located": true,
	}

	contactWords = map[string]bool{
		"contact help desk": true, "contact": true, "help desk": true,
		"helpline": true,
	}

	yesWords = map[string]bool{
		"yes": true, "y": true, "yeah": true, "yep": true,
		"ok": true, "okay": true, "sure": true,
	}

	noWords = map[string]bool{
		"no": true, "n": true, "nope": true,
	}
)

// вхождения подстрок
var (
	wellbeingPhrases = []string{"how are you", "how r u", "how are u"}
	gratitudePhrases = []string{"thank you", "thanks", "thx", "tysm"}
	identityPhrases  = []string{"who are you", "what are you", "what can you do"}
)

// Classify распознает намерение по тексту сообщения. Функция чистая:
// никакого состояния диалога, только текст. Порядок проверок фиксирован,
// первое совпадение выигрывает: приветствие, светские фразы, справочные
// вопросы, отмена, запись, подтверждение, отказ.
func Classify(message string) Intent {
	m := strings.ToLower(strings.TrimSpace(message))
	m = strings.Join(strings.Fields(m), " ")

	switch {
	case greetingWords[m]:
		return IntentGreeting
	case containsAny(m, wellbeingPhrases):
		return IntentWellbeing
	case containsAny(m, gratitudePhrases):
		return IntentGratitude
	case farewellWords[m]:
		return IntentFarewell
	case containsAny(m, identityPhrases):
		return IntentIdentity
	case hoursWords[m]:
		return IntentHours
	case locationWords[m]:
		return IntentLocation
	case contactWords[m]:
		return IntentContact
	case strings.Contains(m, "cancel"):
		return IntentCancel
	case strings.Contains(m, "book"):
		return IntentBook
	case yesWords[m]:
		return IntentYes
	case noWords[m]:
		return IntentNo
	default:
		return IntentUnknown
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
