package open_slots

// Request модель запроса свободных слотов врача на дату
type Request struct {
	DoctorName string // имя врача или его часть
	Date       string // дата в гибком пользовательском формате
}

// Response модель ответа со списком свободных слотов
type Response struct {
	DoctorName string   // полное имя найденного врача
	Date       string   // каноничная дата dd-mm-yyyy
	Slots      []string // свободные слоты в каноничном формате hh:mm AM/PM
}
