package process_message

// Request модель входящего сообщения пользователя
type Request struct {
	UserID  string // идентификатор абонента; пустой для нового диалога
	Message string
}

// Response модель ответа бота в стиле WhatsApp: текст плюс кнопки
type Response struct {
	SessionID string
	Reply     string
	Options   []string
}
