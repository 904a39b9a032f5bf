package process_message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/internal/infra/sessionstore"
)

// таймаут отправки уведомления в фоне
const notifyTimeout = 10 * time.Second

// UseCase use case обработки входящего сообщения: конечный автомат
// диалога поверх чистого классификатора намерений. Классификатор
// разбирает текст, автомат решает, что делать в текущем состоянии.
type UseCase struct {
	sessions   SessionStore
	directory  DoctorDirectory
	finder     AppointmentFinder
	dayPlanner DayPlanner
	slotFinder SlotFinder
	booker     Booker
	canceller  Canceller
	notifier   Notifier
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и metrics могут быть nil, тогда соответствующие шаги
// пропускаются.
func NewUseCase(
	sessions SessionStore,
	directory DoctorDirectory,
	finder AppointmentFinder,
	dayPlanner DayPlanner,
	slotFinder SlotFinder,
	booker Booker,
	canceller Canceller,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:   sessions,
		directory:  directory,
		finder:     finder,
		dayPlanner: dayPlanner,
		slotFinder: slotFinder,
		booker:     booker,
		canceller:  canceller,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет один шаг диалога
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	// 2. Новому абоненту выдается свежий идентификатор сессии
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = uuid.NewString()
	}

	// 3. Загружаем сессию; истекшая равносильна отсутствующей
	session, err := uc.sessions.Get(ctx, userID)
	if errors.Is(err, sessionstore.ErrNotFound) {
		session = domain.NewSession(userID)
	} else if err != nil {
		uc.logger.Error("ProcessMessage: session load failed for user=%s: %v", userID, err)
		return &Response{SessionID: userID, Reply: msgRetryLater}, nil
	}

	// 4. Классифицируем намерение
	intent := Classify(message)
	uc.incTurn(intent)
	uc.logger.Info("ProcessMessage: user=%s state=%s intent=%s", userID, session.State, intent)

	// 5. Глобальные намерения проверяются до автомата состояний
	// в фиксированном порядке: приветствие, светские фразы, справочные
	// вопросы, ключевое слово отмены. Они срабатывают из любого
	// состояния диалога.
	reply, options, handled := uc.handleGlobal(session, intent)
	if !handled {
		reply, options = uc.dispatch(ctx, session, message, intent)
	}

	// 6. Сохраняем сессию. Ответ уже сформирован, потеря состояния
	// лишь заставит абонента начать заново.
	if err := uc.sessions.Save(ctx, session); err != nil {
		uc.logger.Error("ProcessMessage: session save failed for user=%s: %v", userID, err)
	}

	return &Response{
		SessionID: userID,
		Reply:     reply,
		Options:   options,
	}, nil
}

// dispatch направляет сообщение обработчику текущего состояния
func (uc *UseCase) dispatch(ctx context.Context, s *domain.Session, message string, intent Intent) (string, []string) {
	switch s.State {
	case domain.StateAwaitingPhone:
		return uc.handleAwaitingPhone(ctx, s, message)
	case domain.StateAwaitingSpecialization:
		return uc.handleAwaitingSpecialization(ctx, s, message)
	case domain.StateAwaitingDoctor:
		return uc.handleAwaitingDoctor(ctx, s, message)
	case domain.StateAwaitingDate:
		return uc.handleAwaitingDate(ctx, s, message)
	case domain.StateAwaitingTime:
		return uc.handleAwaitingTime(ctx, s, message)
	case domain.StateDone:
		return uc.handleDone(s, intent)
	case domain.StateAwaitingCancelPhone:
		return uc.handleAwaitingCancelPhone(ctx, s, message)
	case domain.StateAwaitingCancelSelect:
		return uc.handleAwaitingCancelSelect(ctx, s, message)
	case domain.StateThankYou:
		return uc.handleThankYou(s, intent)
	default:
		return uc.handleStart(s, intent)
	}
}

// notifyAsync отправляет уведомление в фоне, не задерживая ответ бота.
// Результат отражается только в логах и метриках.
func (uc *UseCase) notifyAsync(kind, phone, doctorName, date, timeSlot string) {
	if uc.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		var err error
		if kind == "confirmation" {
			_, err = uc.notifier.SendConfirmation(ctx, phone, doctorName, date, timeSlot)
		} else {
			_, err = uc.notifier.SendCancellation(ctx, phone, doctorName, date, timeSlot)
		}

		outcome := "ok"
		if err != nil {
			outcome = "error"
			uc.logger.Warn("ProcessMessage: %s notification failed: %v", kind, err)
		}
		uc.incNotification(kind, outcome)
	}()
}

func (uc *UseCase) incTurn(intent Intent) {
	if uc.metrics != nil {
		uc.metrics.IncTurn(string(intent))
	}
}

func (uc *UseCase) incBooking() {
	if uc.metrics != nil {
		uc.metrics.IncBooking()
	}
}

func (uc *UseCase) incCancellation() {
	if uc.metrics != nil {
		uc.metrics.IncCancellation()
	}
}

func (uc *UseCase) incNotification(kind, outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncNotification(kind, outcome)
	}
}
