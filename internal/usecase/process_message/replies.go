package process_message

import (
	"fmt"
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// Тексты ответов бота. Пользователь общается на английском,
// поэтому все видимые строки английские.
const (
	msgMenu         = "Hello! Welcome to City Care Hospital. How can I help you today?"
	msgMenuAgain    = "Sure! How can I help you today?"
	msgUnknown      = "Sorry, I didn't quite get that. Here is what I can do for you:"
	msgRetryLater   = "Sorry, something went wrong on our side. Please try again in a few minutes."
	msgWellbeing    = "I'm doing great, thank you for asking! How can I help you today?"
	msgGratitude    = "You're most welcome! Is there anything else I can help you with?"
	msgFarewell     = "Goodbye! Take care and stay healthy."
	msgIdentity     = "I'm the City Care Hospital assistant. I can help you book or cancel an appointment and answer questions about the hospital."
	msgHours        = "The hospital is open from 08:00 AM to 08:00 PM, Monday to Saturday."
	msgLocation     = "We are located at 12 MG Road, Bengaluru. Search for City Care Hospital on Google Maps to get directions."
	msgContact      = "You can reach our help desk at +91 80 4000 1234, available during working hours."
	msgThankYou     = "Thank you for choosing City Care Hospital. Have a great day!"
	msgStartOver    = "Alright! You can start a new conversation anytime by saying 'hi'."
	msgAnythingElse = "Is there anything else I can help you with?"
	msgDoneReprompt = "If you need anything else, just say 'book' or 'cancel', or press a button."

	msgAskPhone          = "Please share your 10-digit mobile number to proceed with the booking."
	msgInvalidPhone      = "That doesn't look like a valid phone number. Please enter a 10-digit mobile number."
	msgAskSpecialization = "Which specialization would you like to consult?"
	msgNoSpecializations = "Sorry, no doctors are available for booking right now. Please try again later."
	msgNoDoctorsForSpec  = "Sorry, we couldn't find doctors for that specialization. Please pick one from the list."
	msgAskDoctor         = "Please choose a doctor:"
	msgPickListedDoctor  = "Please choose one of the listed doctors."
	msgAskDate           = "Please enter a preferred date (for example, 15-04-2026)."
	msgBadDate           = "I couldn't understand that date. Please enter it like 15-04-2026."
	msgBadTime           = "I couldn't understand that time. Please enter it like 09:20 AM."
	msgNoSlotsOnDate     = "There are no open slots left on that date. You can try another time or say 'hi' to start over."
	msgNoSlotsTryAnother = "No slots are left for that date. Say 'hi' to start over and pick another date."

	msgAskCancelPhone  = "Please share the 10-digit mobile number used for the booking."
	msgNoBookings      = "We couldn't find any bookings for that number."
	msgChooseCancel    = "Here are your bookings. Which one would you like to cancel?"
	msgBadCancelChoice = "Please pick one of the listed bookings."
	msgCancelGone      = "We couldn't find that booking anymore. It may have already been cancelled."
)

// кнопки главного меню
var menuOptions = []string{
	"Book Appointment",
	"Cancel Appointment",
	"Hospital Working Hours",
	"Hospital Location",
	"Contact Help Desk",
}

var anythingElseOptions = []string{"Yes", "No"}

func confirmationReply(doctorName, date, timeSlot string) string {
	return fmt.Sprintf(
		"Your appointment with %s on %s at %s is confirmed. A confirmation message has been sent to you on WhatsApp. %s",
		doctorName, date, timeSlot, msgAnythingElse,
	)
}

func cancellationReply(doctorName, date, timeSlot string) string {
	return fmt.Sprintf(
		"Your appointment with %s on %s at %s has been cancelled. A confirmation has been sent to you on WhatsApp. %s",
		doctorName, date, timeSlot, msgAnythingElse,
	)
}

func holidayReply(date, occasion string) string {
	return fmt.Sprintf("The hospital is closed on %s (%s). Say 'hi' to start over and pick another date.", date, occasion)
}

func leaveReply(doctorName, date, reason string) string {
	return fmt.Sprintf("%s is on leave on %s (%s). Say 'hi' to start over and pick another date.", doctorName, date, reason)
}

func slotTakenReply(nextAvailable string) string {
	if nextAvailable == "" {
		return "That slot is already booked. Please pick another time."
	}
	return fmt.Sprintf("That slot is already booked. The next available slot is %s. Please pick another time.", nextAvailable)
}

func upcomingDaysReply(doctorName string, days []domain.DayAvailability) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the upcoming days for %s:\n", doctorName)
	for _, day := range days {
		switch day.Status {
		case domain.DayHoliday, domain.DayLeave:
			fmt.Fprintf(&b, "%s: %s (%s)\n", day.Date, day.Status, day.Note)
		default:
			fmt.Fprintf(&b, "%s: %s\n", day.Date, day.Status)
		}
	}
	b.WriteString(msgAskDate)
	return b.String()
}

func openSlotsReply(doctorName, date string) string {
	return fmt.Sprintf("Available slots for %s on %s. Please pick a time.", doctorName, date)
}

// bookingOption собирает подпись кнопки выбора брони для отмены
func bookingOption(b *domain.Booking) string {
	return fmt.Sprintf("%s | %s | %s", b.DoctorName, b.Date, b.Time)
}

// limitOptions ограничивает количество кнопок в сообщении
func limitOptions(options []string, max int) []string {
	if len(options) <= max {
		return options
	}
	return options[:max]
}
