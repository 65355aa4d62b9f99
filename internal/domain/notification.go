package domain

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

const (
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
)

type BookingNotificationData struct {
	CustomerName string `json:"customerName"`
	StaffName    string `json:"staffName"`
	ServiceName  string `json:"serviceName"`
	Date         string `json:"date"` // "YYYY-MM-DD", salon calendar
	Time         string `json:"time"` // "HH:MM", salon wall clock
}
