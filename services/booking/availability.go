package booking

import (
	"time"

	"innkeep/utils"

	"go.uber.org/zap"
)

// RoomStatus is the availability verdict for a room on a candidate date.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomUnavailable RoomStatus = "unavailable"
	RoomInvalidDate RoomStatus = "error"
)

// CheckAvailability reports whether the room is free of conflicting bookings
// on the candidate date. The candidate is reduced to its calendar date, like
// the booking intervals it is checked against. The check is forward-looking
// only: dates before today are invalid, today itself is allowed. A booking of
// any status whose inclusive date interval contains the candidate date counts
// as a conflict.
//
// The answer is advisory. No lock is held between this check and a later
// CreateBooking, so two customers can race past it for the same room and
// date; the admin confirm/reject step is the authoritative resolution.
func (s *DefaultBookingService) CheckAvailability(roomID string, date time.Time) (RoomStatus, error) {
	room, err := s.Catalog.GetRoomByID(roomID)
	if err != nil {
		return "", NewError(KindInternal, "failed to load room %s: %v", roomID, err)
	}
	if room == nil {
		return "", NewError(KindNotFound, "room %s not found", roomID)
	}

	day := calendarDate(date)
	if day.Before(calendarDate(time.Now())) {
		return RoomInvalidDate, nil
	}

	count, err := s.Bookings.CountOverlapping(room.ID, day)
	if err != nil {
		return "", NewError(KindInternal, "failed to check conflicts for room %s: %v", roomID, err)
	}
	if count > 0 {
		utils.GetLogger().Debug("room has conflicting bookings",
			zap.String("roomID", roomID),
			zap.Time("date", date),
			zap.Int64("conflicts", count))
		return RoomUnavailable, nil
	}
	return RoomAvailable, nil
}
