package helper

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/model"
)

// GenerateSeatGrid builds the full ticket grid for a new show: one ticket per
// seat, rows A..H with seats 1..8, labeled row letter + seat number.
func GenerateSeatGrid() []model.Ticket {
	tickets := make([]model.Ticket, 0, constants.SEAT_ROWS*constants.SEATS_PER_ROW)
	for i := 0; i < constants.SEAT_ROWS; i++ {
		rowOfSeat := string(rune('A' + i))
		for j := 1; j <= constants.SEATS_PER_ROW; j++ {
			tickets = append(tickets, model.Ticket{
				Seat:   rowOfSeat + strconv.Itoa(j),
				Code:   uuid.NewString(),
				Status: constants.TICKET_AVAILABLE,
			})
		}
	}
	return tickets
}
