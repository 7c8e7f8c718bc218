package constants

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"
	NOT_ADMIN                  = "Admin permission required"

	MOVIE_NOT_FOUND   = "Movie not found"
	THEATER_NOT_FOUND = "Theater not found"
	USER_NOT_FOUND    = "email does not exist"
)

const (
	USER_TYPE_CLIENT = "client"
	USER_TYPE_ADMIN  = "admin"
)

// Seat grid for a show: rows A..H, seats 1..8 per row.
const (
	SEAT_ROWS     = 8
	SEATS_PER_ROW = 8
)

const (
	TICKET_AVAILABLE = "AVAILABLE"
	TICKET_BOOKED    = "BOOKED"
)
