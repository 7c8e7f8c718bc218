package model

import "time"

type Theater struct {
	DTO
	Name string `gorm:"type:varchar(255);not null;index" validate:"required" json:"name"`
}

type Ticket struct {
	DTO
	Seat   string `gorm:"size:4;not null" validate:"required" json:"seat"` // e.g. "A1".."H8"
	Code   string `gorm:"size:40;uniqueIndex" json:"code"`
	Status string `gorm:"not null;default:'AVAILABLE'" json:"status"`
	ShowId uint   `gorm:"index" json:"showId"`
}

type Show struct {
	DTO
	StartTime time.Time `json:"startTime"`
	MovieId   uint      `gorm:"not null;index" json:"movieId"`
	TheaterId uint      `gorm:"not null;index" json:"theaterId"`
	Movie     Movie     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"movie"`
	Theater   Theater   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:TheaterId" json:"theater"`
	Tickets   []Ticket  `gorm:"foreignKey:ShowId" json:"tickets"`
}

type CreateShowInput struct {
	TheaterId uint
	MovieId   uint
	StartTime time.Time
}

type TheaterResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type TicketResponse struct {
	Id     uint   `json:"id"`
	Seat   string `json:"seat"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

type ShowResponse struct {
	Id        uint             `json:"id"`
	StartTime time.Time        `json:"startTime"`
	Movie     MovieResponse    `json:"movie"`
	Theater   TheaterResponse  `json:"theater"`
	Tickets   []TicketResponse `json:"tickets,omitempty"`
}

func (t Theater) Transform() TheaterResponse {
	return TheaterResponse{
		Id:   t.ID,
		Name: t.Name,
	}
}

func (t Ticket) Transform() TicketResponse {
	return TicketResponse{
		Id:     t.ID,
		Seat:   t.Seat,
		Code:   t.Code,
		Status: t.Status,
	}
}

// Transform maps a show and whatever associations are loaded on it. Tickets
// are included only when present, so listings that never load them stay
// ticket-free.
func (s Show) Transform() ShowResponse {
	res := ShowResponse{
		Id:        s.ID,
		StartTime: s.StartTime,
		Movie:     s.Movie.Transform(),
		Theater:   s.Theater.Transform(),
	}
	if len(s.Tickets) > 0 {
		tickets := make([]TicketResponse, 0, len(s.Tickets))
		for _, ticket := range s.Tickets {
			tickets = append(tickets, ticket.Transform())
		}
		res.Tickets = tickets
	}
	return res
}
