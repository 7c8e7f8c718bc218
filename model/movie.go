package model

type Genre struct {
	DTO
	Name string `gorm:"type:varchar(100);not null;unique" validate:"required" json:"name"`
}

type Movie struct {
	DTO
	Name        string  `gorm:"not null;index" validate:"required" json:"name"`
	ImageUrl    string  `gorm:"type:varchar(255);not null" validate:"required,url" json:"imageUrl"`
	RunningTime int     `gorm:"not null" validate:"required,gt=0" json:"runningTime"` // minutes
	Description string  `gorm:"type:text;not null" validate:"required" json:"description"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Genres      []Genre `gorm:"many2many:movie_genres;" json:"genres"`
}

type CreateMovieInput struct {
	Name        string
	ImageUrl    string
	RunningTime int
	Description string
}

// GenreResponse is the client-facing shape of a genre: public id, no
// bookkeeping fields.
type GenreResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type MovieResponse struct {
	Id          uint            `json:"id"`
	Name        string          `json:"name"`
	ImageUrl    string          `json:"imageUrl"`
	RunningTime int             `json:"runningTime"`
	Description string          `json:"description"`
	Slug        string          `json:"slug,omitempty"`
	Genres      []GenreResponse `json:"genres"`
}

func (g Genre) Transform() GenreResponse {
	return GenreResponse{
		Id:   g.ID,
		Name: g.Name,
	}
}

// Transform maps a persisted movie to its client shape. Nested genres are
// transformed in order; the receiver is never mutated.
func (m Movie) Transform() MovieResponse {
	genres := make([]GenreResponse, 0, len(m.Genres))
	for _, genre := range m.Genres {
		genres = append(genres, genre.Transform())
	}
	return MovieResponse{
		Id:          m.ID,
		Name:        m.Name,
		ImageUrl:    m.ImageUrl,
		RunningTime: m.RunningTime,
		Description: m.Description,
		Slug:        m.Slug,
		Genres:      genres,
	}
}
