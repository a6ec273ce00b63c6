package types

// Movie is a catalog entry. ReleaseDate decides the now-playing /
// upcoming split server-side; the client only renders it.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Language    string  `json:"language,omitempty"`
	DurationMin int     `json:"duration_min,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	PosterURL   string  `json:"poster_url,omitempty"`
}

// Cinema is a venue. Latitude/Longitude feed the optional
// distance lookup and may be zero when the venue has no coordinates.
type Cinema struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Screen is an auditorium within a cinema.
type Screen struct {
	ID         int    `json:"id"`
	CinemaID   int    `json:"cinema_id"`
	Name       string `json:"screen_name"`
	TotalSeats int    `json:"total_seats,omitempty"`
}

// NewsItem is a platform news/announcement entry.
type NewsItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Review is a user review on a cinema.
type Review struct {
	ID        int    `json:"id"`
	CinemaID  int    `json:"cinema_id"`
	UserName  string `json:"user_name,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
