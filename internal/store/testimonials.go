package store

// Testimonial is static marketing copy shown on the home page. It is seeded at
// construction and never fetched from the backend.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Location string `json:"location"`
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:       "1",
			Name:     "Sarah Mitchell",
			Avatar:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			Rating:   5,
			Comment:  "Absolutely amazing service! Fast delivery and genuine products.",
			Location: "New York, NY",
		},
		{
			ID:       "2",
			Name:     "Dr. Michael Chen",
			Avatar:   "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg",
			Rating:   5,
			Comment:  "As a healthcare professional, I trust PharmaCare for quality medications.",
			Location: "Los Angeles, CA",
		},
		{
			ID:       "3",
			Name:     "Emily Rodriguez",
			Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
			Rating:   5,
			Comment:  "The online consultation feature is fantastic! Quick responses.",
			Location: "Miami, FL",
		},
	}
}
