package response_models

type BadgeResponse struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	StaticImageURL string `json:"static_image_url"`
}

type GemResponse struct {
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description"`
}

type ProfileResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	HomeState   string          `json:"homestate"`
	Badges      []BadgeResponse `json:"badges"`
	Gems        []GemResponse   `json:"gems"`
	Interests   []string        `json:"interests"`
	GemsFound   int             `json:"gemsFound"`
	BadgesFound int             `json:"badgesFound"`
	CitiesFound int             `json:"citiesFound"`
	StatesFound int             `json:"statesFound"`
}
