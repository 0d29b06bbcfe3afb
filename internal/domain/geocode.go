package domain

// AddressComponents - административная иерархия найденного места.
// Любое поле может отсутствовать.
type AddressComponents struct {
	District     string `json:"district,omitempty"`
	Region       string `json:"region,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

// GeocodeResult - результат прямого или обратного геокодирования
type GeocodeResult struct {
	Coordinate        Coordinate        `json:"coordinate"`
	FormattedAddress  string            `json:"formatted_address"`
	PlaceType         string            `json:"place_type"`
	AddressComponents AddressComponents `json:"address_components"`
}

// AutocompleteSuggestion - подсказка адреса. Порядок задаёт провайдер (relevance по убыванию).
type AutocompleteSuggestion struct {
	ID                string            `json:"id"`
	Text              string            `json:"text"`
	PlaceName         string            `json:"place_name"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	PlaceType         string            `json:"place_type"`
	AddressComponents AddressComponents `json:"address_components"`
	Relevance         float64           `json:"relevance"`
}
