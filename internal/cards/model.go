package cards

// Card is one Scryfall card object, trimmed to the fields the generator reads.
type Card struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TypeLine     string    `json:"type_line"`
	Colors       []string  `json:"colors"`
	ManaCost     string    `json:"mana_cost,omitempty"`
	OracleText   string    `json:"oracle_text"`
	FlavorText   string    `json:"flavor_text,omitempty"`
	Power        string    `json:"power,omitempty"`
	Toughness    string    `json:"toughness,omitempty"`
	Loyalty      string    `json:"loyalty,omitempty"`
	ProducedMana []string  `json:"produced_mana,omitempty"`
	Artist       string    `json:"artist,omitempty"`
	ScryfallURI  string    `json:"scryfall_uri,omitempty"`
	ImageURIs    ImageURIs `json:"image_uris"`
}

// ImageURIs holds the image links of a single-faced card.
type ImageURIs struct {
	ArtCrop string `json:"art_crop"`
	PNG     string `json:"png"`
	Large   string `json:"large"`
}

// HasProducedMana reports whether Scryfall listed the mana the card produces.
func (c Card) HasProducedMana() bool {
	return c.ProducedMana != nil
}
