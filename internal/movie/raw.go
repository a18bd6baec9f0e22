package movie

// NotAvailable is the sentinel OMDb uses for any absent field.
const NotAvailable = "N/A"

// RawRecord represents the full response from the OMDb API for a title lookup.
// Every field is kept exactly as delivered.
type RawRecord struct {
	Title      string      `json:"Title"`
	Year       string      `json:"Year"`
	Rated      string      `json:"Rated"`
	Released   string      `json:"Released"`
	Runtime    string      `json:"Runtime"`
	Genre      string      `json:"Genre"`
	Director   string      `json:"Director"`
	Writer     string      `json:"Writer"`
	Actors     string      `json:"Actors"`
	Plot       string      `json:"Plot"`
	Language   string      `json:"Language"`
	Country    string      `json:"Country"`
	Awards     string      `json:"Awards"`
	Poster     string      `json:"Poster"`
	Ratings    []RawRating `json:"Ratings"`
	Metascore  string      `json:"Metascore"`
	ImdbRating string      `json:"imdbRating"`
	ImdbVotes  string      `json:"imdbVotes"`
	ImdbID     string      `json:"imdbID"`
	Type       string      `json:"Type"`
	DVD        string      `json:"DVD"`
	BoxOffice  string      `json:"BoxOffice"`
	Production string      `json:"Production"`
	Website    string      `json:"Website"`
	Response   string      `json:"Response"` // "True" or "False"
	Error      string      `json:"Error"`    // Present if Response is "False"
}

// RawRating is a single third-party rating as OMDb sends it
type RawRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// SearchResponse is the wire shape of an OMDb `?s=` query.
type SearchResponse struct {
	Search       []RawSearchItem `json:"Search"`
	TotalResults string          `json:"totalResults"`
	Response     string          `json:"Response"`
	Error        string          `json:"Error"`
}

// RawSearchItem is one row of a search response.
type RawSearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}
