package gemini

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents   []content   `json:"contents"`
	Tools      []tool      `json:"tools,omitempty"`
	ToolConfig *toolConfig `json:"toolConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

// tool enables server-side grounding. Empty objects are meaningful to
// the API, hence the pointer-to-empty-struct encoding.
type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
	GoogleMaps   *struct{} `json:"googleMaps,omitempty"`
}

type toolConfig struct {
	RetrievalConfig *retrievalConfig `json:"retrievalConfig,omitempty"`
}

type retrievalConfig struct {
	LatLng latLng `json:"latLng"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// generateResponse is the raw generateContent response.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web  *chunkSource `json:"web"`
	Maps *chunkSource `json:"maps"`
}

type chunkSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// text concatenates all text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// webSources collects web grounding links from the first candidate.
func (r *generateResponse) webSources() []SourceLink {
	return r.sources(func(g groundingChunk) *chunkSource { return g.Web })
}

// mapsSources collects maps grounding links from the first candidate.
func (r *generateResponse) mapsSources() []SourceLink {
	return r.sources(func(g groundingChunk) *chunkSource { return g.Maps })
}

func (r *generateResponse) sources(pick func(groundingChunk) *chunkSource) []SourceLink {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var links []SourceLink
	for _, chunk := range r.Candidates[0].GroundingMetadata.GroundingChunks {
		if src := pick(chunk); src != nil {
			links = append(links, SourceLink{URI: src.URI, Title: src.Title})
		}
	}
	return links
}

// SourceLink is a grounding source surfaced alongside results.
type SourceLink struct {
	URI   string
	Title string
}

// PriceCandidate is one structured product match parsed from the
// model's free-text response. Untrusted and best-effort: it only
// prefills inputs, never commits anything.
type PriceCandidate struct {
	Name        string
	Price       float64
	Description string
}

// PriceSearch is the result of a grounded price lookup.
type PriceSearch struct {
	Candidates []PriceCandidate
	Sources    []SourceLink
	RawText    string
}

// StoreSearch is the result of a nearby-store lookup.
type StoreSearch struct {
	Text  string
	Links []SourceLink
}
