package gemini

import (
	"context"
	"fmt"
)

// SearchPrice asks the model for typical prices of the queried item,
// grounded in web search. The free-text answer is parsed into
// structured candidates; an unparseable answer yields zero candidates,
// not an error.
func (c *Client) SearchPrice(ctx context.Context, query, currency string) (*PriceSearch, error) {
	if currency == "" {
		currency = "USD"
	}

	prompt := fmt.Sprintf(`Find the current typical price for %q in %s. Also list 3-5 specific model matches if applicable.
For each match, provide the Name, Price, and a brief description.
Format each product strictly as: PRODUCT: [name] | PRICE: [price] | DESC: [description]`, query, currency)

	resp, err := c.generateContent(ctx, c.textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return nil, err
	}

	raw := resp.text()
	return &PriceSearch{
		Candidates: ParseCandidates(raw),
		Sources:    resp.webSources(),
		RawText:    raw,
	}, nil
}

// FindStores asks the model for stores selling the item near the given
// coordinates, grounded in maps data.
func (c *Client) FindStores(ctx context.Context, item string, lat, lng float64) (*StoreSearch, error) {
	resp, err := c.generateContent(ctx, c.textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf("Find stores where I can buy %s nearby.", item)}}}},
		Tools:    []tool{{GoogleMaps: &struct{}{}}},
		ToolConfig: &toolConfig{
			RetrievalConfig: &retrievalConfig{
				LatLng: latLng{Latitude: lat, Longitude: lng},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &StoreSearch{
		Text:  resp.text(),
		Links: resp.mapsSources(),
	}, nil
}
