package api

const endpointSuggest = "suggest"

// Suggest fetches autocomplete candidates for a fragment from /ac.
func (c *Client) Suggest(mode SuggestMode, fragment string) ([]Suggestion, error) {
	path := buildQuery("/ac", map[string]string{
		"mode":     string(mode),
		"fragment": fragment,
	})
	data, err := c.get(endpointSuggest, path)
	if err != nil {
		return nil, err
	}
	return decodeList[Suggestion](data)
}
