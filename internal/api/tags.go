package api

import "fmt"

const endpointTags = "tags"

// ListTags returns the tag aggregate for the given items.
func (c *Client) ListTags(ids []string) ([]TagRecord, error) {
	return c.postTags(TagsRequest{Action: ActionGetTags, IDs: ids})
}

// AddTag tags every item and returns the new aggregate.
func (c *Client) AddTag(tag string, ids []string) ([]TagRecord, error) {
	return c.postTags(TagsRequest{Action: ActionAddTag, Tag: tag, IDs: ids})
}

// RemoveTag removes tag with class cls from every item and returns the new
// aggregate. The server requires cls on removal, so an empty class is still sent.
func (c *Client) RemoveTag(tag, cls string, ids []string) ([]TagRecord, error) {
	return c.postTags(TagsRequest{Action: ActionRmTag, Tag: tag, Cls: &cls, IDs: ids})
}

func (c *Client) postTags(req TagsRequest) ([]TagRecord, error) {
	if req.IDs == nil {
		req.IDs = []string{}
	}
	data, err := c.post(endpointTags, "/tags", req)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[TagRecord](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Action, err)
	}
	return records, nil
}
