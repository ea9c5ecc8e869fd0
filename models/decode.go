package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DecodeItems decodes a feed body into a list of items. The feed serves
// either a plain JSON array of records or a JSON object keyed by date whose
// values are records. Keyed objects are flattened to their values ordered by
// ascending key so repeated decodes of the same body agree on item order.
func DecodeItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var keyed map[string]Item
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("feed body is neither an item array nor a keyed object: %w", err)
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items = make([]Item, 0, len(keyed))
	for _, key := range keys {
		items = append(items, keyed[key])
	}
	return items, nil
}
