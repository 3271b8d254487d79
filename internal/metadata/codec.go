package metadata

import "encoding/json"

// Records are stored JSON-encoded so they stay inspectable with raw KV
// tooling.

func encodeSubscription(sub Subscription) ([]byte, error) {
	return json.Marshal(sub)
}

func decodeSubscription(b []byte, sub *Subscription) error {
	return json.Unmarshal(b, sub)
}
