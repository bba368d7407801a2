package service

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// rawNode is the parsed, untyped request tree. It is only ever read.
type rawNode map[string]any

// parsePayload decodes the request body into a raw tree. Numbers stay
// json.Number so invoice ids given as numbers keep their exact text.
func parsePayload(payload string) (rawNode, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, domain.ErrInvalidPayload
	}
	node, ok := root.(map[string]any)
	if !ok {
		return nil, domain.ErrInvalidPayload
	}
	return node, nil
}

// child returns the nested object under key, if there is one.
func (n rawNode) child(key string) (rawNode, bool) {
	value, exists := n[key]
	if !exists {
		return nil, false
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return obj, true
}

// has reports whether key is present at all, regardless of its type.
func (n rawNode) has(key string) bool {
	_, exists := n[key]
	return exists
}

// text returns the trimmed textual value under key. Numbers are accepted
// and rendered as their literal text. Empty strings count as absent.
func (n rawNode) text(key string) (string, bool) {
	value, exists := n[key]
	if !exists {
		return "", false
	}
	switch typed := value.(type) {
	case string:
		trimmed := strings.TrimSpace(typed)
		return trimmed, trimmed != ""
	case json.Number:
		return typed.String(), true
	}
	return "", false
}

// verbatim returns the string under key without trimming; an empty string
// is a present value here.
func (n rawNode) verbatim(key string) (string, bool) {
	value, exists := n[key]
	if !exists {
		return "", false
	}
	typed, ok := value.(string)
	return typed, ok
}

// number returns the decimal value under key, accepting JSON numbers and
// numeric strings.
func (n rawNode) number(key string) (decimal.Decimal, bool) {
	text, ok := n.text(key)
	if !ok {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}
