package service

import (
	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

type partyField struct {
	name    string
	message string
}

// Field order is fixed; it determines the order of the error list.
var creditorFields = [4]partyField{
	{"name", msgCreditorName},
	{"address", msgCreditorAddress},
	{"city", msgCreditorCity},
	{"country", msgCreditorCountry},
}

var debtorFields = [4]partyField{
	{"name", msgDebtorName},
	{"address", msgDebtorAddress},
	{"city", msgDebtorCity},
	{"country", msgDebtorCountry},
}

// extractParty validates all four party fields independently; an earlier
// failure never suppresses a later one. Every failure is keyed by the
// invoice id.
func extractParty(root rawNode, role string, fields [4]partyField, agg *aggregator, key string) domain.Party {
	node, _ := root.child(role)

	var party domain.Party
	targets := [4]*string{
		&party.Name,
		&party.AddressLine1,
		&party.AddressLine2,
		&party.CountryCode,
	}
	for i, field := range fields {
		value, ok := node.text(field.name)
		if !ok {
			agg.add(key, field.message)
			continue
		}
		*targets[i] = value
	}
	return party
}
