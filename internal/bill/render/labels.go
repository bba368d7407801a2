package render

import "github.com/smallbiznis/qrbill/internal/bill/domain"

type labelSet struct {
	PaymentPart      string
	Receipt          string
	AccountPayableTo string
	Reference        string
	AdditionalInfo   string
	Currency         string
	Amount           string
	PayableBy        string
	PayableByBlank   string
}

var labels = map[domain.Language]labelSet{
	domain.LanguageEN: {
		PaymentPart:      "Payment part",
		Receipt:          "Receipt",
		AccountPayableTo: "Account / Payable to",
		Reference:        "Reference",
		AdditionalInfo:   "Additional information",
		Currency:         "Currency",
		Amount:           "Amount",
		PayableBy:        "Payable by",
		PayableByBlank:   "Payable by (name/address)",
	},
	domain.LanguageDE: {
		PaymentPart:      "Zahlteil",
		Receipt:          "Empfangsschein",
		AccountPayableTo: "Konto / Zahlbar an",
		Reference:        "Referenz",
		AdditionalInfo:   "Zusätzliche Informationen",
		Currency:         "Währung",
		Amount:           "Betrag",
		PayableBy:        "Zahlbar durch",
		PayableByBlank:   "Zahlbar durch (Name/Adresse)",
	},
	domain.LanguageFR: {
		PaymentPart:      "Section paiement",
		Receipt:          "Récépissé",
		AccountPayableTo: "Compte / Payable à",
		Reference:        "Référence",
		AdditionalInfo:   "Informations supplémentaires",
		Currency:         "Monnaie",
		Amount:           "Montant",
		PayableBy:        "Payable par",
		PayableByBlank:   "Payable par (nom/adresse)",
	},
	domain.LanguageIT: {
		PaymentPart:      "Sezione pagamento",
		Receipt:          "Ricevuta",
		AccountPayableTo: "Conto / Pagabile a",
		Reference:        "Riferimento",
		AdditionalInfo:   "Informazioni supplementari",
		Currency:         "Valuta",
		Amount:           "Importo",
		PayableBy:        "Pagabile da",
		PayableByBlank:   "Pagabile da (nome/indirizzo)",
	},
}

func labelsFor(lang domain.Language) labelSet {
	if set, ok := labels[lang]; ok {
		return set
	}
	return labels[domain.LanguageEN]
}
