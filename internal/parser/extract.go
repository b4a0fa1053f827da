package parser

import (
	"fmt"
	"unicode"

	"github.com/mikz/CSOB-Info24-webhook/internal/models"
)

// Extract scans a notification email body and returns all recognized
// transactions: bank transfers in source order, followed by card
// authorizations in source order. A body with no recognized blocks yields an
// empty result and no error. A malformed field inside a matched block aborts
// the whole extraction, so one bad record never produces a partial batch.
func Extract(text string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	for _, m := range bankTransferPattern.FindAllStringSubmatch(text, -1) {
		txn, err := buildBankTransaction(m)
		if err != nil {
			return nil, fmt.Errorf("bank transfer: %w", err)
		}
		transactions = append(transactions, txn)
	}

	for _, m := range cardAuthPattern.FindAllStringSubmatch(text, -1) {
		txn, err := buildCardTransaction(m)
		if err != nil {
			return nil, fmt.Errorf("card authorization: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

func buildBankTransaction(m []string) (models.BankTransaction, error) {
	date, err := ParseDate(m[1])
	if err != nil {
		return models.BankTransaction{}, err
	}
	details, err := ParseDetails(m[4])
	if err != nil {
		return models.BankTransaction{}, err
	}
	balance, err := ParseMoney(m[5])
	if err != nil {
		return models.BankTransaction{}, fmt.Errorf("balance: %w", err)
	}
	return models.BankTransaction{
		Date:    date,
		Account: m[2],
		Kind:    capitalize(m[3]),
		Details: details,
		Balance: balance,
	}, nil
}

func buildCardTransaction(m []string) (models.CardTransaction, error) {
	at, err := ParseDateTime(m[1], m[2])
	if err != nil {
		return models.CardTransaction{}, err
	}
	amount, err := ParseMoney(m[4])
	if err != nil {
		return models.CardTransaction{}, err
	}
	return models.CardTransaction{
		Time:     at,
		Card:     m[3],
		Amount:   amount,
		Location: m[5],
	}, nil
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
