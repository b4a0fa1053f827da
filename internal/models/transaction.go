package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Transaction is a single record extracted from a notification email.
// The concrete type is either BankTransaction or CardTransaction.
type Transaction interface {
	Title() string
	Notification() string
}

// BankTransaction represents an account-to-account posting announced by the
// bank, with its free-text details and the balance after posting.
type BankTransaction struct {
	Date    time.Time
	Account string
	Kind    string // transaction-type label, first letter upper-cased
	Details Details
	Balance Money
}

// Amount is the transaction amount carried in the details blob.
func (t BankTransaction) Amount() Money { return t.Details.Amount }

func (t BankTransaction) Notification() string {
	return fmt.Sprintf("%s %02d. %d. %d %s",
		t.Kind, t.Date.Day(), int(t.Date.Month()), t.Date.Year(), t.Details)
}

func (t BankTransaction) Title() string {
	return t.Kind + " " + t.Amount().String()
}

func (t BankTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date         string  `json:"date"`
		Amount       Money   `json:"amount"`
		Account      string  `json:"account"`
		Kind         string  `json:"kind"`
		Details      Details `json:"details"`
		Balance      Money   `json:"balance"`
		Notification string  `json:"notification"`
		Title        string  `json:"title"`
	}{
		Date:         t.Date.Format("2006-01-02"),
		Amount:       t.Amount(),
		Account:      t.Account,
		Kind:         t.Kind,
		Details:      t.Details,
		Balance:      t.Balance,
		Notification: t.Notification(),
		Title:        t.Title(),
	})
}

// CardTransaction represents a point-of-sale card authorization.
type CardTransaction struct {
	Time     time.Time
	Card     string // masked card suffix, digits only
	Amount   Money
	Location string
}

func (t CardTransaction) Notification() string {
	return fmt.Sprintf("Autorizace (%s): %s, %s, %s",
		t.Card, t.Amount, t.Time.Format("15:04"), t.Location)
}

func (t CardTransaction) Title() string {
	return "CSOB autorizace karty " + t.Card
}

func (t CardTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Time         string `json:"time"`
		Amount       Money  `json:"amount"`
		Card         string `json:"card"`
		Location     string `json:"location"`
		Notification string `json:"notification"`
		Title        string `json:"title"`
	}{
		Time:         t.Time.Format(time.RFC3339),
		Amount:       t.Amount,
		Card:         t.Card,
		Location:     t.Location,
		Notification: t.Notification(),
		Title:        t.Title(),
	})
}
