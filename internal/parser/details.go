package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mikz/CSOB-Info24-webhook/internal/models"
)

// amountField is the label of the mandatory transaction-amount field inside
// a bank-transfer details blob.
const amountField = "částka"

var newlineRun = regexp.MustCompile(`\n+`)

// ParseDetails structures the free-text details blob of a bank transfer.
// Lines are grouped into chunks, with a new chunk starting at every line that
// ends with the label separator. A lone label with nothing under it carries
// no data and is dropped. The mandatory amount field must be present and
// parseable.
func ParseDetails(blob string) (models.Details, error) {
	var chunks [][]string
	var current []string
	for _, line := range newlineRun.Split(strings.TrimSpace(blob), -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, models.LabelSeparator) && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	var kept [][]string
	for _, chunk := range chunks {
		if len(chunk) == 1 && strings.Contains(chunk[0], models.LabelSeparator) {
			continue
		}
		kept = append(kept, chunk)
	}

	details := models.Details{Chunks: kept}
	raw, err := details.Field(amountField)
	if err != nil {
		return models.Details{}, err
	}
	amount, err := ParseMoney(raw)
	if err != nil {
		return models.Details{}, fmt.Errorf("%s: %w", amountField, err)
	}
	details.Amount = amount
	return details, nil
}
